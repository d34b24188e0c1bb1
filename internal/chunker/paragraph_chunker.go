package chunker

import (
	"strings"
)

const (
	// DefaultMaxChars bounds the pre-overlap length of a chunk.
	DefaultMaxChars = 1200
	// DefaultOverlapChars is carried from the tail of the previous chunk.
	DefaultOverlapChars = 150
)

// ParagraphChunker splits text into paragraph-aligned chunks with a
// trailing-character overlap. Lengths are measured in runes so that
// Persian and English content are bounded the same way.
type ParagraphChunker struct {
	maxChars     int
	overlapChars int
}

func NewParagraphChunker(maxChars, overlapChars int) *ParagraphChunker {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if overlapChars < 0 {
		overlapChars = 0
	}
	return &ParagraphChunker{maxChars: maxChars, overlapChars: overlapChars}
}

// Chunk is a pure function from document text to an ordered sequence of
// chunk strings. Empty input yields nil.
func (c *ParagraphChunker) Chunk(text string) []string {
	if text == "" {
		return nil
	}
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	// Greedy paragraph accumulation. A paragraph fits if the buffer plus
	// a newline separator stays within maxChars (<=, not <).
	var chunks []string
	current := ""
	for _, p := range paragraphs {
		if runeLen(current)+runeLen(p)+1 <= c.maxChars {
			if current == "" {
				current = p
			} else {
				current = current + "\n" + p
			}
			continue
		}
		if current != "" {
			chunks = append(chunks, current)
		}
		if runeLen(p) <= c.maxChars {
			current = p
		} else {
			// Hard split an oversized paragraph into maxChars slices;
			// these bypass the overlap step's pre-overlap bound anyway.
			runes := []rune(p)
			for i := 0; i < len(runes); i += c.maxChars {
				end := i + c.maxChars
				if end > len(runes) {
					end = len(runes)
				}
				chunks = append(chunks, string(runes[i:end]))
			}
			current = ""
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}

	if c.overlapChars <= 0 || len(chunks) <= 1 {
		return chunks
	}
	// Prepend the trailing overlapChars runes of each pre-overlap
	// predecessor to preserve context across chunk boundaries.
	overlapped := make([]string, 0, len(chunks))
	overlapped = append(overlapped, chunks[0])
	for i := 1; i < len(chunks); i++ {
		tail := tailRunes(chunks[i-1], c.overlapChars)
		overlapped = append(overlapped, strings.TrimSpace(tail+"\n"+chunks[i]))
	}
	return overlapped
}

func runeLen(s string) int {
	return len([]rune(s))
}

func tailRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
