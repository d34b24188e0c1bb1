// Package httpapi exposes the knowledge-base operations over HTTP: admin
// routes for source management and reindexing, and a query route for the
// chat/search path.
package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/fitcoach/website-kb/internal/domain"
	"github.com/fitcoach/website-kb/internal/kb"
)

type Handler struct {
	kb domain.KnowledgeBase
}

func NewHandler(knowledgeBase domain.KnowledgeBase) *Handler {
	return &Handler{kb: knowledgeBase}
}

// Status reports the current index metadata and source length for the
// admin status view.
func (h *Handler) Status(c *gin.Context) {
	source, err := h.kb.SourceText()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	index, err := h.kb.LoadIndex()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var updatedAt *time.Time
	count := 0
	if index != nil {
		updatedAt = &index.UpdatedAt
		count = index.Count
	}
	c.JSON(http.StatusOK, gin.H{
		"updated_at":    updatedAt,
		"count":         count,
		"source_length": utf8.RuneCountInString(source),
	})
}

// GetSource returns the current source document.
func (h *Handler) GetSource(c *gin.Context) {
	content, err := h.kb.SourceText()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}

type putSourceRequest struct {
	Content *string `json:"content"`
}

// PutSource overwrites the source document.
func (h *Handler) PutSource(c *gin.Context) {
	var req putSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}
	if err := h.kb.SaveSourceText(*req.Content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "KB source saved"})
}

// Reindex rebuilds the whole index from the current source text. Rebuild
// failures surface to the admin caller so they know the rebuild did not
// take effect.
func (h *Handler) Reindex(c *gin.Context) {
	index, err := h.kb.BuildIndex(c.Request.Context())
	if err != nil {
		slog.Error("kb reindex failed", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "KB reindexed",
		"count":      index.Count,
		"updated_at": index.UpdatedAt,
	})
}

type queryRequest struct {
	Query string `json:"query"`
	// TopK arrives from assorted clients as a number or a numeric
	// string; anything uncoercible falls back to the default.
	TopK any `json:"top_k"`
}

func (r queryRequest) topK() int {
	switch v := r.TopK.(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return kb.DefaultTopK
}

// Query runs a semantic search over the indexed chunks. A provider
// failure reads as an empty result list, never an error.
func (h *Handler) Query(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}
	results, err := h.kb.Search(c.Request.Context(), req.Query, req.topK())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": req.Query, "results": results})
}
