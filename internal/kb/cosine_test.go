package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors score 1", func(t *testing.T) {
		v := []float64{0.3, -1.2, 4.5}
		assert.InDelta(t, 1.0, cosineSimilarity(v, v), 1e-9)
	})

	t.Run("opposite vectors score -1", func(t *testing.T) {
		a := []float64{1, 2, 3}
		b := []float64{-1, -2, -3}
		assert.InDelta(t, -1.0, cosineSimilarity(a, b), 1e-9)
	})

	t.Run("orthogonal vectors score 0", func(t *testing.T) {
		assert.InDelta(t, 0.0, cosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
	})

	t.Run("bounded", func(t *testing.T) {
		a := []float64{0.1, 7.5, -2.25, 0.004}
		b := []float64{-3.2, 0.5, 10, 1.1}
		s := cosineSimilarity(a, b)
		assert.GreaterOrEqual(t, s, -1.0)
		assert.LessOrEqual(t, s, 1.0)
	})

	t.Run("degenerate inputs score 0", func(t *testing.T) {
		assert.Zero(t, cosineSimilarity(nil, nil))
		assert.Zero(t, cosineSimilarity([]float64{1, 2}, nil))
		assert.Zero(t, cosineSimilarity([]float64{1, 2}, []float64{1, 2, 3}))
		assert.Zero(t, cosineSimilarity([]float64{0, 0}, []float64{1, 2}))
	})
}
