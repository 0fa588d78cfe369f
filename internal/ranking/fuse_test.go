package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightsFuse(t *testing.T) {
	w := DefaultWeights()

	assert.InDelta(t, 1.0, w.Fuse(1.0, 1.0), 1e-9)
	assert.InDelta(t, 0.0, w.Fuse(0.0, 0.0), 1e-9)
	assert.InDelta(t, 0.6, w.Fuse(1.0, 0.0), 1e-9)
	assert.InDelta(t, 0.4, w.Fuse(0.0, 1.0), 1e-9)
}

func TestWeightsFuse_Override(t *testing.T) {
	w := Weights{Similarity: 0.8, Relevance: 0.2}
	assert.InDelta(t, 0.8, w.Fuse(1.0, 0.0), 1e-9)
}
