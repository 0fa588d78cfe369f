package ranking

// Default fusion weights. Retrieval similarity is weighted above pairwise
// relevance; both are tuning knobs, overridable through Policy.
const (
	defaultSimilarityWeight = 0.6
	defaultRelevanceWeight  = 0.4
)

// Weights is the score fusion policy. Similarity and Relevance are expected
// to sum to 1 so fused scores stay nominally in [0,1].
type Weights struct {
	Similarity float64
	Relevance  float64
}

// DefaultWeights returns the standard 0.6/0.4 fusion weighting.
func DefaultWeights() Weights {
	return Weights{Similarity: defaultSimilarityWeight, Relevance: defaultRelevanceWeight}
}

// Fuse combines a retrieval similarity score and a normalized relevance
// score into the single ranking key. No clamping is applied beyond what the
// inputs already guarantee; fused values near 0 or 1 are legitimate.
func (w Weights) Fuse(similarity, normalizedRelevance float64) float64 {
	return w.Similarity*similarity + w.Relevance*normalizedRelevance
}
