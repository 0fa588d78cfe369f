package ranking

// neutralNormalizedScore is assigned when a batch has no spread (a single
// item, or a scorer returning identical output for every pair), so a
// degenerate batch is neither favored nor penalized in fusion.
const neutralNormalizedScore = 0.5

// NormalizeRelevance rescales a batch of raw pairwise relevance scores onto
// [0,1] with min-max scaling, preserving order alignment with the items the
// scores belong to.
func NormalizeRelevance(raw []float64) []float64 {
	if len(raw) == 0 {
		return nil
	}

	min, max := raw[0], raw[0]
	for _, v := range raw[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(raw))
	if max == min {
		for i := range out {
			out[i] = neutralNormalizedScore
		}
		return out
	}
	for i, v := range raw {
		out[i] = (v - min) / (max - min)
	}
	return out
}
