package ranking

import (
	"math"
	"sort"
)

// Default eligibility thresholds. The floors are absolute minimums applied
// independently of relative rank; the percentile is the population-relative
// cutoff recomputed per request.
const (
	defaultSimilarityFloor = 0.5
	defaultRelevanceFloor  = 0.3
	defaultPercentile      = 0.5
)

// Floors are the absolute minimums a candidate's component scores must
// clear regardless of where it ranks. The retrieval engine does not
// guarantee a score range, so the similarity floor is configurable rather
// than assumed.
type Floors struct {
	Similarity float64
	Relevance  float64
}

// DefaultFloors returns the standard similarity >= 0.5, relevance >= 0.3
// floors.
func DefaultFloors() Floors {
	return Floors{Similarity: defaultSimilarityFloor, Relevance: defaultRelevanceFloor}
}

// Policy is the read-only ranking policy, fixed at startup.
type Policy struct {
	Weights Weights
	Floors  Floors
	// Percentile is the population-relative cutoff as a fraction in
	// (0,1]; 0.5 is the conventional median.
	Percentile float64
}

// DefaultPolicy returns the standard fusion and eligibility policy.
func DefaultPolicy() Policy {
	return Policy{
		Weights:    DefaultWeights(),
		Floors:     DefaultFloors(),
		Percentile: defaultPercentile,
	}
}

// Percentile computes the linear-interpolation percentile of values at
// fraction p. For p = 0.5 this is the conventional median: the mean of the
// two central values when the population is even-sized. An empty population
// yields 0.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}

	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
