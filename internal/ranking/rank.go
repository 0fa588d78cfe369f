package ranking

import (
	"fmt"
	"sort"

	"github.com/ananya/intern-match/internal/types"
)

// Rank normalizes the raw relevance batch, fuses it with the retrieval
// similarity scores, applies the percentile cutoff and absolute floors, and
// assembles the eligible and all-ranked views. Both views are sorted
// descending by fused score; ties keep arrival order, so the output is
// deterministic given deterministic upstream ordering.
//
// rawRelevance must be order-aligned with items; a length mismatch is a
// contract violation, not a recoverable condition. An empty population is
// valid and yields two empty views.
func Rank(items []types.RetrievedItem, rawRelevance []float64, policy Policy) (types.RankedSet, error) {
	if len(items) != len(rawRelevance) {
		return types.RankedSet{}, fmt.Errorf(
			"relevance batch has %d scores for %d candidates", len(rawRelevance), len(items))
	}

	cutoffs := types.Cutoffs{
		SimilarityFloor: policy.Floors.Similarity,
		RelevanceFloor:  policy.Floors.Relevance,
	}
	if len(items) == 0 {
		return types.RankedSet{
			Eligible:  []types.ScoredItem{},
			AllRanked: []types.ScoredItem{},
			Cutoffs:   cutoffs,
		}, nil
	}

	normalized := NormalizeRelevance(rawRelevance)
	scored := make([]types.ScoredItem, len(items))
	fused := make([]float64, len(items))
	for i, item := range items {
		f := policy.Weights.Fuse(item.SimilarityScore, normalized[i])
		scored[i] = types.ScoredItem{
			RetrievedItem: item,
			RelevanceRaw:  rawRelevance[i],
			RelevanceNorm: normalized[i],
			FusedScore:    f,
		}
		fused[i] = f
	}

	cutoffs.FusedPercentile = Percentile(fused, policy.Percentile)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FusedScore > scored[j].FusedScore
	})

	eligible := make([]types.ScoredItem, 0, len(scored))
	for _, s := range scored {
		if cutoffs.Eligible(s) {
			eligible = append(eligible, s)
		}
	}

	return types.RankedSet{
		Eligible:  eligible,
		AllRanked: scored,
		Cutoffs:   cutoffs,
	}, nil
}
