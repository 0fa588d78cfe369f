// Package ranking fuses retrieval similarity with pairwise relevance scores
// and partitions the candidate population into eligible and ranked-only
// views.
package ranking

import (
	"strings"

	"github.com/ananya/intern-match/internal/types"
)

// PrefilterByKeywords keeps the candidates whose text contains at least one
// whitespace-delimited, lower-cased keyword from the target text as a
// literal substring. It is a coarse recall filter applied before the
// expensive pairwise scorer; when it removes every candidate the pipeline
// short-circuits to an empty result instead of falling back to the
// unfiltered set.
func PrefilterByKeywords(target string, items []types.RetrievedItem) []types.RetrievedItem {
	keywords := strings.Fields(strings.ToLower(target))
	if len(keywords) == 0 {
		return nil
	}

	kept := make([]types.RetrievedItem, 0, len(items))
	for _, item := range items {
		text := strings.ToLower(item.Text)
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				kept = append(kept, item)
				break
			}
		}
	}
	return kept
}
