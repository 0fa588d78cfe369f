// Package types defines the request-scoped records exchanged between the
// retrieval, scoring and ranking stages.
package types

// RetrievedItem is one candidate record surfaced by the similarity search.
// Immutable once retrieved within a request. SimilarityScore is taken as
// reported by the retrieval engine; its range is not validated here.
type RetrievedItem struct {
	ID              string
	Text            string
	SimilarityScore float64
	Fields          map[string]string
}

// Field returns a projected display field, or "" when absent.
func (r RetrievedItem) Field(key string) string {
	if r.Fields == nil {
		return ""
	}
	return r.Fields[key]
}

// ScoredItem augments a RetrievedItem with pairwise relevance and the fused
// ranking score. Never mutated after creation; re-ranking produces a new
// ordered view rather than a new value.
type ScoredItem struct {
	RetrievedItem
	RelevanceRaw  float64
	RelevanceNorm float64
	FusedScore    float64
}

// Cutoffs records the thresholds a ranking run applied, so every
// eligibility decision is reconstructible from the item scores alone.
type Cutoffs struct {
	FusedPercentile float64
	SimilarityFloor float64
	RelevanceFloor  float64
}

// Eligible reports whether an item clears all three cutoffs. The conditions
// are conjunctive: the percentile bar alone is not sufficient.
func (c Cutoffs) Eligible(item ScoredItem) bool {
	return item.FusedScore >= c.FusedPercentile &&
		item.SimilarityScore >= c.SimilarityFloor &&
		item.RelevanceNorm >= c.RelevanceFloor
}

// RankedSet holds the two output views of one ranking run, both sorted
// descending by fused score with arrival order as the tie-break.
type RankedSet struct {
	Eligible  []ScoredItem
	AllRanked []ScoredItem
	Cutoffs   Cutoffs
}

// FilterSet is the typed form of the filter document accepted at the API
// boundary. The untyped JSON input is validated and converted exactly once.
type FilterSet struct {
	Stipend   string   `json:"stipend,omitempty"`
	JobRoles  []string `json:"jobRoles,omitempty"`
	JobTopics []string `json:"jobTopics,omitempty"`
	JobTypes  []string `json:"jobTypes,omitempty"`
	OpenOnly  bool     `json:"openOnly,omitempty"`
}

// Empty reports whether the filter set constrains anything at all.
func (f FilterSet) Empty() bool {
	return f.Stipend == "" && len(f.JobRoles) == 0 && len(f.JobTopics) == 0 &&
		len(f.JobTypes) == 0 && !f.OpenOnly
}
