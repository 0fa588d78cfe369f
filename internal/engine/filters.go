package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/ananya/intern-match/internal/filters"
	"github.com/ananya/intern-match/internal/types"
)

// Projected field keys the post-filters read from retrieved records.
const (
	fieldStipend  = "stipend"
	fieldJobRole  = "jobRole"
	fieldJobTopic = "jobTopic"
	fieldJobType  = "jobType"
	fieldLastDate = "lastDate"
)

// applyFilters drops retrieved items that fail the parsed filter
// predicates. An unparseable filter expression drops that filter (logged);
// an unparseable record field excludes the record when that filter is
// active.
func applyFilters(items []types.RetrievedItem, f types.FilterSet, now time.Time, log *zap.Logger) []types.RetrievedItem {
	if f.Empty() {
		return items
	}

	var stipend *filters.StipendRange
	if f.Stipend != "" {
		if r, ok := filters.ParseStipendRange(f.Stipend); ok {
			stipend = &r
		} else {
			log.Warn("unparseable stipend filter, ignoring", zap.String("stipend", f.Stipend))
		}
	}
	roles := filters.BuildValueMatchers(f.JobRoles, log)
	topics := filters.BuildValueMatchers(f.JobTopics, log)
	jobTypes := filters.BuildValueMatchers(f.JobTypes, log)

	kept := make([]types.RetrievedItem, 0, len(items))
	for _, item := range items {
		if stipend != nil {
			r, ok := filters.ParseStipendRange(item.Field(fieldStipend))
			if !ok || !r.Overlaps(*stipend) {
				continue
			}
		}
		if len(roles) > 0 && !filters.AnyMatch(roles, item.Field(fieldJobRole)) {
			continue
		}
		if len(topics) > 0 && !filters.AnyMatch(topics, item.Field(fieldJobTopic)) {
			continue
		}
		if len(jobTypes) > 0 && !filters.AnyMatch(jobTypes, item.Field(fieldJobType)) {
			continue
		}
		if f.OpenOnly && !filters.IsStillOpenAt(item.Field(fieldLastDate), now) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
