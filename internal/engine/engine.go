package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ananya/intern-match/internal/ranking"
	"github.com/ananya/intern-match/internal/retrieval"
	"github.com/ananya/intern-match/internal/scorer"
	"github.com/ananya/intern-match/internal/store"
	"github.com/ananya/intern-match/internal/types"
)

// OpportunityStore resolves match targets from the document store.
type OpportunityStore interface {
	GetOpportunity(ctx context.Context, id uuid.UUID) (*store.Opportunity, error)
	Ping(ctx context.Context) error
}

// Embedder turns target text into a query vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	Ping(ctx context.Context) error
}

// Searcher runs the vector similarity retrieval.
type Searcher interface {
	Search(ctx context.Context, vector []float64, opts retrieval.SearchOptions) ([]retrieval.Hit, error)
	Ping(ctx context.Context) error
}

// PairScorer scores ordered (reference, candidate) pairs.
type PairScorer interface {
	ScorePairs(ctx context.Context, pairs []scorer.Pair) ([]float64, error)
	Ping(ctx context.Context) error
}

// Deps are the collaborators an Engine is constructed from.
type Deps struct {
	Store    OpportunityStore
	Embedder Embedder
	Searcher Searcher
	Scorer   PairScorer

	Policy      ranking.Policy
	Search      retrieval.SearchOptions
	ResultLimit int
	Logger      *zap.Logger
}

// Engine holds the read-only service context for match computations. All
// per-request state lives on the stack of Match; an Engine is safe for
// concurrent use.
type Engine struct {
	store       OpportunityStore
	embedder    Embedder
	searcher    Searcher
	scorer      PairScorer
	policy      ranking.Policy
	search      retrieval.SearchOptions
	resultLimit int
	log         *zap.Logger
}

// New builds an Engine, refusing construction with missing dependencies.
func New(d Deps) (*Engine, error) {
	switch {
	case d.Store == nil:
		return nil, &NotReadyError{Dependency: StageStore}
	case d.Embedder == nil:
		return nil, &NotReadyError{Dependency: StageEmbedding}
	case d.Searcher == nil:
		return nil, &NotReadyError{Dependency: StageRetrieval}
	case d.Scorer == nil:
		return nil, &NotReadyError{Dependency: StageScoring}
	}

	if d.Policy.Weights == (ranking.Weights{}) {
		d.Policy = ranking.DefaultPolicy()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	return &Engine{
		store:       d.Store,
		embedder:    d.Embedder,
		searcher:    d.Searcher,
		scorer:      d.Scorer,
		policy:      d.Policy,
		search:      d.Search,
		resultLimit: d.ResultLimit,
		log:         d.Logger,
	}, nil
}

// Ready pings every collaborator concurrently and reports the first stage
// that is unreachable.
func (e *Engine) Ready(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	pings := map[string]func(context.Context) error{
		StageStore:     e.store.Ping,
		StageEmbedding: e.embedder.Ping,
		StageRetrieval: e.searcher.Ping,
		StageScoring:   e.scorer.Ping,
	}
	for stage, ping := range pings {
		stage, ping := stage, ping
		g.Go(func() error {
			if err := ping(ctx); err != nil {
				return &StageError{Stage: stage, Err: err}
			}
			return nil
		})
	}
	return g.Wait()
}

// Request is one eligibility computation. Either TargetID or TargetVector
// must be set; a vector bypasses the store lookup, with TargetText as the
// pairwise reference.
type Request struct {
	TargetID     uuid.UUID
	TargetVector []float64
	TargetText   string
	Filters      types.FilterSet

	// Now anchors date filters; the zero value means the wall clock.
	Now time.Time
}

// Response is the assembled result of one match computation.
type Response struct {
	Eligible  []types.ScoredItem
	AllRanked []types.ScoredItem
	Cutoffs   types.Cutoffs
}

func emptyResponse(cutoffs types.Cutoffs) *Response {
	return &Response{
		Eligible:  []types.ScoredItem{},
		AllRanked: []types.ScoredItem{},
		Cutoffs:   cutoffs,
	}
}

// Match runs the full pipeline: resolve target, retrieve, post-filter,
// keyword pre-filter, pairwise score, normalize, fuse, threshold, assemble.
// Exactly two blocking collaborator calls happen in sequence (retrieval,
// then batched scoring); cancellation of ctx abandons the computation with
// no partial result.
func (e *Engine) Match(ctx context.Context, req Request) (*Response, error) {
	vector := req.TargetVector
	refText := req.TargetText

	if len(vector) == 0 && req.TargetID == uuid.Nil {
		return nil, &InvalidRequestError{Field: "targetId", Message: "either a target id or a target vector is required"}
	}

	requestID := uuid.New()
	log := e.log.With(zap.String("request_id", requestID.String()))

	if len(vector) == 0 {
		opp, err := e.store.GetOpportunity(ctx, req.TargetID)
		if err != nil {
			return nil, err
		}
		vector = opp.Embedding
		refText = opp.CombinedText()
	}
	if refText == "" {
		return nil, &InvalidRequestError{Field: "targetText", Message: "target has no reference text for pairwise scoring"}
	}
	if len(vector) == 0 {
		embedded, err := e.embedder.Embed(ctx, refText)
		if err != nil {
			return nil, &StageError{Stage: StageEmbedding, Err: err}
		}
		vector = embedded
	}

	hits, err := e.searcher.Search(ctx, vector, e.search)
	if err != nil {
		return nil, &StageError{Stage: StageRetrieval, Err: err}
	}
	log.Info("retrieval complete", zap.Int("hits", len(hits)))

	items := make([]types.RetrievedItem, len(hits))
	for i, h := range hits {
		items[i] = types.RetrievedItem{
			ID:              h.ID,
			Text:            h.Text,
			SimilarityScore: h.Score,
			Fields:          h.Fields,
		}
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	items = applyFilters(items, req.Filters, now, log)
	items = ranking.PrefilterByKeywords(refText, items)
	if len(items) == 0 {
		// Precision over forced recall: an emptied population is a
		// valid empty result, not a fallback to the unfiltered set.
		log.Info("no candidates survived filtering")
		return emptyResponse(types.Cutoffs{
			SimilarityFloor: e.policy.Floors.Similarity,
			RelevanceFloor:  e.policy.Floors.Relevance,
		}), nil
	}

	pairs := make([]scorer.Pair, len(items))
	for i, item := range items {
		pairs[i] = scorer.Pair{Reference: refText, Candidate: item.Text}
	}
	raw, err := e.scorer.ScorePairs(ctx, pairs)
	if err != nil {
		return nil, &StageError{Stage: StageScoring, Err: err}
	}
	if len(raw) != len(pairs) {
		return nil, &StageError{Stage: StageScoring, Err: &scorer.BatchMismatchError{Want: len(pairs), Got: len(raw)}}
	}

	set, err := ranking.Rank(items, raw, e.policy)
	if err != nil {
		return nil, &StageError{Stage: StageScoring, Err: err}
	}
	log.Info("ranking complete",
		zap.Int("ranked", len(set.AllRanked)),
		zap.Int("eligible", len(set.Eligible)),
		zap.Float64("cutoff", set.Cutoffs.FusedPercentile))

	return &Response{
		Eligible:  truncate(set.Eligible, e.resultLimit),
		AllRanked: truncate(set.AllRanked, e.resultLimit),
		Cutoffs:   set.Cutoffs,
	}, nil
}

func truncate(items []types.ScoredItem, limit int) []types.ScoredItem {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
