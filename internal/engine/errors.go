// Package engine orchestrates one candidate-opportunity eligibility
// computation per request.
package engine

import "fmt"

// Pipeline stages named in collaborator failures, so callers can tell which
// dependency broke.
const (
	StageStore     = "store"
	StageEmbedding = "embedding"
	StageRetrieval = "retrieval"
	StageScoring   = "scoring"
)

// NotReadyError indicates a dependency that was never initialized. It
// replaces the nil-handle checks the matching operation would otherwise
// need at every call site.
type NotReadyError struct {
	Dependency string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("engine is not ready: %s is not initialized", e.Dependency)
}

// StageError categorizes a collaborator failure by pipeline stage. No
// partial or degraded result is synthesized when one occurs.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// InvalidRequestError reports malformed match input before any external
// call is made.
type InvalidRequestError struct {
	Field   string
	Message string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid match request: %s: %s", e.Field, e.Message)
}
