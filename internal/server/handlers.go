package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ananya/intern-match/internal/engine"
	"github.com/ananya/intern-match/internal/schemas"
	"github.com/ananya/intern-match/internal/types"
)

// MatchRequest is the request body for POST /match. Either targetId or
// targetVector identifies the target; filters is the loosely-typed filter
// document validated against its schema before conversion.
type MatchRequest struct {
	TargetID     string          `json:"targetId,omitempty" validate:"required_without=TargetVector,omitempty,uuid"`
	TargetVector []float64       `json:"targetVector,omitempty"`
	TargetText   string          `json:"targetText,omitempty"`
	Filters      json.RawMessage `json:"filters,omitempty"`
}

// MatchEntry is one ranked result in the response.
type MatchEntry struct {
	ID          string            `json:"id"`
	VectorScore float64           `json:"vectorScore"`
	CrossScore  float64           `json:"crossScore"`
	FinalScore  float64           `json:"finalScore"`
	Review      string            `json:"review,omitempty"`
	Fields      map[string]string `json:"fields,omitempty"`
}

// MatchResponse is the response body for POST /match. Both arrays are
// always present; an empty result is a valid response, not an error.
type MatchResponse struct {
	EligibleUsers    []MatchEntry `json:"eligibleUsers"`
	AllRankedResults []MatchEntry `json:"allRankedResults"`
}

type errorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}

// handleMatch runs one eligibility computation.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if s.matcher == nil {
		s.renderError(w, &engine.NotReadyError{Dependency: "engine"})
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.renderError(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.renderError(w, &ErrValidation{Field: "targetId", Message: err.Error()})
		return
	}

	var filterSet types.FilterSet
	if len(req.Filters) > 0 {
		if err := schemas.ValidateFilterSet(req.Filters); err != nil {
			s.renderError(w, err)
			return
		}
		if err := json.Unmarshal(req.Filters, &filterSet); err != nil {
			s.renderError(w, &ErrValidation{Field: "filters", Message: err.Error()})
			return
		}
	}

	var targetID uuid.UUID
	if req.TargetID != "" {
		id, err := uuid.Parse(req.TargetID)
		if err != nil {
			s.renderError(w, &ErrValidation{Field: "targetId", Message: "must be a UUID"})
			return
		}
		targetID = id
	}

	resp, err := s.matcher.Match(r.Context(), engine.Request{
		TargetID:     targetID,
		TargetVector: req.TargetVector,
		TargetText:   req.TargetText,
		Filters:      filterSet,
	})
	if err != nil {
		s.renderError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toMatchResponse(resp))
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady reports whether every collaborator is reachable.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.matcher == nil {
		s.renderError(w, &engine.NotReadyError{Dependency: "engine"})
		return
	}
	if err := s.matcher.Ready(r.Context()); err != nil {
		s.log.Warn("readiness check failed", zap.Error(err))
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error(), Stage: failingStage(err)})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func toMatchResponse(resp *engine.Response) MatchResponse {
	return MatchResponse{
		EligibleUsers:    toEntries(resp.Eligible),
		AllRankedResults: toEntries(resp.AllRanked),
	}
}

func toEntries(items []types.ScoredItem) []MatchEntry {
	entries := make([]MatchEntry, len(items))
	for i, item := range items {
		entries[i] = MatchEntry{
			ID:          item.ID,
			VectorScore: item.SimilarityScore,
			CrossScore:  item.RelevanceNorm,
			FinalScore:  item.FusedScore,
			Review:      item.Field("review"),
			Fields:      item.Fields,
		}
	}
	return entries
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.Int("status", status), zap.Error(err))
	} else {
		s.log.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error(), Stage: failingStage(err)})
}
