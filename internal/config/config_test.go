package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/matchengine")
	t.Setenv("RETRIEVAL_URL", "http://localhost:5001")
	t.Setenv("EMBEDDING_URL", "http://localhost:5002")
	t.Setenv("SCORER_URL", "http://localhost:5003")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "vector_index", cfg.Index)
	assert.Equal(t, 300, cfg.NumCandidates)
	assert.Equal(t, 30, cfg.RetrieveLimit)
	assert.Equal(t, 10, cfg.ResultLimit)
	assert.Equal(t, 0.6, cfg.SimilarityWeight)
	assert.Equal(t, 0.4, cfg.RelevanceWeight)
	assert.Equal(t, 0.5, cfg.SimilarityFloor)
	assert.Equal(t, 0.3, cfg.RelevanceFloor)
	assert.Equal(t, 0.5, cfg.Percentile)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_MissingCollaboratorURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SCORER_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_WeightsMustSumToOne(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SIMILARITY_WEIGHT", "0.9")
	t.Setenv("RELEVANCE_WEIGHT", "0.4")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights")
}

func TestLoad_PercentileRange(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FUSED_PERCENTILE", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RetrieveLimitBound(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NUM_CANDIDATES", "10")
	t.Setenv("RETRIEVE_LIMIT", "30")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SIMILARITY_WEIGHT", "0.7")
	t.Setenv("RELEVANCE_WEIGHT", "0.3")
	t.Setenv("SIMILARITY_FLOOR", "0.6")
	t.Setenv("FUSED_PERCENTILE", "0.75")

	cfg, err := Load()
	require.NoError(t, err)

	policy := cfg.Policy()
	assert.Equal(t, 0.7, policy.Weights.Similarity)
	assert.Equal(t, 0.3, policy.Weights.Relevance)
	assert.Equal(t, 0.6, policy.Floors.Similarity)
	assert.Equal(t, 0.75, policy.Percentile)
}

func TestSearchOptions(t *testing.T) {
	setRequiredEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	opts := cfg.SearchOptions()
	assert.Equal(t, "vector_index", opts.Index)
	assert.Equal(t, 300, opts.NumCandidates)
	assert.Equal(t, 30, opts.Limit)
}
