// Package config loads and validates service configuration from the
// environment. Configuration is read once at startup and treated as
// read-only process-wide state afterwards.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/ananya/intern-match/internal/ranking"
	"github.com/ananya/intern-match/internal/retrieval"
)

// Defaults mirror the retrieval parameters the production index is tuned
// for: 300 candidates narrowed to 30, with the top 10 returned.
const (
	defaultPort          = 8080
	defaultIndex         = "vector_index"
	defaultNumCandidates = 300
	defaultRetrieveLimit = 30
	defaultResultLimit   = 10
	defaultTimeout       = 30 * time.Second
)

// Config holds the full service configuration.
type Config struct {
	Port        int
	DatabaseURL string

	RetrievalURL string
	EmbeddingURL string
	ScorerURL    string
	CallTimeout  time.Duration

	Index         string
	NumCandidates int
	RetrieveLimit int
	ResultLimit   int

	SimilarityWeight float64
	RelevanceWeight  float64
	SimilarityFloor  float64
	RelevanceFloor   float64
	Percentile       float64

	LogJSON bool
	Debug   bool
}

// Load reads configuration from environment variables, applying defaults
// for everything optional, and validates the result.
func Load() (*Config, error) {
	defaults := ranking.DefaultPolicy()

	cfg := &Config{
		Port:        envInt("PORT", defaultPort),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RetrievalURL: os.Getenv("RETRIEVAL_URL"),
		EmbeddingURL: os.Getenv("EMBEDDING_URL"),
		ScorerURL:    os.Getenv("SCORER_URL"),
		CallTimeout:  envDuration("COLLABORATOR_TIMEOUT", defaultTimeout),

		Index:         envString("VECTOR_INDEX", defaultIndex),
		NumCandidates: envInt("NUM_CANDIDATES", defaultNumCandidates),
		RetrieveLimit: envInt("RETRIEVE_LIMIT", defaultRetrieveLimit),
		ResultLimit:   envInt("RESULT_LIMIT", defaultResultLimit),

		SimilarityWeight: envFloat("SIMILARITY_WEIGHT", defaults.Weights.Similarity),
		RelevanceWeight:  envFloat("RELEVANCE_WEIGHT", defaults.Weights.Relevance),
		SimilarityFloor:  envFloat("SIMILARITY_FLOOR", defaults.Floors.Similarity),
		RelevanceFloor:   envFloat("RELEVANCE_FLOOR", defaults.Floors.Relevance),
		Percentile:       envFloat("FUSED_PERCENTILE", defaults.Percentile),

		LogJSON: envBool("LOG_JSON", false),
		Debug:   envBool("DEBUG", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is required")
	}
	for name, url := range map[string]string{
		"RETRIEVAL_URL": c.RetrievalURL,
		"EMBEDDING_URL": c.EmbeddingURL,
		"SCORER_URL":    c.ScorerURL,
	} {
		if url == "" {
			return fmt.Errorf("config error: %s is required", name)
		}
	}

	if math.Abs(c.SimilarityWeight+c.RelevanceWeight-1.0) > 1e-9 {
		return fmt.Errorf("config error: fusion weights must sum to 1, got %v + %v",
			c.SimilarityWeight, c.RelevanceWeight)
	}
	for name, v := range map[string]float64{
		"SIMILARITY_FLOOR": c.SimilarityFloor,
		"RELEVANCE_FLOOR":  c.RelevanceFloor,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("config error: %s must be in [0,1], got %v", name, v)
		}
	}
	if c.Percentile <= 0 || c.Percentile > 1 {
		return fmt.Errorf("config error: FUSED_PERCENTILE must be in (0,1], got %v", c.Percentile)
	}

	if c.NumCandidates <= 0 || c.RetrieveLimit <= 0 {
		return fmt.Errorf("config error: NUM_CANDIDATES and RETRIEVE_LIMIT must be positive")
	}
	if c.RetrieveLimit > c.NumCandidates {
		return fmt.Errorf("config error: RETRIEVE_LIMIT %d exceeds NUM_CANDIDATES %d",
			c.RetrieveLimit, c.NumCandidates)
	}
	if c.ResultLimit < 0 {
		return fmt.Errorf("config error: RESULT_LIMIT must be non-negative")
	}
	return nil
}

// Policy converts the configured knobs into the engine's ranking policy.
func (c *Config) Policy() ranking.Policy {
	return ranking.Policy{
		Weights:    ranking.Weights{Similarity: c.SimilarityWeight, Relevance: c.RelevanceWeight},
		Floors:     ranking.Floors{Similarity: c.SimilarityFloor, Relevance: c.RelevanceFloor},
		Percentile: c.Percentile,
	}
}

// SearchOptions converts the configured knobs into retrieval parameters.
func (c *Config) SearchOptions() retrieval.SearchOptions {
	return retrieval.SearchOptions{
		Index:         c.Index,
		NumCandidates: c.NumCandidates,
		Limit:         c.RetrieveLimit,
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
