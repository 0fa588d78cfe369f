// Package store provides PostgreSQL access to stored opportunity records.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping verifies the pool is still usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Opportunity is a stored opportunity record: the posting text fields used
// as the pairwise reference and the precomputed embedding of that text.
type Opportunity struct {
	ID          uuid.UUID
	Title       string
	Role        string
	Topic       string
	Description string
	Embedding   []float64
}

// CombinedText joins the non-empty posting text fields into the reference
// text used for keyword pre-filtering and pairwise scoring.
func (o *Opportunity) CombinedText() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{o.Title, o.Role, o.Topic, o.Description} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, " ")
}

// NotFoundError indicates the requested opportunity does not exist.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("opportunity not found: %s", e.ID)
}

// GetOpportunity loads an opportunity by ID.
func (s *Store) GetOpportunity(ctx context.Context, id uuid.UUID) (*Opportunity, error) {
	var o Opportunity
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, job_role, job_topic, description, embedding
		 FROM opportunities WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.Title, &o.Role, &o.Topic, &o.Description, &o.Embedding)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunity %s: %w", id, err)
	}
	return &o, nil
}
