package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mzansijobs/careerhub/internal/types"
)

// GetScore reads a cached (job, user) relevance value, nil when absent.
func (s *Postgres) GetScore(ctx context.Context, jobID, userID uuid.UUID) (*types.MatchScore, error) {
	var m types.MatchScore
	err := s.pool.QueryRow(ctx,
		`SELECT job_id, user_id, score, computed_at
		 FROM match_scores WHERE job_id = $1 AND user_id = $2`,
		jobID, userID,
	).Scan(&m.JobID, &m.UserID, &m.Score, &m.ComputedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get match score: %w", err)
	}
	return &m, nil
}

// PutScore upserts a cached relevance value.
func (s *Postgres) PutScore(ctx context.Context, score *types.MatchScore) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO match_scores (job_id, user_id, score, computed_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (job_id, user_id) DO UPDATE SET
		   score = EXCLUDED.score,
		   computed_at = EXCLUDED.computed_at`,
		score.JobID, score.UserID, score.Score, score.ComputedAt)
	if err != nil {
		return fmt.Errorf("put match score: %w", err)
	}
	return nil
}
