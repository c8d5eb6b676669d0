package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mzansijobs/careerhub/internal/types"
)

// GetOrCreateByName resolves a company by case-insensitive name, creating an
// unverified record when none exists. The insert races safely: a concurrent
// creator wins the unique index and we re-read the winner.
func (s *Postgres) GetOrCreateByName(ctx context.Context, name string) (*types.Company, error) {
	c, err := s.findCompanyByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	var created types.Company
	err = s.pool.QueryRow(ctx,
		`INSERT INTO companies (id, name, verified)
		 VALUES ($1, $2, FALSE)
		 ON CONFLICT ((LOWER(name))) DO UPDATE SET name = companies.name
		 RETURNING id, name, verified, created_at`,
		uuid.New(), name,
	).Scan(&created.ID, &created.Name, &created.Verified, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create company %q: %w", name, err)
	}
	return &created, nil
}

func (s *Postgres) findCompanyByName(ctx context.Context, name string) (*types.Company, error) {
	var c types.Company
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, verified, created_at FROM companies WHERE LOWER(name) = LOWER($1)`,
		name,
	).Scan(&c.ID, &c.Name, &c.Verified, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find company by name: %w", err)
	}
	return &c, nil
}

// GetCompany fetches a company by id, returning nil when absent.
func (s *Postgres) GetCompany(ctx context.Context, id uuid.UUID) (*types.Company, error) {
	var c types.Company
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, verified, created_at FROM companies WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Verified, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
