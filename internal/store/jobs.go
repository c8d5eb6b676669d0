package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mzansijobs/careerhub/internal/search"
	"github.com/mzansijobs/careerhub/internal/types"
)

const jobColumns = `id, title, description, requirements, responsibilities,
	company_id, company_name, job_type, experience_level,
	province, city, suburb, is_remote,
	salary_min, salary_max, salary_currency, salary_period, salary_visible,
	skills, industry, external_id, source, source_url,
	status, featured, urgent, view_count, application_count,
	created_at, published_at, expires_at, last_seen_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*types.CanonicalJob, error) {
	var j types.CanonicalJob
	var skillsJSON []byte

	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Responsibilities,
		&j.CompanyID, &j.CompanyName, &j.JobType, &j.ExperienceLevel,
		&j.Location.Province, &j.Location.City, &j.Location.Suburb, &j.Location.IsRemote,
		&j.Salary.Min, &j.Salary.Max, &j.Salary.Currency, &j.Salary.Period, &j.Salary.Visible,
		&skillsJSON, &j.Industry, &j.ExternalID, &j.Source, &j.SourceURL,
		&j.Status, &j.Featured, &j.Urgent, &j.ViewCount, &j.ApplicationCount,
		&j.CreatedAt, &j.PublishedAt, &j.ExpiresAt, &j.LastSeenAt,
	)
	if err != nil {
		return nil, err
	}

	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &j.Skills)
	}
	return &j, nil
}

func (s *Postgres) collectJobs(rows pgx.Rows) ([]types.CanonicalJob, error) {
	defer rows.Close()

	var jobs []types.CanonicalJob
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job row: %w", err)
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate job rows: %w", err)
	}
	return jobs, nil
}

// CreateJob inserts a new canonical record.
func (s *Postgres) CreateJob(ctx context.Context, job *types.CanonicalJob) error {
	skillsJSON, err := json.Marshal(job.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		         $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24,
		         $25, $26, $27, $28, $29, $30, $31, $32)`,
		job.ID, job.Title, job.Description, job.Requirements, job.Responsibilities,
		job.CompanyID, job.CompanyName, job.JobType, job.ExperienceLevel,
		job.Location.Province, job.Location.City, job.Location.Suburb, job.Location.IsRemote,
		job.Salary.Min, job.Salary.Max, job.Salary.Currency, job.Salary.Period, job.Salary.Visible,
		skillsJSON, job.Industry, job.ExternalID, job.Source, job.SourceURL,
		job.Status, job.Featured, job.Urgent, job.ViewCount, job.ApplicationCount,
		job.CreatedAt, job.PublishedAt, job.ExpiresAt, job.LastSeenAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetJob fetches a job by id, returning nil when absent.
func (s *Postgres) GetJob(ctx context.Context, id uuid.UUID) (*types.CanonicalJob, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

// FindByExternalID looks a job up by its (source, externalID) pair.
func (s *Postgres) FindByExternalID(ctx context.Context, source, externalID string) (*types.CanonicalJob, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE source = $1 AND external_id = $2`,
		source, externalID)
	j, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find job by external id: %w", err)
	}
	return j, nil
}

// FindByTitleCompany looks a job up by exact title and case-insensitive
// company name.
func (s *Postgres) FindByTitleCompany(ctx context.Context, title, companyName string) (*types.CanonicalJob, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE title = $1 AND LOWER(company_name) = LOWER($2)
		 LIMIT 1`,
		title, companyName)
	j, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find job by title and company: %w", err)
	}
	return j, nil
}

// TouchLastSeen records a repeat sighting without altering any other field.
func (s *Postgres) TouchLastSeen(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := s.pool.Exec(ctx, `UPDATE jobs SET last_seen_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("touch last seen: %w", err)
	}
	return nil
}

// UpdateStatus flips the single status field.
func (s *Postgres) UpdateStatus(ctx context.Context, id uuid.UUID, status types.JobStatus) error {
	_, err := s.pool.Exec(ctx, `UPDATE jobs SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	return nil
}

// IncrementViewCount bumps the view counter atomically.
func (s *Postgres) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `UPDATE jobs SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}
	return nil
}

// IncrementApplicationCount bumps the application counter atomically.
func (s *Postgres) IncrementApplicationCount(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `UPDATE jobs SET application_count = application_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment application count: %w", err)
	}
	return nil
}

// Search pushes the cheap equality predicates into SQL to bound the
// candidate set in one round trip, then runs the full filter semantics
// (text match, skills, salary overlap, ordering, facets, page window) as a
// single pass in the search engine.
func (s *Postgres) Search(ctx context.Context, filter *types.SearchFilter, now time.Time) (*types.SearchResult, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.Province != "" {
		add("province = $%d", filter.Province)
	}
	if filter.City != "" {
		add("LOWER(city) = LOWER($%d)", filter.City)
	}
	if filter.CompanyID != nil {
		add("company_id = $%d", *filter.CompanyID)
	}
	if filter.Industry != "" {
		add("LOWER(industry) = LOWER($%d)", filter.Industry)
	}
	if filter.RemoteOnly {
		conds = append(conds, "is_remote")
	}
	if filter.FeaturedOnly {
		conds = append(conds, "featured")
	}
	if filter.UrgentOnly {
		conds = append(conds, "urgent")
	}
	if filter.MaxAgeDays > 0 {
		add("published_at >= $%d", now.AddDate(0, 0, -filter.MaxAgeDays))
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	candidates, err := s.collectJobs(rows)
	if err != nil {
		return nil, err
	}

	result := search.Evaluate(candidates, filter, now)
	return &result, nil
}

// ListCandidates returns the recommendation superset: active jobs outside
// the exclusion set, ordered featured desc, urgent desc, published desc.
func (s *Postgres) ListCandidates(ctx context.Context, excludeIDs []uuid.UUID, limit int) ([]types.CanonicalJob, error) {
	exclude := make([]string, len(excludeIDs))
	for i, id := range excludeIDs {
		exclude[i] = id.String()
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE status = 'ACTIVE' AND NOT (id = ANY($1::uuid[]))
		 ORDER BY featured DESC, urgent DESC, published_at DESC
		 LIMIT $2`,
		exclude, limit)
	if err != nil {
		return nil, fmt.Errorf("list recommendation candidates: %w", err)
	}
	return s.collectJobs(rows)
}

// ListSimilar matches the reference job on any of: same company, same
// (job type, experience level), skill overlap, same (city, province).
func (s *Postgres) ListSimilar(ctx context.Context, ref *types.CanonicalJob, limit int) ([]types.CanonicalJob, error) {
	skills := ref.AllSkills()

	rows, err := s.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE status = 'ACTIVE'
		   AND id <> $1
		   AND (
		         company_id = $2
		      OR (job_type = $3 AND experience_level = $4)
		      OR (skills->'required' ?| $5 OR skills->'preferred' ?| $5)
		      OR (city <> '' AND city = $6 AND province = $7)
		   )
		 ORDER BY published_at DESC
		 LIMIT $8`,
		ref.ID, ref.CompanyID, ref.JobType, ref.ExperienceLevel,
		skills, ref.Location.City, ref.Location.Province, limit)
	if err != nil {
		return nil, fmt.Errorf("list similar jobs: %w", err)
	}
	return s.collectJobs(rows)
}

// ListExternalActive returns externally-sourced active jobs for the
// staleness sweep.
func (s *Postgres) ListExternalActive(ctx context.Context) ([]types.CanonicalJob, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE status = 'ACTIVE' AND source <> ''
		 ORDER BY last_seen_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list external active jobs: %w", err)
	}
	return s.collectJobs(rows)
}

// PurgeStale removes externally-sourced inactive jobs not sighted since
// cutoff. Employer-posted jobs are never purged.
func (s *Postgres) PurgeStale(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM jobs
		 WHERE source <> '' AND status = 'INACTIVE' AND last_seen_at < $1`,
		cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge stale jobs: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
