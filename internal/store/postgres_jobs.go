package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rafael/jobmatch/internal/types"
)

const jobColumns = `id, company_id, company_name, title, location, remote, job_type,
	salary_min, salary_max, tags, description, skills_required, status,
	created_at, expires_at, view_count, application_count`

// ListJobPostings retrieves postings matching the filter, newest first.
func (s *Postgres) ListJobPostings(ctx context.Context, f JobFilter) ([]types.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE 1=1`
	args := []any{}
	argNum := 1

	if f.CompanyID != nil {
		query += fmt.Sprintf(" AND company_id = $%d", argNum)
		args = append(args, *f.CompanyID)
		argNum++
	}
	if f.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, string(*f.Status))
		argNum++
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []types.JobPosting
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

// GetJobPosting retrieves a posting by id, (nil, nil) when absent.
func (s *Postgres) GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, id)
	p, err := scanJobPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// CreateJobPosting inserts a new posting.
func (s *Postgres) CreateJobPosting(ctx context.Context, p *types.JobPosting) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO job_postings (`+jobColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		p.ID, p.CompanyID, p.CompanyName, p.Title, p.Location, p.Remote, string(p.JobType),
		p.SalaryMin, p.SalaryMax, p.Tags, p.Description, p.SkillsRequired, string(p.Status),
		p.CreatedAt, p.ExpiresAt, p.ViewCount, p.ApplicationCount,
	)
	if err != nil {
		return fmt.Errorf("failed to create job posting: %w", err)
	}
	return nil
}

// SetJobStatus updates a posting's status.
func (s *Postgres) SetJobStatus(ctx context.Context, id uuid.UUID, status types.JobStatus) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE job_postings SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to set job status: %w", err)
	}
	return nil
}

// IncrementJobViews bumps the posting's view counter.
func (s *Postgres) IncrementJobViews(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE job_postings SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	return nil
}

// IncrementJobApplications bumps the posting's application counter.
func (s *Postgres) IncrementJobApplications(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE job_postings SET application_count = application_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment application count: %w", err)
	}
	return nil
}

func scanJobPosting(row pgx.Row) (types.JobPosting, error) {
	var p types.JobPosting
	var jobType, status string
	err := row.Scan(&p.ID, &p.CompanyID, &p.CompanyName, &p.Title, &p.Location, &p.Remote,
		&jobType, &p.SalaryMin, &p.SalaryMax, &p.Tags, &p.Description, &p.SkillsRequired,
		&status, &p.CreatedAt, &p.ExpiresAt, &p.ViewCount, &p.ApplicationCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.JobPosting{}, err
		}
		return types.JobPosting{}, fmt.Errorf("failed to scan job posting: %w", err)
	}
	p.JobType = types.JobType(jobType)
	p.Status = types.JobStatus(status)
	return p, nil
}
