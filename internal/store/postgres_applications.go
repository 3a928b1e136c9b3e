package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rafael/jobmatch/internal/types"
)

// uniqueViolation is the Postgres error code raised by the
// (job_id, candidate_id) unique constraint.
const uniqueViolation = "23505"

const applicationColumns = `id, job_id, candidate_id, company_id, status, match_score, created_at, status_history`

// ListApplications retrieves applications matching the filter, newest first.
func (s *Postgres) ListApplications(ctx context.Context, f ApplicationFilter) ([]types.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE 1=1`
	args := []any{}
	argNum := 1

	if f.JobID != nil {
		query += fmt.Sprintf(" AND job_id = $%d", argNum)
		args = append(args, *f.JobID)
		argNum++
	}
	if f.CandidateID != nil {
		query += fmt.Sprintf(" AND candidate_id = $%d", argNum)
		args = append(args, *f.CandidateID)
		argNum++
	}
	if f.CompanyID != nil {
		query += fmt.Sprintf(" AND company_id = $%d", argNum)
		args = append(args, *f.CompanyID)
		argNum++
	}
	if f.CreatedAfter != nil {
		query += fmt.Sprintf(" AND created_at > $%d", argNum)
		args = append(args, *f.CreatedAfter)
		argNum++
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// GetApplication retrieves an application by id, (nil, nil) when absent.
func (s *Postgres) GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	a, err := scanApplication(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// CreateApplication inserts a new application. The unique index on
// (job_id, candidate_id) turns a concurrent duplicate into
// *DuplicateApplicationError rather than a second row.
func (s *Postgres) CreateApplication(ctx context.Context, app *types.Application) error {
	historyJSON, err := json.Marshal(app.StatusHistory)
	if err != nil {
		return fmt.Errorf("failed to marshal status history: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO applications (`+applicationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		app.ID, app.JobID, app.CandidateID, app.CompanyID, string(app.Status),
		app.MatchScore, app.CreatedAt, historyJSON,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &DuplicateApplicationError{JobID: app.JobID, CandidateID: app.CandidateID}
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// UpdateApplicationStatus applies the transition with an optimistic
// check on the expected current status. Zero rows affected means either
// the row is gone or someone else moved it first.
func (s *Postgres) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, expected, next types.ApplicationStatus, at time.Time) error {
	entryJSON, err := json.Marshal(types.StatusChange{Status: next, Timestamp: at})
	if err != nil {
		return fmt.Errorf("failed to marshal status entry: %w", err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE applications
		 SET status = $1, status_history = status_history || $2::jsonb
		 WHERE id = $3 AND status = $4`,
		string(next), entryJSON, id, string(expected),
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		current, err := s.GetApplication(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return nil
		}
		return &StatusConflictError{ApplicationID: id, Expected: expected, Actual: current.Status}
	}
	return nil
}

// UpdateApplicationScore refreshes the stored match score, e.g. after a
// profile edit.
func (s *Postgres) UpdateApplicationScore(ctx context.Context, id uuid.UUID, score int) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE applications SET match_score = $1 WHERE id = $2`, score, id)
	if err != nil {
		return fmt.Errorf("failed to update match score: %w", err)
	}
	return nil
}

func scanApplication(row pgx.Row) (types.Application, error) {
	var a types.Application
	var status string
	var historyJSON []byte
	err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.CompanyID, &status,
		&a.MatchScore, &a.CreatedAt, &historyJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.Application{}, err
		}
		return types.Application{}, fmt.Errorf("failed to scan application: %w", err)
	}
	a.Status = types.ApplicationStatus(status)
	if historyJSON != nil {
		if err := json.Unmarshal(historyJSON, &a.StatusHistory); err != nil {
			return types.Application{}, fmt.Errorf("failed to unmarshal status history: %w", err)
		}
	}
	return a, nil
}
