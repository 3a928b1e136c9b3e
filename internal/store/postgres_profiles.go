package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rafael/jobmatch/internal/types"
)

// GetCandidateProfile retrieves a profile by id, (nil, nil) when absent.
func (s *Postgres) GetCandidateProfile(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	var p types.CandidateProfile
	var experienceJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, bio, skills, experience, resume_ref,
		        location, desired_salary_min, desired_salary_max
		 FROM candidate_profiles WHERE id = $1`, id,
	).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Bio, &p.Skills, &experienceJSON,
		&p.ResumeRef, &p.Location, &p.DesiredSalaryMin, &p.DesiredSalaryMax)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate profile: %w", err)
	}

	if experienceJSON != nil {
		_ = json.Unmarshal(experienceJSON, &p.Experience)
	}
	return &p, nil
}

// SaveCandidateProfile upserts a profile; profiles are only ever edited
// by their owner.
func (s *Postgres) SaveCandidateProfile(ctx context.Context, p *types.CandidateProfile) error {
	experienceJSON, err := json.Marshal(p.Experience)
	if err != nil {
		return fmt.Errorf("failed to marshal experience: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO candidate_profiles
		 (id, first_name, last_name, bio, skills, experience, resume_ref,
		  location, desired_salary_min, desired_salary_max)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		  first_name = $2, last_name = $3, bio = $4, skills = $5, experience = $6,
		  resume_ref = $7, location = $8, desired_salary_min = $9, desired_salary_max = $10`,
		p.ID, p.FirstName, p.LastName, p.Bio, p.Skills, experienceJSON,
		p.ResumeRef, p.Location, p.DesiredSalaryMin, p.DesiredSalaryMax,
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate profile: %w", err)
	}
	return nil
}
