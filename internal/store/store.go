// Package store provides data access for postings, profiles, applications, and users.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/types"
)

// JobFilter narrows ListJobPostings. Nil fields mean no constraint.
type JobFilter struct {
	CompanyID *uuid.UUID
	Status    *types.JobStatus
}

// ApplicationFilter narrows ListApplications. Nil fields mean no constraint.
type ApplicationFilter struct {
	JobID        *uuid.UUID
	CandidateID  *uuid.UUID
	CompanyID    *uuid.UUID
	CreatedAfter *time.Time
}

// Store is the persistence capability the engine runs against. Lookups
// return (nil, nil) when the record is absent; the engine turns that
// into its typed not-found error. Implementations must enforce the
// one-application-per-(job, candidate) constraint and the optimistic
// status check on UpdateApplicationStatus.
type Store interface {
	ListJobPostings(ctx context.Context, f JobFilter) ([]types.JobPosting, error)
	GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error)
	CreateJobPosting(ctx context.Context, p *types.JobPosting) error
	SetJobStatus(ctx context.Context, id uuid.UUID, status types.JobStatus) error
	IncrementJobViews(ctx context.Context, id uuid.UUID) error
	IncrementJobApplications(ctx context.Context, id uuid.UUID) error

	ListApplications(ctx context.Context, f ApplicationFilter) ([]types.Application, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error)
	// CreateApplication fails with *DuplicateApplicationError when the
	// (job, candidate) pair already has one.
	CreateApplication(ctx context.Context, app *types.Application) error
	// UpdateApplicationStatus compares-and-swaps on the expected current
	// status, failing with *StatusConflictError on a stale expectation.
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, expected, next types.ApplicationStatus, at time.Time) error
	UpdateApplicationScore(ctx context.Context, id uuid.UUID, score int) error

	GetCandidateProfile(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error)
	SaveCandidateProfile(ctx context.Context, p *types.CandidateProfile) error

	CreateUser(ctx context.Context, u *types.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}
