// Package engine orchestrates the matching and lifecycle rules over the store.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/catalog"
	"github.com/rafael/jobmatch/internal/lifecycle"
	"github.com/rafael/jobmatch/internal/matching"
	"github.com/rafael/jobmatch/internal/store"
	"github.com/rafael/jobmatch/internal/types"
)

// Authorizer is the access-control collaborator. The engine only asks
// the question; it never implements the rule itself.
type Authorizer interface {
	CanManageJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
}

// Config holds engine tuning knobs.
type Config struct {
	// WindowDays is the trailing window for "recent" dashboard counts.
	// Zero means the default of 7.
	WindowDays int
	// Now overrides the clock, used by tests.
	Now func() time.Time
}

// Engine exposes the job board's domain operations: search, apply,
// status transitions, and dashboard aggregation. All shared state lives
// in the store; the engine itself only holds the per-application locks
// that serialize transitions.
type Engine struct {
	store      store.Store
	authz      Authorizer
	windowDays int
	locks      *lifecycle.LockRegistry
	now        func() time.Time
}

// New creates an Engine over the given store and authorizer.
func New(s store.Store, authz Authorizer, cfg Config) *Engine {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 7
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Engine{
		store:      s,
		authz:      authz,
		windowDays: cfg.WindowDays,
		locks:      lifecycle.NewLockRegistry(),
		now:        cfg.Now,
	}
}

// JobMatch pairs a posting with the viewing candidate's score. Score is
// nil when no candidate is known (anonymous browsing).
type JobMatch struct {
	Posting types.JobPosting `json:"posting"`
	Score   *int             `json:"score,omitempty"`
	Band    types.MatchBand  `json:"band,omitempty"`
}

// SearchJobs filters the active catalog, scores it against the optional
// candidate, and applies the requested sort. The whole catalog is
// fetched once so filtering and scoring see one snapshot.
func (e *Engine) SearchJobs(ctx context.Context, criteria catalog.Criteria, order catalog.SortOrder, candidateID *uuid.UUID) ([]JobMatch, error) {
	active := types.JobStatusActive
	postings, err := e.store.ListJobPostings(ctx, store.JobFilter{Status: &active})
	if err != nil {
		return nil, err
	}

	filtered := catalog.Filter(postings, criteria)

	var profile *types.CandidateProfile
	if candidateID != nil {
		profile, err = e.store.GetCandidateProfile(ctx, *candidateID)
		if err != nil {
			return nil, err
		}
	}

	var scores map[uuid.UUID]int
	if profile != nil {
		scores = make(map[uuid.UUID]int, len(filtered))
		for i := range filtered {
			scores[filtered[i].ID] = matching.Score(profile, &filtered[i])
		}
	}

	if order.Valid() {
		filtered = catalog.Sort(filtered, order, scores)
	}

	out := make([]JobMatch, len(filtered))
	for i, p := range filtered {
		m := JobMatch{Posting: p}
		if scores != nil {
			score := scores[p.ID]
			m.Score = &score
			m.Band = types.BandForScore(score)
		}
		out[i] = m
	}
	return out, nil
}

// ViewJob returns a posting and records the view.
func (e *Engine) ViewJob(ctx context.Context, jobID uuid.UUID) (*types.JobPosting, error) {
	job, err := e.store.GetJobPosting(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, &NotFoundError{Entity: "job", ID: jobID}
	}
	if err := e.store.IncrementJobViews(ctx, jobID); err != nil {
		return nil, err
	}
	job.ViewCount++
	return job, nil
}

// CreateJob publishes a posting for the employer's company.
func (e *Engine) CreateJob(ctx context.Context, actorID uuid.UUID, req *types.CreateJobRequest) (*types.JobPosting, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	actor, err := e.store.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil || actor.Role != types.RoleEmployer || actor.CompanyID == nil {
		return nil, &UnauthorizedError{UserID: actorID}
	}

	now := e.now()
	expiresIn := req.ExpiresInDays
	if expiresIn <= 0 {
		expiresIn = 30
	}
	job := types.JobPosting{
		ID:             uuid.New(),
		CompanyID:      *actor.CompanyID,
		CompanyName:    actor.Name,
		Title:          req.Title,
		Location:       req.Location,
		Remote:         req.Remote,
		JobType:        req.JobType,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Tags:           req.Tags,
		Description:    req.Description,
		SkillsRequired: req.SkillsRequired,
		Status:         types.JobStatusActive,
		CreatedAt:      now,
		ExpiresAt:      now.AddDate(0, 0, expiresIn),
	}
	if err := e.store.CreateJobPosting(ctx, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// SetJobStatus toggles a posting between Active and Inactive on behalf
// of its owning employer. Retiring a posting for good goes through
// ArchiveJob instead.
func (e *Engine) SetJobStatus(ctx context.Context, actorID, jobID uuid.UUID, status types.JobStatus) (*types.JobPosting, error) {
	if err := e.requireManage(ctx, actorID, jobID); err != nil {
		return nil, err
	}

	job, err := e.store.GetJobPosting(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, &NotFoundError{Entity: "job", ID: jobID}
	}

	if err := e.store.SetJobStatus(ctx, jobID, status); err != nil {
		return nil, err
	}
	job.Status = status
	return job, nil
}

// ArchiveJob retires a posting. Postings with applications are never
// deleted; archiving is the terminal state for them.
func (e *Engine) ArchiveJob(ctx context.Context, actorID, jobID uuid.UUID) error {
	if err := e.requireManage(ctx, actorID, jobID); err != nil {
		return err
	}
	return e.store.SetJobStatus(ctx, jobID, types.JobStatusArchived)
}

// Apply creates an application for the candidate against the job,
// computing the match score at creation. A second application for the
// same pair surfaces the store's duplicate error unchanged.
func (e *Engine) Apply(ctx context.Context, candidateID, jobID uuid.UUID) (*types.Application, error) {
	job, err := e.store.GetJobPosting(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, &NotFoundError{Entity: "job", ID: jobID}
	}
	if job.Status != types.JobStatusActive {
		return nil, &JobClosedError{JobID: jobID}
	}

	profile, err := e.store.GetCandidateProfile(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		// Scoring degrades to neutral sub-scores for an empty profile.
		profile = &types.CandidateProfile{ID: candidateID}
	}

	app := lifecycle.NewApplication(jobID, candidateID, job.CompanyID, matching.Score(profile, job), e.now())
	if err := e.store.CreateApplication(ctx, &app); err != nil {
		return nil, err
	}
	if err := e.store.IncrementJobApplications(ctx, jobID); err != nil {
		return nil, err
	}
	return &app, nil
}

// Transition moves an application to the target status on behalf of an
// employer. The read-check-write sequence is serialized per application
// id, and the store write double-checks the expected current status.
func (e *Engine) Transition(ctx context.Context, actorID, applicationID uuid.UUID, target types.ApplicationStatus) (*types.Application, error) {
	unlock := e.locks.Lock(applicationID)
	defer unlock()

	app, err := e.store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, &NotFoundError{Entity: "application", ID: applicationID}
	}

	allowed, err := e.authz.CanManageJob(ctx, actorID, app.JobID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, &UnauthorizedError{UserID: actorID, JobID: app.JobID}
	}

	updated, err := lifecycle.Transition(*app, target, e.now())
	if err != nil {
		return nil, err
	}

	last := updated.StatusHistory[len(updated.StatusHistory)-1]
	if err := e.store.UpdateApplicationStatus(ctx, applicationID, app.Status, target, last.Timestamp); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetApplication returns one application. Only the candidate who filed it
// or an employer who manages the posting may read it.
func (e *Engine) GetApplication(ctx context.Context, actorID, applicationID uuid.UUID) (*types.Application, error) {
	app, err := e.store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, &NotFoundError{Entity: "application", ID: applicationID}
	}

	if app.CandidateID == actorID {
		return app, nil
	}
	allowed, err := e.authz.CanManageJob(ctx, actorID, app.JobID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, &UnauthorizedError{UserID: actorID, JobID: app.JobID}
	}
	return app, nil
}

// RefreshMatchScore recomputes and persists an application's score,
// typically after the candidate edited their profile.
func (e *Engine) RefreshMatchScore(ctx context.Context, applicationID uuid.UUID) (int, error) {
	app, err := e.store.GetApplication(ctx, applicationID)
	if err != nil {
		return 0, err
	}
	if app == nil {
		return 0, &NotFoundError{Entity: "application", ID: applicationID}
	}

	job, err := e.store.GetJobPosting(ctx, app.JobID)
	if err != nil {
		return 0, err
	}
	if job == nil {
		return 0, &NotFoundError{Entity: "job", ID: app.JobID}
	}

	profile, err := e.store.GetCandidateProfile(ctx, app.CandidateID)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		profile = &types.CandidateProfile{ID: app.CandidateID}
	}

	score := matching.Score(profile, job)
	if err := e.store.UpdateApplicationScore(ctx, applicationID, score); err != nil {
		return 0, err
	}
	return score, nil
}

func (e *Engine) requireManage(ctx context.Context, actorID, jobID uuid.UUID) error {
	allowed, err := e.authz.CanManageJob(ctx, actorID, jobID)
	if err != nil {
		return err
	}
	if !allowed {
		return &UnauthorizedError{UserID: actorID, JobID: jobID}
	}
	return nil
}
