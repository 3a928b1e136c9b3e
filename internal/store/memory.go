package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/types"
)

// Memory is an in-memory Store used by tests, the seed command, and
// local development without Postgres. It enforces the same constraints
// as the Postgres store.
type Memory struct {
	mu           sync.RWMutex
	jobs         map[uuid.UUID]types.JobPosting
	applications map[uuid.UUID]types.Application
	profiles     map[uuid.UUID]types.CandidateProfile
	users        map[uuid.UUID]types.User
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		jobs:         make(map[uuid.UUID]types.JobPosting),
		applications: make(map[uuid.UUID]types.Application),
		profiles:     make(map[uuid.UUID]types.CandidateProfile),
		users:        make(map[uuid.UUID]types.User),
	}
}

// ListJobPostings returns postings matching the filter, newest first so
// results have a deterministic order.
func (m *Memory) ListJobPostings(_ context.Context, f JobFilter) ([]types.JobPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.JobPosting, 0, len(m.jobs))
	for _, p := range m.jobs {
		if f.CompanyID != nil && p.CompanyID != *f.CompanyID {
			continue
		}
		if f.Status != nil && p.Status != *f.Status {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) GetJobPosting(_ context.Context, id uuid.UUID) (*types.JobPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.jobs[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *Memory) CreateJobPosting(_ context.Context, p *types.JobPosting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[p.ID] = *p
	return nil
}

func (m *Memory) SetJobStatus(_ context.Context, id uuid.UUID, status types.JobStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.jobs[id]
	if !ok {
		return nil
	}
	p.Status = status
	m.jobs[id] = p
	return nil
}

func (m *Memory) IncrementJobViews(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.jobs[id]; ok {
		p.ViewCount++
		m.jobs[id] = p
	}
	return nil
}

func (m *Memory) IncrementJobApplications(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.jobs[id]; ok {
		p.ApplicationCount++
		m.jobs[id] = p
	}
	return nil
}

func (m *Memory) ListApplications(_ context.Context, f ApplicationFilter) ([]types.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.Application, 0, len(m.applications))
	for _, a := range m.applications {
		if f.JobID != nil && a.JobID != *f.JobID {
			continue
		}
		if f.CandidateID != nil && a.CandidateID != *f.CandidateID {
			continue
		}
		if f.CompanyID != nil && a.CompanyID != *f.CompanyID {
			continue
		}
		if f.CreatedAfter != nil && !a.CreatedAt.After(*f.CreatedAfter) {
			continue
		}
		out = append(out, copyApplication(a))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) GetApplication(_ context.Context, id uuid.UUID) (*types.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.applications[id]
	if !ok {
		return nil, nil
	}
	cp := copyApplication(a)
	return &cp, nil
}

func (m *Memory) CreateApplication(_ context.Context, app *types.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.applications {
		if existing.JobID == app.JobID && existing.CandidateID == app.CandidateID {
			return &DuplicateApplicationError{JobID: app.JobID, CandidateID: app.CandidateID}
		}
	}
	m.applications[app.ID] = copyApplication(*app)
	return nil
}

func (m *Memory) UpdateApplicationStatus(_ context.Context, id uuid.UUID, expected, next types.ApplicationStatus, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.applications[id]
	if !ok {
		return nil
	}
	if a.Status != expected {
		return &StatusConflictError{ApplicationID: id, Expected: expected, Actual: a.Status}
	}
	a.Status = next
	a.StatusHistory = append(a.StatusHistory, types.StatusChange{Status: next, Timestamp: at})
	m.applications[id] = a
	return nil
}

func (m *Memory) UpdateApplicationScore(_ context.Context, id uuid.UUID, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.applications[id]; ok {
		a.MatchScore = score
		m.applications[id] = a
	}
	return nil
}

func (m *Memory) GetCandidateProfile(_ context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *Memory) SaveCandidateProfile(_ context.Context, p *types.CandidateProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.ID] = *p
	return nil
}

func (m *Memory) CreateUser(_ context.Context, u *types.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return &DuplicateEmailError{Email: u.Email}
		}
	}
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) GetUser(_ context.Context, id uuid.UUID) (*types.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (*types.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

// copyApplication deep-copies the history slice so callers can't alias
// stored state.
func copyApplication(a types.Application) types.Application {
	out := a
	out.StatusHistory = make([]types.StatusChange, len(a.StatusHistory))
	copy(out.StatusHistory, a.StatusHistory)
	return out
}
