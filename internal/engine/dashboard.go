package engine

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/matching"
	"github.com/rafael/jobmatch/internal/stats"
	"github.com/rafael/jobmatch/internal/store"
	"github.com/rafael/jobmatch/internal/types"
	"golang.org/x/sync/errgroup"
)

// recommendedLimit caps the recommended-jobs list on the candidate
// dashboard.
const recommendedLimit = 5

// recentApplicantsLimit caps the recent-applicants list on the employer
// dashboard.
const recentApplicantsLimit = 5

// EmployerDashboard is everything the company dashboard renders.
type EmployerDashboard struct {
	Stats            stats.EmployerStats `json:"stats"`
	Postings         []types.JobPosting  `json:"postings"`
	RecentApplicants []types.Application `json:"recent_applicants"`
}

// CandidateDashboard is everything the seeker dashboard renders.
type CandidateDashboard struct {
	Stats             stats.CandidateStats `json:"stats"`
	ProfileCompletion int                  `json:"profile_completion"`
	Applications      []types.Application  `json:"applications"`
	Recommended       []JobMatch           `json:"recommended"`
}

// GetEmployerDashboard aggregates one company's dashboard. The postings
// and applications collections are fetched concurrently (they are
// independent reads), then every count is derived locally from those
// two snapshots instead of issuing per-counter queries.
func (e *Engine) GetEmployerDashboard(ctx context.Context, companyID uuid.UUID) (*EmployerDashboard, error) {
	var (
		postings     []types.JobPosting
		applications []types.Application
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		postings, err = e.store.ListJobPostings(gctx, store.JobFilter{CompanyID: &companyID})
		return err
	})
	g.Go(func() error {
		var err error
		applications, err = e.store.ListApplications(gctx, store.ApplicationFilter{CompanyID: &companyID})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recent := applications
	if len(recent) > recentApplicantsLimit {
		recent = recent[:recentApplicantsLimit]
	}

	return &EmployerDashboard{
		Stats:            stats.AggregateEmployer(postings, applications, e.windowDays, e.now()),
		Postings:         postings,
		RecentApplicants: recent,
	}, nil
}

// GetCandidateDashboard aggregates one candidate's dashboard: status
// counts partitioning their applications, profile completion, and the
// top-scored active postings they haven't applied to yet.
func (e *Engine) GetCandidateDashboard(ctx context.Context, candidateID uuid.UUID) (*CandidateDashboard, error) {
	var (
		applications []types.Application
		profile      *types.CandidateProfile
		active       []types.JobPosting
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		applications, err = e.store.ListApplications(gctx, store.ApplicationFilter{CandidateID: &candidateID})
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = e.store.GetCandidateProfile(gctx, candidateID)
		return err
	})
	g.Go(func() error {
		status := types.JobStatusActive
		var err error
		active, err = e.store.ListJobPostings(gctx, store.JobFilter{Status: &status})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if profile == nil {
		profile = &types.CandidateProfile{ID: candidateID}
	}

	return &CandidateDashboard{
		Stats:             stats.AggregateCandidate(applications),
		ProfileCompletion: stats.ProfileCompletion(profile),
		Applications:      applications,
		Recommended:       recommend(profile, active, applications),
	}, nil
}

// recommend scores the postings the candidate hasn't applied to and
// returns the best ones, highest score first.
func recommend(profile *types.CandidateProfile, active []types.JobPosting, applications []types.Application) []JobMatch {
	applied := make(map[uuid.UUID]bool, len(applications))
	for _, a := range applications {
		applied[a.JobID] = true
	}

	matches := make([]JobMatch, 0, len(active))
	for i := range active {
		if applied[active[i].ID] {
			continue
		}
		score := matching.Score(profile, &active[i])
		matches = append(matches, JobMatch{
			Posting: active[i],
			Score:   &score,
			Band:    types.BandForScore(score),
		})
	}

	// Highest score first; ties keep the store's newest-first order.
	sort.SliceStable(matches, func(i, j int) bool {
		return *matches[i].Score > *matches[j].Score
	})

	if len(matches) > recommendedLimit {
		matches = matches[:recommendedLimit]
	}
	return matches
}
