package engine

import (
	"context"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/matching"
	"github.com/rafael/jobmatch/internal/store"
	"github.com/rafael/jobmatch/internal/types"
)

// GetProfile returns the candidate's profile, or an empty one when they
// haven't saved anything yet.
func (e *Engine) GetProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error) {
	profile, err := e.store.GetCandidateProfile(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &types.CandidateProfile{ID: candidateID}
	}
	return profile, nil
}

// UpdateProfile saves the candidate's profile and recomputes the match
// score on each of their open applications, so employers see scores
// against the current profile rather than the one at apply time.
func (e *Engine) UpdateProfile(ctx context.Context, candidateID uuid.UUID, req *types.UpdateProfileRequest) (*types.CandidateProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile := &types.CandidateProfile{
		ID:               candidateID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Bio:              req.Bio,
		Skills:           req.Skills,
		Experience:       req.Experience,
		ResumeRef:        req.ResumeRef,
		Location:         req.Location,
		DesiredSalaryMin: req.DesiredSalaryMin,
		DesiredSalaryMax: req.DesiredSalaryMax,
	}
	if err := e.store.SaveCandidateProfile(ctx, profile); err != nil {
		return nil, err
	}

	applications, err := e.store.ListApplications(ctx, store.ApplicationFilter{CandidateID: &candidateID})
	if err != nil {
		return nil, err
	}
	for _, app := range applications {
		if app.Status.Terminal() {
			continue
		}
		job, err := e.store.GetJobPosting(ctx, app.JobID)
		if err != nil {
			return nil, err
		}
		if job == nil {
			continue
		}
		if err := e.store.UpdateApplicationScore(ctx, app.ID, matching.Score(profile, job)); err != nil {
			return nil, err
		}
	}
	return profile, nil
}
