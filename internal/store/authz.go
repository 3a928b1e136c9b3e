package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/types"
)

// Authorizer answers the access-control question the engine delegates:
// may this user manage that job. The rule is ownership, nothing more:
// an employer account manages exactly its own company's postings.
type Authorizer struct {
	store Store
}

// NewAuthorizer creates an Authorizer backed by the given store.
func NewAuthorizer(s Store) *Authorizer {
	return &Authorizer{store: s}
}

// CanManageJob reports whether userID may manage jobID. Unknown users
// or jobs simply can't.
func (a *Authorizer) CanManageJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	user, err := a.store.GetUser(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil || user.Role != types.RoleEmployer || user.CompanyID == nil {
		return false, nil
	}

	job, err := a.store.GetJobPosting(ctx, jobID)
	if err != nil {
		return false, err
	}
	if job == nil {
		return false, nil
	}

	return job.CompanyID == *user.CompanyID, nil
}
