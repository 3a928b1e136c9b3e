// Package lifecycle enforces the allowed status transitions of an application.
package lifecycle

import (
	"time"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/types"
)

// allowedEdges is the full transition table. Anything not listed,
// including self-transitions and edges out of a terminal status, is
// rejected.
var allowedEdges = map[types.ApplicationStatus][]types.ApplicationStatus{
	types.StatusNew:       {types.StatusReviewed, types.StatusInterview, types.StatusRejected},
	types.StatusReviewed:  {types.StatusInterview, types.StatusRejected},
	types.StatusInterview: {types.StatusHired, types.StatusRejected},
}

// CanTransition reports whether from -> to is an allowed edge.
func CanTransition(from, to types.ApplicationStatus) bool {
	for _, next := range allowedEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from the given one, in
// table order. Terminal statuses return nil.
func NextStatuses(from types.ApplicationStatus) []types.ApplicationStatus {
	return allowedEdges[from]
}

// NewApplication builds a fresh application in status New with the
// initial history entry, the only way an application comes into being.
func NewApplication(jobID, candidateID, companyID uuid.UUID, matchScore int, now time.Time) types.Application {
	return types.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: candidateID,
		CompanyID:   companyID,
		Status:      types.StatusNew,
		MatchScore:  matchScore,
		CreatedAt:   now,
		StatusHistory: []types.StatusChange{
			{Status: types.StatusNew, Timestamp: now},
		},
	}
}

// Transition returns a copy of app moved to target with the history
// appended, or an InvalidTransitionError. This is the only place an
// application's status may change.
func Transition(app types.Application, target types.ApplicationStatus, now time.Time) (types.Application, error) {
	if !CanTransition(app.Status, target) {
		return types.Application{}, &InvalidTransitionError{
			ApplicationID: app.ID,
			From:          app.Status,
			To:            target,
		}
	}

	updated := app
	updated.Status = target
	updated.StatusHistory = make([]types.StatusChange, 0, len(app.StatusHistory)+1)
	updated.StatusHistory = append(updated.StatusHistory, app.StatusHistory...)
	updated.StatusHistory = append(updated.StatusHistory, types.StatusChange{Status: target, Timestamp: now})
	return updated, nil
}
