package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/types"
)

// DuplicateApplicationError indicates a second application for the same
// (job, candidate) pair.
type DuplicateApplicationError struct {
	JobID       uuid.UUID
	CandidateID uuid.UUID
}

func (e *DuplicateApplicationError) Error() string {
	return fmt.Sprintf("candidate %s already applied to job %s", e.CandidateID, e.JobID)
}

// StatusConflictError indicates the optimistic status check failed: the
// application moved between the read and the write.
type StatusConflictError struct {
	ApplicationID uuid.UUID
	Expected      types.ApplicationStatus
	Actual        types.ApplicationStatus
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("application %s status changed concurrently: expected %s, found %s",
		e.ApplicationID, e.Expected, e.Actual)
}

// DuplicateEmailError indicates the email is already registered.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}
