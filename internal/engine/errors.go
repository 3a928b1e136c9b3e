package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// UnauthorizedError indicates the actor lacks rights over the target job.
type UnauthorizedError struct {
	UserID uuid.UUID
	JobID  uuid.UUID
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("user %s is not allowed to manage job %s", e.UserID, e.JobID)
}

// NotFoundError indicates a referenced record is absent.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// JobClosedError indicates an application against a posting that is no
// longer accepting applications.
type JobClosedError struct {
	JobID uuid.UUID
}

func (e *JobClosedError) Error() string {
	return fmt.Sprintf("job %s is not accepting applications", e.JobID)
}
