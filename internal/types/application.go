package types

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the review status of an application.
type ApplicationStatus string

// Review statuses. Hired and Rejected are terminal.
const (
	StatusNew       ApplicationStatus = "New"
	StatusReviewed  ApplicationStatus = "Reviewed"
	StatusInterview ApplicationStatus = "Interview"
	StatusHired     ApplicationStatus = "Hired"
	StatusRejected  ApplicationStatus = "Rejected"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusNew, StatusReviewed, StatusInterview, StatusHired, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusHired || s == StatusRejected
}

// StatusChange is one entry in an application's status history.
type StatusChange struct {
	Status    ApplicationStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
}

// Application is a candidate's submission against one posting. CompanyID
// is denormalized from the posting so company-scoped queries and the
// authorization check don't need a join.
type Application struct {
	ID            uuid.UUID         `json:"id"`
	JobID         uuid.UUID         `json:"job_id"`
	CandidateID   uuid.UUID         `json:"candidate_id"`
	CompanyID     uuid.UUID         `json:"company_id"`
	Status        ApplicationStatus `json:"status"`
	MatchScore    int               `json:"match_score"`
	CreatedAt     time.Time         `json:"created_at"`
	StatusHistory []StatusChange    `json:"status_history"`
}
