package types

import (
	"github.com/google/uuid"
)

// ExperienceEntry is one position in a candidate's work history.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"` // YYYY-MM
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// CandidateProfile represents a job seeker's profile. It is owned and
// mutated only by the candidate; the engine reads it for scoring and
// profile-completion metrics.
type CandidateProfile struct {
	ID               uuid.UUID         `json:"id"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Bio              string            `json:"bio,omitempty"`
	Skills           []string          `json:"skills"`
	Experience       []ExperienceEntry `json:"experience"`
	ResumeRef        string            `json:"resume_ref,omitempty"` // opaque, resolved by the upload service
	Location         string            `json:"location,omitempty"`
	DesiredSalaryMin int               `json:"desired_salary_min,omitempty"`
	DesiredSalaryMax int               `json:"desired_salary_max,omitempty"`
}

// HasDesiredSalary reports whether the candidate declared a salary range.
func (c *CandidateProfile) HasDesiredSalary() bool {
	return c.DesiredSalaryMin > 0 && c.DesiredSalaryMax > 0
}
