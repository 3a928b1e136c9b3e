package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CreateJobRequest represents a request to publish a new posting.
type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required,min=1"`
	Location       string   `json:"location" validate:"required"`
	Remote         bool     `json:"remote"`
	JobType        JobType  `json:"job_type" validate:"required,oneof=full-time part-time contract freelance"`
	SalaryMin      int      `json:"salary_min" validate:"gte=0"`
	SalaryMax      int      `json:"salary_max" validate:"gte=0"`
	Tags           []string `json:"tags"`
	Description    string   `json:"description" validate:"required"`
	SkillsRequired []string `json:"skills_required"`
	ExpiresInDays  int      `json:"expires_in_days" validate:"gte=0"`
}

// Validate validates the CreateJobRequest using the validator, plus the
// salary-band invariant the tag language can't express.
func (r *CreateJobRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if r.SalaryMin > 0 && r.SalaryMax > 0 && r.SalaryMin > r.SalaryMax {
		return fmt.Errorf("salary_min (%d) exceeds salary_max (%d)", r.SalaryMin, r.SalaryMax)
	}
	return nil
}

// TransitionRequest asks the state machine to move an application.
type TransitionRequest struct {
	Status ApplicationStatus `json:"status" validate:"required,oneof=New Reviewed Interview Hired Rejected"`
}

// Validate validates the TransitionRequest using the validator.
func (r *TransitionRequest) Validate() error {
	return validator.New().Struct(r)
}

// UpdateProfileRequest carries candidate profile edits.
type UpdateProfileRequest struct {
	FirstName        string            `json:"first_name" validate:"required,min=1"`
	LastName         string            `json:"last_name" validate:"required,min=1"`
	Bio              string            `json:"bio"`
	Skills           []string          `json:"skills"`
	Experience       []ExperienceEntry `json:"experience"`
	ResumeRef        string            `json:"resume_ref"`
	Location         string            `json:"location"`
	DesiredSalaryMin int               `json:"desired_salary_min" validate:"gte=0"`
	DesiredSalaryMax int               `json:"desired_salary_max" validate:"gte=0"`
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if r.DesiredSalaryMin > 0 && r.DesiredSalaryMax > 0 && r.DesiredSalaryMin > r.DesiredSalaryMax {
		return fmt.Errorf("desired_salary_min (%d) exceeds desired_salary_max (%d)", r.DesiredSalaryMin, r.DesiredSalaryMax)
	}
	return nil
}
