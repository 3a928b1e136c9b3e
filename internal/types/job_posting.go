// Package types provides type definitions for structured data used throughout the jobmatch engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// JobType categorizes the employment arrangement of a posting.
type JobType string

// Supported job types.
const (
	JobTypeFullTime  JobType = "full-time"
	JobTypePartTime  JobType = "part-time"
	JobTypeContract  JobType = "contract"
	JobTypeFreelance JobType = "freelance"
)

// Valid reports whether t is one of the supported job types.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeFreelance:
		return true
	}
	return false
}

// JobStatus is the lifecycle status of a posting.
type JobStatus string

// Posting statuses. Archived postings are kept for their application
// history; a posting with applications is archived rather than deleted.
const (
	JobStatusActive   JobStatus = "Active"
	JobStatusInactive JobStatus = "Inactive"
	JobStatusArchived JobStatus = "Archived"
)

// JobPosting represents a job advertisement owned by a company.
type JobPosting struct {
	ID               uuid.UUID `json:"id"`
	CompanyID        uuid.UUID `json:"company_id"`
	CompanyName      string    `json:"company_name"`
	Title            string    `json:"title"`
	Location         string    `json:"location"`
	Remote           bool      `json:"remote"`
	JobType          JobType   `json:"job_type"`
	SalaryMin        int       `json:"salary_min"`
	SalaryMax        int       `json:"salary_max"`
	Tags             []string  `json:"tags"`
	Description      string    `json:"description"`
	SkillsRequired   []string  `json:"skills_required"`
	Status           JobStatus `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	ViewCount        int       `json:"view_count"`
	ApplicationCount int       `json:"application_count"`
}

// IsRemote reports whether the posting can be worked remotely, either via
// the explicit flag or a location string that mentions remote work.
func (p *JobPosting) IsRemote() bool {
	return p.Remote || strings.Contains(strings.ToLower(p.Location), "remote")
}

// HasSalaryBand reports whether both ends of the salary band are declared.
func (p *JobPosting) HasSalaryBand() bool {
	return p.SalaryMin > 0 && p.SalaryMax > 0
}
