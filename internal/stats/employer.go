// Package stats derives dashboard counters from job and application collections.
//
// Every function here is pure over its inputs: callers fetch the scoped
// collections once and all counts are computed from that single
// snapshot, so the counts can't drift apart the way independent count
// queries against a changing store would.
package stats

import (
	"time"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/types"
)

// DefaultWindowDays is the trailing window for "recent" counts.
const DefaultWindowDays = 7

// EmployerStats summarizes one company's postings and applicants.
type EmployerStats struct {
	ActiveJobs          int `json:"active_jobs"`
	TotalApplicants     int `json:"total_applicants"`
	NewApplications     int `json:"new_applications"`
	InterviewsScheduled int `json:"interviews_scheduled"`
}

// AggregateEmployer computes employer-scope counters. postings must
// already be scoped to the company; applications count only when their
// job belongs to those postings. windowDays <= 0 falls back to
// DefaultWindowDays.
func AggregateEmployer(postings []types.JobPosting, applications []types.Application, windowDays int, now time.Time) EmployerStats {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	cutoff := now.AddDate(0, 0, -windowDays)

	var s EmployerStats
	jobIDs := make(map[uuid.UUID]bool, len(postings))
	for _, p := range postings {
		jobIDs[p.ID] = true
		if p.Status == types.JobStatusActive {
			s.ActiveJobs++
		}
	}

	for _, a := range applications {
		if !jobIDs[a.JobID] {
			continue
		}
		s.TotalApplicants++
		if a.CreatedAt.After(cutoff) {
			s.NewApplications++
		}
		if a.Status == types.StatusInterview {
			s.InterviewsScheduled++
		}
	}
	return s
}
