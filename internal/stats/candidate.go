package stats

import (
	"github.com/rafael/jobmatch/internal/types"
)

// CandidateStats is a strict partition of a candidate's applications by
// current status: Pending + Interviews + Rejected + Accepted == Total.
type CandidateStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Interviews int `json:"interviews"`
	Rejected   int `json:"rejected"`
	Accepted   int `json:"accepted"`
}

// AggregateCandidate computes candidate-scope counters from one
// consistently fetched application collection.
func AggregateCandidate(applications []types.Application) CandidateStats {
	var s CandidateStats
	for _, a := range applications {
		s.Total++
		switch a.Status {
		case types.StatusInterview:
			s.Interviews++
		case types.StatusRejected:
			s.Rejected++
		case types.StatusHired:
			s.Accepted++
		default:
			// New and Reviewed are both "in progress" from the
			// candidate's point of view.
			s.Pending++
		}
	}
	return s
}
