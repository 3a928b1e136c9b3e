package catalog

import (
	"sort"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/types"
)

// SortOrder selects an explicit ordering layered on top of Filter.
type SortOrder string

// Sort orders offered by the search UI.
const (
	SortRelevant   SortOrder = "relevant"
	SortRecent     SortOrder = "recent"
	SortSalaryHigh SortOrder = "salary-high"
	SortSalaryLow  SortOrder = "salary-low"
)

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool {
	switch o {
	case SortRelevant, SortRecent, SortSalaryHigh, SortSalaryLow:
		return true
	}
	return false
}

// Sort returns a new slice ordered by o. Relevance needs per-posting
// match scores; pass nil scores to keep the input order. Ties keep the
// input order (stable sort).
func Sort(postings []types.JobPosting, o SortOrder, scores map[uuid.UUID]int) []types.JobPosting {
	out := make([]types.JobPosting, len(postings))
	copy(out, postings)

	switch o {
	case SortRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortSalaryHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SalaryMax > out[j].SalaryMax
		})
	case SortSalaryLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SalaryMin < out[j].SalaryMin
		})
	case SortRelevant:
		if scores == nil {
			return out
		}
		sort.SliceStable(out, func(i, j int) bool {
			return scores[out[i].ID] > scores[out[j].ID]
		})
	}
	return out
}
