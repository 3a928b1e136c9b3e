// Package catalog filters and orders collections of job postings.
package catalog

import (
	"strings"

	"github.com/rafael/jobmatch/internal/types"
)

// SalaryRange is a requested salary band in thousands of the currency
// unit, mirroring how the search UI sliders express it.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Criteria holds the optional search constraints. A zero-value field
// means "no constraint"; filters compose by intersection.
type Criteria struct {
	Keyword     string        `json:"keyword,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	JobType     types.JobType `json:"job_type,omitempty"`
	RemoteOnly  bool          `json:"remote_only,omitempty"`
	SalaryRange *SalaryRange  `json:"salary_range,omitempty"`
}

// Empty reports whether the criteria constrain nothing.
func (c Criteria) Empty() bool {
	return c.Keyword == "" && len(c.Tags) == 0 && c.JobType == "" && !c.RemoteOnly && c.SalaryRange == nil
}

// Filter returns the postings matching every present criterion, in the
// input order. It never reorders, never mutates its input, and never
// fails: malformed or missing posting fields simply don't match.
func Filter(postings []types.JobPosting, c Criteria) []types.JobPosting {
	if c.Empty() {
		return postings
	}

	out := make([]types.JobPosting, 0, len(postings))
	for _, p := range postings {
		if matches(&p, c) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p *types.JobPosting, c Criteria) bool {
	if c.Keyword != "" && !matchesKeyword(p, c.Keyword) {
		return false
	}
	if len(c.Tags) > 0 && !matchesAnyTag(p, c.Tags) {
		return false
	}
	if c.JobType != "" && p.JobType != c.JobType {
		return false
	}
	if c.RemoteOnly && !p.IsRemote() {
		return false
	}
	if c.SalaryRange != nil && !withinSalaryRange(p, *c.SalaryRange) {
		return false
	}
	return true
}

// matchesKeyword does a case-insensitive substring match against title,
// company name, and description; any one field matching is enough.
func matchesKeyword(p *types.JobPosting, keyword string) bool {
	kw := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(p.Title), kw) ||
		strings.Contains(strings.ToLower(p.CompanyName), kw) ||
		strings.Contains(strings.ToLower(p.Description), kw)
}

// matchesAnyTag uses OR semantics: one shared tag is enough.
func matchesAnyTag(p *types.JobPosting, tags []string) bool {
	for _, want := range tags {
		for _, have := range p.Tags {
			if strings.EqualFold(want, have) {
				return true
			}
		}
	}
	return false
}

// withinSalaryRange is a containment test, not an overlap test: the
// posting's entire band must fall inside the requested range. A band
// wider than the range on either end does not match.
func withinSalaryRange(p *types.JobPosting, r SalaryRange) bool {
	if !p.HasSalaryBand() {
		return false
	}
	return p.SalaryMin >= r.Min*1000 && p.SalaryMax <= r.Max*1000
}
