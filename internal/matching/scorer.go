// Package matching computes the compatibility score between a candidate and a posting.
package matching

import (
	"math"
	"strings"

	"github.com/rafael/jobmatch/internal/types"
)

// Weights for the scoring components. They sum to 1.0.
const (
	skillOverlapWeight = 0.6
	locationWeight     = 0.2
	salaryWeight       = 0.2
)

const (
	// neutralSubScore is used when the data needed for a sub-score is
	// missing on either side, so incomplete profiles aren't punished
	// as if they were a definite mismatch.
	neutralSubScore = 50.0
	// mismatchLocationCredit is the partial credit for an on-site job
	// in a different location than the candidate.
	mismatchLocationCredit = 25.0
)

// Breakdown carries the sub-scores behind a match score, each in
// [0,100] before weighting. It exists so the score stays explainable.
type Breakdown struct {
	SkillOverlap float64 `json:"skill_overlap"`
	Location     float64 `json:"location"`
	Salary       float64 `json:"salary"`
	Total        int     `json:"total"`
}

// Score returns the 0-100 compatibility score between a candidate and a
// job. It is deterministic and pure: identical inputs always produce the
// identical score, so results can be cached or recomputed freely.
func Score(candidate *types.CandidateProfile, job *types.JobPosting) int {
	return Explain(candidate, job).Total
}

// Explain computes the score together with its sub-scores.
func Explain(candidate *types.CandidateProfile, job *types.JobPosting) Breakdown {
	b := Breakdown{
		SkillOverlap: skillOverlapScore(candidate, job),
		Location:     locationScore(candidate, job),
		Salary:       salaryScore(candidate, job),
	}

	total := skillOverlapWeight*b.SkillOverlap +
		locationWeight*b.Location +
		salaryWeight*b.Salary

	b.Total = int(math.Round(total))
	if b.Total < 0 {
		b.Total = 0
	}
	if b.Total > 100 {
		b.Total = 100
	}
	return b
}

// skillOverlapScore is the fraction of the job's required skills the
// candidate declares, scaled to [0,100]. Matching is case-insensitive.
func skillOverlapScore(candidate *types.CandidateProfile, job *types.JobPosting) float64 {
	if len(job.SkillsRequired) == 0 || len(candidate.Skills) == 0 {
		return neutralSubScore
	}

	have := make(map[string]bool, len(candidate.Skills))
	for _, s := range candidate.Skills {
		if key := normalizeSkill(s); key != "" {
			have[key] = true
		}
	}

	matched := 0
	for _, required := range job.SkillsRequired {
		if have[normalizeSkill(required)] {
			matched++
		}
	}

	return float64(matched) / float64(len(job.SkillsRequired)) * 100
}

// locationScore gives full credit when the job is remote or the
// locations match, partial credit for an outright mismatch, and the
// neutral midpoint when the candidate hasn't declared a location.
func locationScore(candidate *types.CandidateProfile, job *types.JobPosting) float64 {
	if job.IsRemote() {
		return 100
	}
	if strings.TrimSpace(candidate.Location) == "" {
		return neutralSubScore
	}
	if strings.EqualFold(strings.TrimSpace(candidate.Location), strings.TrimSpace(job.Location)) {
		return 100
	}
	return mismatchLocationCredit
}

// salaryScore measures how much of the candidate's desired range the
// job's band covers. Disjoint ranges score 0; a missing range on either
// side scores the neutral midpoint.
func salaryScore(candidate *types.CandidateProfile, job *types.JobPosting) float64 {
	if !candidate.HasDesiredSalary() || !job.HasSalaryBand() {
		return neutralSubScore
	}

	low := max(job.SalaryMin, candidate.DesiredSalaryMin)
	high := min(job.SalaryMax, candidate.DesiredSalaryMax)
	if high < low {
		return 0
	}

	desiredWidth := candidate.DesiredSalaryMax - candidate.DesiredSalaryMin
	if desiredWidth == 0 {
		// Point expectation inside the band.
		return 100
	}

	score := float64(high-low) / float64(desiredWidth) * 100
	if score > 100 {
		score = 100
	}
	return score
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
