package matching

import (
	"testing"

	"github.com/rafael/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func remoteJob() *types.JobPosting {
	return &types.JobPosting{
		Title:          "Backend Engineer",
		Location:       "Remote",
		SkillsRequired: []string{"Go", "PostgreSQL", "Docker"},
		SalaryMin:      100000,
		SalaryMax:      140000,
	}
}

func TestScore_IsDeterministic(t *testing.T) {
	candidate := &types.CandidateProfile{
		Skills:           []string{"Go", "Docker"},
		Location:         "Lisbon",
		DesiredSalaryMin: 90000,
		DesiredSalaryMax: 130000,
	}
	job := remoteJob()

	first := Score(candidate, job)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(candidate, job))
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	candidates := []*types.CandidateProfile{
		{},
		{Skills: []string{"COBOL"}},
		{Skills: []string{"Go", "PostgreSQL", "Docker"}, Location: "Remote", DesiredSalaryMin: 1, DesiredSalaryMax: 2},
	}
	jobs := []*types.JobPosting{
		{},
		remoteJob(),
		{Location: "Oslo", SkillsRequired: []string{"Rust"}, SalaryMin: 500000, SalaryMax: 600000},
	}

	for _, c := range candidates {
		for _, j := range jobs {
			score := Score(c, j)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestExplain_ExactSkillMatchScoresFullSubComponent(t *testing.T) {
	candidate := &types.CandidateProfile{Skills: []string{"Go", "PostgreSQL", "Docker"}}
	b := Explain(candidate, remoteJob())
	assert.Equal(t, 100.0, b.SkillOverlap)
}

func TestExplain_SkillMatchingIsCaseInsensitive(t *testing.T) {
	candidate := &types.CandidateProfile{Skills: []string{"go", "postgresql", "DOCKER"}}
	b := Explain(candidate, remoteJob())
	assert.Equal(t, 100.0, b.SkillOverlap)
}

func TestExplain_PartialSkillOverlap(t *testing.T) {
	candidate := &types.CandidateProfile{Skills: []string{"Go"}}
	b := Explain(candidate, remoteJob())
	assert.InDelta(t, 100.0/3.0, b.SkillOverlap, 0.01)
}

func TestExplain_MissingSkillsDefaultToNeutral(t *testing.T) {
	noSkills := &types.CandidateProfile{}
	b := Explain(noSkills, remoteJob())
	assert.Equal(t, neutralSubScore, b.SkillOverlap)

	jobWithoutRequirements := &types.JobPosting{Location: "Remote"}
	b = Explain(&types.CandidateProfile{Skills: []string{"Go"}}, jobWithoutRequirements)
	assert.Equal(t, neutralSubScore, b.SkillOverlap)
}

func TestExplain_LocationCredit(t *testing.T) {
	onsite := &types.JobPosting{Location: "Berlin, Germany"}

	remote := Explain(&types.CandidateProfile{Location: "Lisbon"}, remoteJob())
	assert.Equal(t, 100.0, remote.Location)

	same := Explain(&types.CandidateProfile{Location: "berlin, germany"}, onsite)
	assert.Equal(t, 100.0, same.Location)

	mismatch := Explain(&types.CandidateProfile{Location: "Lisbon"}, onsite)
	assert.Equal(t, mismatchLocationCredit, mismatch.Location)

	undeclared := Explain(&types.CandidateProfile{}, onsite)
	assert.Equal(t, neutralSubScore, undeclared.Location)
}

func TestExplain_SalaryOverlap(t *testing.T) {
	job := remoteJob() // band 100k-140k

	covered := Explain(&types.CandidateProfile{DesiredSalaryMin: 110000, DesiredSalaryMax: 130000}, job)
	assert.Equal(t, 100.0, covered.Salary)

	half := Explain(&types.CandidateProfile{DesiredSalaryMin: 120000, DesiredSalaryMax: 160000}, job)
	assert.Equal(t, 50.0, half.Salary)

	disjoint := Explain(&types.CandidateProfile{DesiredSalaryMin: 200000, DesiredSalaryMax: 250000}, job)
	assert.Equal(t, 0.0, disjoint.Salary)

	undeclared := Explain(&types.CandidateProfile{}, job)
	assert.Equal(t, neutralSubScore, undeclared.Salary)
}

func TestScore_PerfectCandidate(t *testing.T) {
	candidate := &types.CandidateProfile{
		Skills:           []string{"Go", "PostgreSQL", "Docker"},
		Location:         "Anywhere",
		DesiredSalaryMin: 100000,
		DesiredSalaryMax: 140000,
	}
	assert.Equal(t, 100, Score(candidate, remoteJob()))
}

func TestScore_WeightedCombination(t *testing.T) {
	// Skills 100, location 100 (remote), salary neutral 50:
	// 0.6*100 + 0.2*100 + 0.2*50 = 90.
	candidate := &types.CandidateProfile{Skills: []string{"Go", "PostgreSQL", "Docker"}}
	assert.Equal(t, 90, Score(candidate, remoteJob()))
}
