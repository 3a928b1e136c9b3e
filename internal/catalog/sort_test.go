package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func sortFixtures() []types.JobPosting {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return []types.JobPosting{
		{ID: uuid.New(), Title: "a", CreatedAt: base.AddDate(0, 0, -10), SalaryMin: 90000, SalaryMax: 120000},
		{ID: uuid.New(), Title: "b", CreatedAt: base, SalaryMin: 140000, SalaryMax: 180000},
		{ID: uuid.New(), Title: "c", CreatedAt: base.AddDate(0, 0, -5), SalaryMin: 120000, SalaryMax: 160000},
	}
}

func TestSort_Recent(t *testing.T) {
	got := Sort(sortFixtures(), SortRecent, nil)
	assert.Equal(t, []string{"b", "c", "a"}, titles(got))
}

func TestSort_SalaryHighAndLow(t *testing.T) {
	high := Sort(sortFixtures(), SortSalaryHigh, nil)
	assert.Equal(t, []string{"b", "c", "a"}, titles(high))

	low := Sort(sortFixtures(), SortSalaryLow, nil)
	assert.Equal(t, []string{"a", "c", "b"}, titles(low))
}

func TestSort_RelevantUsesScores(t *testing.T) {
	postings := sortFixtures()
	scores := map[uuid.UUID]int{
		postings[0].ID: 95,
		postings[1].ID: 60,
		postings[2].ID: 80,
	}
	got := Sort(postings, SortRelevant, scores)
	assert.Equal(t, []string{"a", "c", "b"}, titles(got))
}

func TestSort_RelevantWithoutScoresKeepsOrder(t *testing.T) {
	postings := sortFixtures()
	got := Sort(postings, SortRelevant, nil)
	assert.Equal(t, titles(postings), titles(got))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	postings := sortFixtures()
	_ = Sort(postings, SortRecent, nil)
	assert.Equal(t, []string{"a", "b", "c"}, titles(postings))
}

func TestSortOrder_Valid(t *testing.T) {
	assert.True(t, SortRecent.Valid())
	assert.False(t, SortOrder("alphabetical").Valid())
}

func titles(postings []types.JobPosting) []string {
	out := make([]string, len(postings))
	for i, p := range postings {
		out[i] = p.Title
	}
	return out
}
