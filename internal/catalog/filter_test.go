package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func fixturePostings() []types.JobPosting {
	return []types.JobPosting{
		{
			ID:          uuid.New(),
			Title:       "Senior Solana Developer",
			CompanyName: "CryptoX",
			Location:    "Remote",
			JobType:     types.JobTypeFullTime,
			SalaryMin:   120000,
			SalaryMax:   160000,
			Tags:        []string{"Solana", "Rust", "JavaScript"},
			Description: "Work on our DeFi protocol.",
		},
		{
			ID:          uuid.New(),
			Title:       "Smart Contract Engineer",
			CompanyName: "BlockFi",
			Location:    "San Francisco, CA",
			JobType:     types.JobTypeFullTime,
			SalaryMin:   140000,
			SalaryMax:   180000,
			Tags:        []string{"Ethereum", "Solidity"},
			Description: "Build secure smart contracts.",
		},
		{
			ID:          uuid.New(),
			Title:       "Blockchain Designer",
			CompanyName: "CoinBase",
			Location:    "New York, NY",
			JobType:     types.JobTypeContract,
			SalaryMin:   90000,
			SalaryMax:   120000,
			Tags:        []string{"UI/UX", "Figma"},
			Description: "Design interfaces for our exchange.",
		},
	}
}

func TestFilter_EmptyCriteriaReturnsInput(t *testing.T) {
	postings := fixturePostings()
	got := Filter(postings, Criteria{})
	assert.Equal(t, postings, got)
}

func TestFilter_ResultIsOrderPreservingSubset(t *testing.T) {
	postings := fixturePostings()
	got := Filter(postings, Criteria{JobType: types.JobTypeFullTime})

	assert.Len(t, got, 2)
	assert.Equal(t, postings[0].ID, got[0].ID)
	assert.Equal(t, postings[1].ID, got[1].ID)
}

func TestFilter_KeywordMatchesAnyOfTitleCompanyDescription(t *testing.T) {
	postings := fixturePostings()

	byTitle := Filter(postings, Criteria{Keyword: "solana"})
	assert.Len(t, byTitle, 1)
	assert.Equal(t, "Senior Solana Developer", byTitle[0].Title)

	byCompany := Filter(postings, Criteria{Keyword: "coinbase"})
	assert.Len(t, byCompany, 1)

	byDescription := Filter(postings, Criteria{Keyword: "exchange"})
	assert.Len(t, byDescription, 1)

	noMatch := Filter(postings, Criteria{Keyword: "haskell"})
	assert.Empty(t, noMatch)
}

func TestFilter_TagsUseOrSemantics(t *testing.T) {
	postings := fixturePostings()

	got := Filter(postings, Criteria{Tags: []string{"Rust", "Solidity"}})
	assert.Len(t, got, 2)

	// A posting only needs one of the requested tags, not all of them.
	one := Filter(postings, Criteria{Tags: []string{"Figma", "COBOL"}})
	assert.Len(t, one, 1)
	assert.Equal(t, "Blockchain Designer", one[0].Title)
}

func TestFilter_RemoteOnly(t *testing.T) {
	postings := fixturePostings()
	got := Filter(postings, Criteria{RemoteOnly: true})
	assert.Len(t, got, 1)
	assert.Equal(t, "Senior Solana Developer", got[0].Title)
}

func TestFilter_SalaryRangeIsContainmentNotOverlap(t *testing.T) {
	band := func(min, max int) types.JobPosting {
		return types.JobPosting{ID: uuid.New(), SalaryMin: min, SalaryMax: max}
	}
	postings := []types.JobPosting{
		band(100000, 130000), // entirely inside [80k, 200k]
		band(40000, 260000),  // exceeds the range on both ends
		band(70000, 150000),  // low end sticks out
	}

	got := Filter(postings, Criteria{SalaryRange: &SalaryRange{Min: 80, Max: 200}})

	assert.Len(t, got, 1)
	assert.Equal(t, 100000, got[0].SalaryMin)
}

func TestFilter_MissingSalaryBandNeverMatchesSalaryCriterion(t *testing.T) {
	postings := []types.JobPosting{{ID: uuid.New(), Title: "No band"}}
	got := Filter(postings, Criteria{SalaryRange: &SalaryRange{Min: 0, Max: 500}})
	assert.Empty(t, got)
}

func TestFilter_CriteriaComposeByIntersection(t *testing.T) {
	postings := fixturePostings()
	got := Filter(postings, Criteria{
		Keyword: "smart",
		JobType: types.JobTypeFullTime,
		Tags:    []string{"Ethereum"},
	})
	assert.Len(t, got, 1)
	assert.Equal(t, "Smart Contract Engineer", got[0].Title)
}

func TestFilter_ZeroMatchCriterionStillComposes(t *testing.T) {
	postings := fixturePostings()
	// Keyword eliminates everything; the later criteria still apply to
	// the empty set rather than short-circuiting oddly.
	got := Filter(postings, Criteria{Keyword: "nonexistent", RemoteOnly: true})
	assert.Empty(t, got)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	postings := fixturePostings()
	want := fixturePostings()
	_ = Filter(postings, Criteria{Keyword: "solana", RemoteOnly: true})

	for i := range postings {
		assert.Equal(t, want[i].Title, postings[i].Title)
	}
}
