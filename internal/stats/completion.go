package stats

import (
	"math"
	"strings"

	"github.com/rafael/jobmatch/internal/types"
)

// trackedProfileFields is the fixed number of fields that feed the
// completion percentage: first name, last name, bio, skills,
// experience, resume.
const trackedProfileFields = 6

// ProfileCompletion returns the completion percentage of a candidate
// profile, recomputed on every read and never stored.
func ProfileCompletion(p *types.CandidateProfile) int {
	filled := 0
	if strings.TrimSpace(p.FirstName) != "" {
		filled++
	}
	if strings.TrimSpace(p.LastName) != "" {
		filled++
	}
	if strings.TrimSpace(p.Bio) != "" {
		filled++
	}
	if len(p.Skills) > 0 {
		filled++
	}
	if len(p.Experience) > 0 {
		filled++
	}
	if strings.TrimSpace(p.ResumeRef) != "" {
		filled++
	}
	return int(math.Round(100 * float64(filled) / trackedProfileFields))
}
