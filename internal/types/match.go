package types

// MatchBand classifies a 0-100 match score for presentation. The cutoffs
// are fixed and must agree everywhere a score is displayed.
type MatchBand string

// Match bands.
const (
	MatchStrong MatchBand = "strong"
	MatchGood   MatchBand = "good"
	MatchWeak   MatchBand = "weak"
)

// BandForScore maps a match score onto its presentation band:
// >=90 strong, 70-89 good, below 70 weak.
func BandForScore(score int) MatchBand {
	switch {
	case score >= 90:
		return MatchStrong
	case score >= 70:
		return MatchGood
	default:
		return MatchWeak
	}
}

// Color returns the UI color associated with the band.
func (b MatchBand) Color() string {
	switch b {
	case MatchStrong:
		return "green"
	case MatchGood:
		return "yellow"
	default:
		return "red"
	}
}
