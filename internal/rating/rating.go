// internal/rating/rating.go
package rating

// Band is the label the statistics screen attaches to an attendance
// percentage.
type Band string

const (
	BandExcellent Band = "Excellent"
	BandWarning   Band = "Needs Improvement"
	BandCritical  Band = "Critical"
)

// Scale holds the percentage thresholds between bands. Both bounds are
// inclusive on the way up: exactly GoodThreshold rates Excellent.
type Scale struct {
	GoodThreshold float64
	WarnThreshold float64
}

// DefaultScale matches the 75/60 cutoffs most universities use for
// attendance requirements.
var DefaultScale = Scale{GoodThreshold: 75, WarnThreshold: 60}

func (s Scale) Rate(percentage float64) Band {
	switch {
	case percentage >= s.GoodThreshold:
		return BandExcellent
	case percentage >= s.WarnThreshold:
		return BandWarning
	default:
		return BandCritical
	}
}
