package report

import "math"

// Query shapes a report request after HTTP decoding: an inclusive date
// window plus optional narrowing filters.
type Query struct {
	Start string // YYYY-MM-DD
	End   string // YYYY-MM-DD

	// Search keeps only subjects whose display name contains the text,
	// case-insensitively. Empty is a no-op.
	Search string

	// Group narrows an organization-wide scope to one group. Under a
	// group scope it must match the caller's own group.
	Group string
}

// Tally holds one subject's day counters over a window. Days without any
// record are excluded from every counter under the default policy, so the
// rate denominator is the number of recorded days, not the window length.
type Tally struct {
	PresentDays int
	AbsentDays  int
	LateDays    int
}

// RatePercent computes the subject's attendance rate: late arrivals count
// toward the numerator alongside present days. Zero recorded days yields
// 0, not a division error.
func (t Tally) RatePercent() float64 {
	return Rate(t.PresentDays+t.LateDays, t.PresentDays+t.AbsentDays+t.LateDays)
}

// Rate computes a percentage rounded to two decimals, defined as 0 when
// the denominator is zero.
func Rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return round2(float64(numerator) / float64(denominator) * 100)
}

// SubjectEntry is one row of the per-subject report view.
type SubjectEntry struct {
	UserID                string  `json:"user_id"`
	Name                  string  `json:"name"`
	Group                 string  `json:"group"`
	PresentDays           int     `json:"present_days"`
	AbsentDays            int     `json:"absent_days"`
	LateDays              int     `json:"late_days"`
	AttendanceRatePercent float64 `json:"attendance_rate_percent"`
}

// SubjectReport is the per-subject report view: one entry per visible
// subject, ordered by display name ascending.
type SubjectReport struct {
	Start   string         `json:"start"`
	End     string         `json:"end"`
	Entries []SubjectEntry `json:"entries"`
}

// ScalarReport is a single weighted rate across every visible subject.
// It is sum-over-sums, not the mean of per-subject rates: averaging
// percentages would bias toward subjects with sparse data.
type ScalarReport struct {
	Start       string  `json:"start"`
	End         string  `json:"end"`
	RatePercent float64 `json:"rate_percent"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
