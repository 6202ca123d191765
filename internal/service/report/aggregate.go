package report

import (
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/attendance"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/report"
)

type dayKey struct {
	userID string
	date   string
}

// dedupe collapses duplicate records for the same (user, date) down to a
// single authoritative one: the record with the latest CreatedAt wins.
// Equal timestamps fall back to the lexicographically larger ID so the
// outcome never depends on storage iteration order.
func dedupe(records []attendance.Record) map[dayKey]attendance.Record {
	winners := make(map[dayKey]attendance.Record, len(records))
	for _, rec := range records {
		key := dayKey{userID: rec.UserID, date: rec.Date.Format("2006-01-02")}
		current, exists := winners[key]
		if !exists || supersedes(rec, current) {
			winners[key] = rec
		}
	}
	return winners
}

func supersedes(candidate, current attendance.Record) bool {
	if candidate.CreatedAt.After(current.CreatedAt) {
		return true
	}
	if candidate.CreatedAt.Equal(current.CreatedAt) {
		return candidate.ID > current.ID
	}
	return false
}

// tally reduces raw records to per-subject day counters over the window.
// Every subject in subjectIDs gets an entry, zeroed when it has no
// records: callers must be able to tell "zero activity" from "not
// visible". Days without a record stay out of every counter unless
// countMissingAsAbsent is set, in which case each uncovered day counts
// as absent.
func tally(subjectIDs []string, records []attendance.Record, w report.Window, countMissingAsAbsent bool) map[string]report.Tally {
	tallies := make(map[string]report.Tally, len(subjectIDs))
	for _, id := range subjectIDs {
		tallies[id] = report.Tally{}
	}

	for _, rec := range dedupe(records) {
		t, visible := tallies[rec.UserID]
		if !visible {
			// Record for a subject outside the candidate set; the
			// store fetch is already bounded but stay defensive.
			continue
		}
		switch rec.Status {
		case attendance.StatusPresent:
			t.PresentDays++
		case attendance.StatusAbsent:
			t.AbsentDays++
		case attendance.StatusLate:
			t.LateDays++
		}
		tallies[rec.UserID] = t
	}

	if countMissingAsAbsent {
		windowDays := w.Days()
		for id, t := range tallies {
			recorded := t.PresentDays + t.AbsentDays + t.LateDays
			if recorded < windowDays {
				t.AbsentDays += windowDays - recorded
				tallies[id] = t
			}
		}
	}

	return tallies
}

// recordedGroups maps each subject to the group of its most recent
// surviving record, so report rows show the unit attendance was actually
// recorded under even after a transfer.
func recordedGroups(records []attendance.Record) map[string]string {
	latest := make(map[string]attendance.Record)
	for _, rec := range dedupe(records) {
		current, exists := latest[rec.UserID]
		if !exists || rec.Date.After(current.Date) ||
			(rec.Date.Equal(current.Date) && supersedes(rec, current)) {
			latest[rec.UserID] = rec
		}
	}

	groups := make(map[string]string, len(latest))
	for userID, rec := range latest {
		groups[userID] = rec.Group
	}
	return groups
}

// weightedRate computes the scalar organization/group rate: total
// attended days over total recorded days, never the mean of per-subject
// percentages.
func weightedRate(tallies map[string]report.Tally) float64 {
	var attended, recorded int
	for _, t := range tallies {
		attended += t.PresentDays + t.LateDays
		recorded += t.PresentDays + t.AbsentDays + t.LateDays
	}
	return report.Rate(attended, recorded)
}
