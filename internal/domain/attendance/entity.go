package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

// ValidStatuses lists every status a daily record may carry.
var ValidStatuses = []Status{StatusPresent, StatusAbsent, StatusLate}

// Record is one observation of a user's status on one calendar day.
// Records are immutable; correcting a day means inserting a superseding
// record for the same (user, date), which reporting resolves by latest
// CreatedAt.
type Record struct {
	ID     string
	UserID string
	Date   time.Time
	Status Status
	// Group is captured from the user at recording time so historical
	// reports stay stable when the user later transfers groups.
	Group      string
	RecordedBy string
	CreatedAt  time.Time

	// DTO / Join
	UserName *string
}
