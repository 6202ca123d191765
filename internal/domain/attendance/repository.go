package attendance

import (
	"context"
	"time"
)

// RecordRepository defines data access methods for attendance records.
type RecordRepository interface {
	// Create inserts a new record. Duplicate (user, date) pairs are
	// permitted; reporting resolves them by latest CreatedAt.
	Create(ctx context.Context, rec Record) (Record, error)

	// FetchRange retrieves every record for the given users whose date
	// lies inside [start, end], both ends inclusive. Duplicates for the
	// same (user, date) are returned as stored; de-duplication is the
	// reporting engine's job.
	FetchRange(ctx context.Context, userIDs []string, start, end time.Time) ([]Record, error)

	// ListByUser retrieves a single user's records inside [start, end],
	// newest date first, with the recorder's name joined in.
	ListByUser(ctx context.Context, userID string, start, end time.Time) ([]Record, error)
}

// RecordService defines attendance recording operations
type RecordService interface {
	// Record stores one user's status for one day. Reporters may only
	// record for members of their own group; admins and managers may
	// record for anyone.
	Record(ctx context.Context, req RecordRequest) (RecordResponse, error)

	// ListMine retrieves the authenticated user's own records for a window
	ListMine(ctx context.Context, userID string, start, end time.Time) ([]RecordResponse, error)
}
