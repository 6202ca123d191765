package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/attendance"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.RecordRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, user_id, date, status, "group", recorded_by
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.UserID,
		rec.Date,
		rec.Status,
		rec.Group,
		rec.RecordedBy,
	).Scan(&rec.CreatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// FetchRange implements attendance.RecordRepository. Both window bounds
// are inclusive; duplicate (user, date) rows come back as stored.
func (a *attendanceRepositoryImpl) FetchRange(ctx context.Context, userIDs []string, start, end time.Time) ([]attendance.Record, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, date, status, "group", recorded_by, created_at
		FROM attendance_records
		WHERE user_id = ANY($1)
		  AND date >= $2
		  AND date <= $3
	`

	rows, err := q.Query(ctx, query, userIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.Status, &rec.Group, &rec.RecordedBy, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", attendance.ErrStoreUnavailable, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrStoreUnavailable, err)
	}

	return records, nil
}

// ListByUser implements attendance.RecordRepository.
func (a *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT r.id, r.user_id, r.date, r.status, r."group", r.recorded_by, r.created_at, u.name
		FROM attendance_records r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1
		  AND r.date >= $2
		  AND r.date <= $3
		ORDER BY r.date DESC, r.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.Status, &rec.Group, &rec.RecordedBy, &rec.CreatedAt, &rec.UserName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", attendance.ErrStoreUnavailable, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrStoreUnavailable, err)
	}

	return records, nil
}
