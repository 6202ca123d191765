package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrSubjectNotFound  = errors.New("attendance subject not found")
	ErrOutsideOwnGroup  = errors.New("cannot record attendance outside your own group")
	ErrStoreUnavailable = errors.New("attendance store unavailable")
)
