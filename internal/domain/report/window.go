package report

import (
	"fmt"
	"time"

	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/validator"
)

// Window is an inclusive calendar-date interval. Start == End is a valid
// single-day window.
type Window struct {
	Start time.Time
	End   time.Time
}

// ParseWindow builds a Window from ISO-8601 date strings and enforces
// Start <= End.
func ParseWindow(start, end string) (Window, error) {
	startDate, ok := validator.IsValidDate(start)
	if !ok {
		return Window{}, fmt.Errorf("%w: start must be a YYYY-MM-DD date", ErrInvalidWindow)
	}
	endDate, ok := validator.IsValidDate(end)
	if !ok {
		return Window{}, fmt.Errorf("%w: end must be a YYYY-MM-DD date", ErrInvalidWindow)
	}
	if startDate.After(endDate) {
		return Window{}, fmt.Errorf("%w: start is after end", ErrInvalidWindow)
	}
	return Window{Start: startDate, End: endDate}, nil
}

// Days returns the number of calendar days the window covers, inclusive.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Contains reports whether the date falls inside the window, boundaries
// included.
func (w Window) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}
