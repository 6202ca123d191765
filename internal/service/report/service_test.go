package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/attendance"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/report"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	return append([]user.User(nil), f.users...), nil
}

func (f *fakeUserRepo) ListByGroup(ctx context.Context, group string) ([]user.User, error) {
	var members []user.User
	for _, u := range f.users {
		if u.Group == group {
			members = append(members, u)
		}
	}
	return members, nil
}

func (f *fakeUserRepo) SearchByName(ctx context.Context, text string) ([]user.User, error) {
	var matched []user.User
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(text)) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error                 { return nil }
func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id, hash string) error     { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error                   { return nil }
func (f *fakeUserRepo) ExistsWithOptionValue(ctx context.Context, v string) (bool, error) {
	return false, nil
}

type fakeRecordRepo struct {
	records []attendance.Record
	failErr error
}

func (f *fakeRecordRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeRecordRepo) FetchRange(ctx context.Context, userIDs []string, start, end time.Time) ([]attendance.Record, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	visible := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		visible[id] = true
	}
	var out []attendance.Record
	for _, rec := range f.records {
		if visible[rec.UserID] && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]attendance.Record, error) {
	return f.FetchRange(ctx, []string{userID}, start, end)
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func rec(id, userID, date string, status attendance.Status, group string, createdAt time.Time) attendance.Record {
	return attendance.Record{
		ID:        id,
		UserID:    userID,
		Date:      day(date),
		Status:    status,
		Group:     group,
		CreatedAt: createdAt,
	}
}

func TestSubjectReport_SelfScopeSingleEntry(t *testing.T) {
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alice", Role: user.RoleUser},
		{ID: "u2", Name: "Bob", Role: user.RoleUser},
	}}
	base := time.Now()
	recordRepo := &fakeRecordRepo{records: []attendance.Record{
		rec("r1", "u1", "2026-08-03", attendance.StatusPresent, "", base),
		rec("r2", "u2", "2026-08-03", attendance.StatusPresent, "", base),
	}}
	svc := NewReportService(userRepo, recordRepo, false)

	p := report.Principal{UserID: "u1", Role: user.RoleUser}
	result, err := svc.SubjectReport(context.Background(), p, report.Query{Start: "2026-08-01", End: "2026-08-07"})

	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "u1", result.Entries[0].UserID)
	assert.Equal(t, 1, result.Entries[0].PresentDays)
}

func TestSubjectReport_ReporterWithoutGroup(t *testing.T) {
	svc := NewReportService(&fakeUserRepo{}, &fakeRecordRepo{}, false)

	p := report.Principal{UserID: "u1", Role: user.RoleReporter}
	_, err := svc.SubjectReport(context.Background(), p, report.Query{Start: "2026-08-01", End: "2026-08-07"})

	assert.ErrorIs(t, err, report.ErrReporterGroupMissing)
}

func TestSubjectReport_ZeroRecordSubjectsZeroed(t *testing.T) {
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alice", Role: user.RoleUser, Group: "East"},
		{ID: "u2", Name: "Bob", Role: user.RoleUser, Group: "East"},
	}}
	recordRepo := &fakeRecordRepo{records: []attendance.Record{
		rec("r1", "u1", "2026-08-03", attendance.StatusPresent, "East", time.Now()),
	}}
	svc := NewReportService(userRepo, recordRepo, false)

	p := report.Principal{UserID: "rep", Role: user.RoleReporter, Group: "East"}
	result, err := svc.SubjectReport(context.Background(), p, report.Query{Start: "2026-08-01", End: "2026-08-07"})

	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	// Sorted by name: Alice first, Bob second.
	assert.Equal(t, 1, result.Entries[0].PresentDays)
	assert.Equal(t, 0, result.Entries[1].PresentDays)
	assert.Equal(t, 0, result.Entries[1].AbsentDays)
	assert.Equal(t, 0, result.Entries[1].LateDays)
	assert.Equal(t, float64(0), result.Entries[1].AttendanceRatePercent)
}

func TestSubjectReport_Idempotent(t *testing.T) {
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alice", Role: user.RoleUser, Group: "East"},
	}}
	recordRepo := &fakeRecordRepo{records: []attendance.Record{
		rec("r1", "u1", "2026-08-03", attendance.StatusLate, "East", time.Now()),
	}}
	svc := NewReportService(userRepo, recordRepo, false)

	p := report.Principal{UserID: "adm", Role: user.RoleAdmin}
	q := report.Query{Start: "2026-08-01", End: "2026-08-07"}

	first, err := svc.SubjectReport(context.Background(), p, q)
	require.NoError(t, err)
	second, err := svc.SubjectReport(context.Background(), p, q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSubjectReport_LastWriteWins(t *testing.T) {
	base := day("2026-08-03").Add(8 * time.Hour)
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alice", Role: user.RoleUser, Group: "East"},
	}}
	// Correction flow: first marked absent, then re-recorded present.
	recordRepo := &fakeRecordRepo{records: []attendance.Record{
		rec("r1", "u1", "2026-08-03", attendance.StatusAbsent, "East", base),
		rec("r2", "u1", "2026-08-03", attendance.StatusPresent, "East", base.Add(time.Hour)),
	}}
	svc := NewReportService(userRepo, recordRepo, false)

	p := report.Principal{UserID: "adm", Role: user.RoleAdmin}
	result, err := svc.SubjectReport(context.Background(), p, report.Query{Start: "2026-08-01", End: "2026-08-07"})

	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, 1, result.Entries[0].PresentDays)
	assert.Equal(t, 0, result.Entries[0].AbsentDays)
	assert.Equal(t, float64(100), result.Entries[0].AttendanceRatePercent)
}

func TestScalarReport_WeightedNotMean(t *testing.T) {
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alice", Role: user.RoleUser},
		{ID: "u2", Name: "Bob", Role: user.RoleUser},
	}}
	base := time.Now()
	records := []attendance.Record{
		rec("r1", "u1", "2026-08-01", attendance.StatusPresent, "", base),
	}
	for i := 1; i <= 9; i++ {
		records = append(records, rec(
			fmt.Sprintf("r%d", i+1), "u2", fmt.Sprintf("2026-08-%02d", i),
			attendance.StatusAbsent, "", base,
		))
	}
	svc := NewReportService(userRepo, &fakeRecordRepo{records: records}, false)

	p := report.Principal{UserID: "adm", Role: user.RoleAdmin}
	result, err := svc.ScalarReport(context.Background(), p, report.Query{Start: "2026-08-01", End: "2026-08-31"})

	require.NoError(t, err)
	// 1 attended day out of 10 recorded days: 10.00, not the 50.00 a
	// mean of per-subject rates would give.
	assert.Equal(t, 10.00, result.RatePercent)
}

func TestSubjectReport_WindowBoundariesInclusive(t *testing.T) {
	base := time.Now()
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alice", Role: user.RoleUser},
	}}
	recordRepo := &fakeRecordRepo{records: []attendance.Record{
		rec("r1", "u1", "2026-07-31", attendance.StatusPresent, "", base),
		rec("r2", "u1", "2026-08-01", attendance.StatusPresent, "", base),
		rec("r3", "u1", "2026-08-07", attendance.StatusPresent, "", base),
		rec("r4", "u1", "2026-08-08", attendance.StatusPresent, "", base),
	}}
	svc := NewReportService(userRepo, recordRepo, false)

	p := report.Principal{UserID: "adm", Role: user.RoleAdmin}
	result, err := svc.SubjectReport(context.Background(), p, report.Query{Start: "2026-08-01", End: "2026-08-07"})

	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, 2, result.Entries[0].PresentDays)
}

func TestSubjectReport_ReporterForeignGroupFilter(t *testing.T) {
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alice", Role: user.RoleUser, Group: "West"},
	}}
	svc := NewReportService(userRepo, &fakeRecordRepo{}, false)

	p := report.Principal{UserID: "rep", Role: user.RoleReporter, Group: "East"}
	_, err := svc.SubjectReport(context.Background(), p, report.Query{
		Start: "2026-08-01", End: "2026-08-07", Group: "West",
	})

	assert.ErrorIs(t, err, report.ErrScopeViolation)
}

func TestSubjectReport_InvalidWindow(t *testing.T) {
	svc := NewReportService(&fakeUserRepo{}, &fakeRecordRepo{}, false)
	p := report.Principal{UserID: "adm", Role: user.RoleAdmin}

	tests := []struct {
		name       string
		start, end string
	}{
		{"start after end", "2026-08-07", "2026-08-01"},
		{"malformed start", "07-08-2026", "2026-08-07"},
		{"missing end", "2026-08-01", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubjectReport(context.Background(), p, report.Query{Start: tt.start, End: tt.end})
			assert.ErrorIs(t, err, report.ErrInvalidWindow)
		})
	}
}

func TestSubjectReport_StoreUnavailablePropagates(t *testing.T) {
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alice", Role: user.RoleUser},
	}}
	storeErr := fmt.Errorf("%w: connection refused", attendance.ErrStoreUnavailable)
	svc := NewReportService(userRepo, &fakeRecordRepo{failErr: storeErr}, false)

	p := report.Principal{UserID: "adm", Role: user.RoleAdmin}
	_, err := svc.SubjectReport(context.Background(), p, report.Query{Start: "2026-08-01", End: "2026-08-07"})

	assert.True(t, errors.Is(err, attendance.ErrStoreUnavailable))
}

func TestSubjectReport_SearchFilter(t *testing.T) {
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alice Johnson", Role: user.RoleUser},
		{ID: "u2", Name: "Bob Smith", Role: user.RoleUser},
	}}
	svc := NewReportService(userRepo, &fakeRecordRepo{}, false)

	p := report.Principal{UserID: "adm", Role: user.RoleAdmin}
	result, err := svc.SubjectReport(context.Background(), p, report.Query{
		Start: "2026-08-01", End: "2026-08-07", Search: "john",
	})

	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Alice Johnson", result.Entries[0].Name)
}

func TestScalarReport_NoRecordedDays(t *testing.T) {
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alice", Role: user.RoleUser},
	}}
	svc := NewReportService(userRepo, &fakeRecordRepo{}, false)

	p := report.Principal{UserID: "adm", Role: user.RoleAdmin}
	result, err := svc.ScalarReport(context.Background(), p, report.Query{Start: "2026-08-01", End: "2026-08-07"})

	require.NoError(t, err)
	assert.Equal(t, float64(0), result.RatePercent)
}

func TestSubjectReport_MissingAsAbsentPolicy(t *testing.T) {
	base := time.Now()
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alice", Role: user.RoleUser},
	}}
	recordRepo := &fakeRecordRepo{records: []attendance.Record{
		rec("r1", "u1", "2026-08-03", attendance.StatusPresent, "", base),
		rec("r2", "u1", "2026-08-04", attendance.StatusPresent, "", base),
	}}
	svc := NewReportService(userRepo, recordRepo, true)

	p := report.Principal{UserID: "adm", Role: user.RoleAdmin}
	result, err := svc.SubjectReport(context.Background(), p, report.Query{Start: "2026-08-03", End: "2026-08-07"})

	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	// 5-day window, 2 recorded: the 3 uncovered days become absences.
	assert.Equal(t, 2, result.Entries[0].PresentDays)
	assert.Equal(t, 3, result.Entries[0].AbsentDays)
	assert.Equal(t, 40.00, result.Entries[0].AttendanceRatePercent)
}

func TestSubjectReport_AdminGroupFilter(t *testing.T) {
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alice", Role: user.RoleUser, Group: "East"},
		{ID: "u2", Name: "Bob", Role: user.RoleUser, Group: "West"},
	}}
	svc := NewReportService(userRepo, &fakeRecordRepo{}, false)

	p := report.Principal{UserID: "adm", Role: user.RoleAdmin}
	result, err := svc.SubjectReport(context.Background(), p, report.Query{
		Start: "2026-08-01", End: "2026-08-07", Group: "West",
	})

	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "u2", result.Entries[0].UserID)
}
