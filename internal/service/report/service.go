package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/attendance"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/report"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/user"
)

type ReportServiceImpl struct {
	userRepo   user.UserRepository
	recordRepo attendance.RecordRepository

	// countMissingAsAbsent is the REPORT_COUNT_MISSING_AS_ABSENT policy:
	// false keeps the sparse-log semantics where uncovered days stay out
	// of the rate entirely.
	countMissingAsAbsent bool
}

func NewReportService(userRepo user.UserRepository, recordRepo attendance.RecordRepository, countMissingAsAbsent bool) report.ReportService {
	return &ReportServiceImpl{
		userRepo:             userRepo,
		recordRepo:           recordRepo,
		countMissingAsAbsent: countMissingAsAbsent,
	}
}

// SubjectReport implements report.ReportService.
func (s *ReportServiceImpl) SubjectReport(ctx context.Context, p report.Principal, q report.Query) (report.SubjectReport, error) {
	window, subjects, records, tallies, err := s.runPipeline(ctx, p, q)
	if err != nil {
		return report.SubjectReport{}, err
	}

	groups := recordedGroups(records)

	entries := make([]report.SubjectEntry, 0, len(subjects))
	for _, subject := range subjects {
		t := tallies[subject.ID]
		group := subject.Group
		if recorded, ok := groups[subject.ID]; ok && recorded != "" {
			group = recorded
		}
		entries = append(entries, report.SubjectEntry{
			UserID:                subject.ID,
			Name:                  subject.Name,
			Group:                 group,
			PresentDays:           t.PresentDays,
			AbsentDays:            t.AbsentDays,
			LateDays:              t.LateDays,
			AttendanceRatePercent: t.RatePercent(),
		})
	}

	// Stable, deterministic ordering: display name ascending, ID as the
	// tiebreaker for identical names.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].UserID < entries[j].UserID
	})

	return report.SubjectReport{
		Start:   window.Start.Format("2006-01-02"),
		End:     window.End.Format("2006-01-02"),
		Entries: entries,
	}, nil
}

// ScalarReport implements report.ReportService.
func (s *ReportServiceImpl) ScalarReport(ctx context.Context, p report.Principal, q report.Query) (report.ScalarReport, error) {
	window, _, _, tallies, err := s.runPipeline(ctx, p, q)
	if err != nil {
		return report.ScalarReport{}, err
	}

	return report.ScalarReport{
		Start:       window.Start.Format("2006-01-02"),
		End:         window.End.Format("2006-01-02"),
		RatePercent: weightedRate(tallies),
	}, nil
}

// runPipeline is the shared request path: window validation, scope
// resolution, subject filtering, one store fetch, aggregation. All or
// nothing; no partial result survives an error.
func (s *ReportServiceImpl) runPipeline(ctx context.Context, p report.Principal, q report.Query) (report.Window, []user.User, []attendance.Record, map[string]report.Tally, error) {
	window, err := report.ParseWindow(q.Start, q.End)
	if err != nil {
		return report.Window{}, nil, nil, nil, err
	}

	scope, err := report.ResolveScope(p)
	if err != nil {
		return report.Window{}, nil, nil, nil, err
	}

	subjects, err := s.filterSubjects(ctx, scope, q)
	if err != nil {
		return report.Window{}, nil, nil, nil, err
	}

	subjectIDs := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		subjectIDs = append(subjectIDs, subject.ID)
	}

	records, err := s.recordRepo.FetchRange(ctx, subjectIDs, window.Start, window.End)
	if err != nil {
		return report.Window{}, nil, nil, nil, err
	}

	tallies := tally(subjectIDs, records, window, s.countMissingAsAbsent)
	return window, subjects, records, tallies, nil
}

// filterSubjects narrows the candidate subject set implied by the scope
// with the optional group and name filters. A group filter may only
// narrow, never widen: naming a group outside the caller's scope is a
// hard ScopeViolation, not an empty success, so callers can tell it
// apart from a legitimately idle group.
func (s *ReportServiceImpl) filterSubjects(ctx context.Context, scope report.Scope, q report.Query) ([]user.User, error) {
	var (
		subjects []user.User
		err      error
	)

	switch scope.Kind {
	case report.ScopeAll:
		switch {
		case q.Group != "":
			subjects, err = s.userRepo.ListByGroup(ctx, q.Group)
		case q.Search != "":
			subjects, err = s.userRepo.SearchByName(ctx, q.Search)
			if err == nil {
				return subjects, nil
			}
		default:
			subjects, err = s.userRepo.List(ctx)
		}
	case report.ScopeGroup:
		if q.Group != "" && q.Group != scope.Group {
			return nil, fmt.Errorf("%w: group %q", report.ErrScopeViolation, q.Group)
		}
		subjects, err = s.userRepo.ListByGroup(ctx, scope.Group)
	case report.ScopeSelf:
		var self user.User
		self, err = s.userRepo.GetByID(ctx, scope.SubjectID)
		if err == nil {
			if q.Group != "" && q.Group != self.Group {
				return nil, fmt.Errorf("%w: group %q", report.ErrScopeViolation, q.Group)
			}
			subjects = []user.User{self}
		}
	}
	if err != nil {
		return nil, err
	}

	if q.Search == "" {
		return subjects, nil
	}

	needle := strings.ToLower(q.Search)
	matched := subjects[:0]
	for _, subject := range subjects {
		if strings.Contains(strings.ToLower(subject.Name), needle) {
			matched = append(matched, subject)
		}
	}
	return matched, nil
}
