package report

import (
	"context"
)

// ReportService computes role-scoped attendance reports. Both views run
// the same pipeline (resolve scope, narrow the subject set, aggregate
// the raw records) and differ only in how the result is shaped.
// Requests are stateless and side-effect free: identical inputs against
// an unchanged store always produce identical output.
type ReportService interface {
	// SubjectReport returns per-subject day counts and rates for every
	// subject visible to the caller over the window.
	SubjectReport(ctx context.Context, p Principal, q Query) (SubjectReport, error)

	// ScalarReport returns the weighted attendance rate across every
	// subject visible to the caller over the window.
	ScalarReport(ctx context.Context, p Principal, q Query) (ScalarReport, error)
}
