package report

import "errors"

var (
	// ErrReporterGroupMissing marks a reporter whose account carries no
	// group. Scope resolution fails instead of silently narrowing.
	ErrReporterGroupMissing = errors.New("reporter account has no group")

	// ErrUnknownRole marks a role outside the closed admin/manager/
	// reporter/user set.
	ErrUnknownRole = errors.New("unknown role")

	// ErrInvalidWindow marks a malformed or inverted report window.
	ErrInvalidWindow = errors.New("invalid report window")

	// ErrScopeViolation marks an explicit group filter outside the
	// caller's permitted scope. Never silently widened, narrowed, or
	// turned into an empty result.
	ErrScopeViolation = errors.New("requested group is outside your scope")
)
