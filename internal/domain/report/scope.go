package report

import (
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/user"
)

// Principal is the authenticated caller as seen by the reporting engine:
// claims only, already verified by the credential layer.
type Principal struct {
	UserID string
	Role   user.Role
	Group  string
}

// ScopeKind discriminates the closed set of visibility scopes.
type ScopeKind int

const (
	// ScopeSelf bounds visibility to the caller's own records
	ScopeSelf ScopeKind = iota
	// ScopeGroup bounds visibility to one group's records
	ScopeGroup
	// ScopeAll grants organization-wide visibility
	ScopeAll
)

// Scope is the set of subjects a caller may see. It is derived fresh per
// request from the caller's claims and never cached, since role and group
// can change between requests.
type Scope struct {
	Kind ScopeKind

	// Group is set when Kind == ScopeGroup
	Group string

	// SubjectID is set when Kind == ScopeSelf
	SubjectID string
}

// ResolveScope derives the visibility scope from the caller's claims.
// Managers see the whole organization for reporting purposes; that is
// distinct from administrative user-management rights, which stay
// admin-only. A reporter without a group is a data-integrity violation
// and fails outright rather than falling back to a narrower scope.
func ResolveScope(p Principal) (Scope, error) {
	switch p.Role {
	case user.RoleAdmin, user.RoleManager:
		return Scope{Kind: ScopeAll}, nil
	case user.RoleReporter:
		if p.Group == "" {
			return Scope{}, ErrReporterGroupMissing
		}
		return Scope{Kind: ScopeGroup, Group: p.Group}, nil
	case user.RoleUser:
		return Scope{Kind: ScopeSelf, SubjectID: p.UserID}, nil
	default:
		return Scope{}, ErrUnknownRole
	}
}
