package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Attendance Recording
	PermissionAttendanceRecord Permission = "attendance.record"

	// Reports
	PermissionReportViewOwn   Permission = "report.view_own"
	PermissionReportViewGroup Permission = "report.view_group"
	PermissionReportViewAll   Permission = "report.view_all"

	// User Management
	PermissionUserManage Permission = "user.manage"

	// Option vocabularies (honorifics, departments, groups, ...)
	PermissionOptionManage Permission = "option.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceRecord,
		PermissionReportViewOwn,
		PermissionReportViewGroup,
		PermissionReportViewAll,
		PermissionUserManage,
		PermissionOptionManage,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceRecord,
		PermissionReportViewOwn,
		PermissionReportViewGroup,
		PermissionReportViewAll,
	},
	RoleReporter: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceRecord,
		PermissionReportViewOwn,
		PermissionReportViewGroup,
	},
	RoleUser: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionReportViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
