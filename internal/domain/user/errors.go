package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already exists")
	ErrInvalidRole            = errors.New("invalid role specified")
	ErrInvalidPasswordLength  = errors.New("password must be at least 6 characters")
	ErrReporterGroupRequired  = errors.New("reporter accounts require a group")
	ErrAdminAccessRequired    = errors.New("admin access required")
	ErrManagerAccessRequired  = errors.New("manager access required")
	ErrReporterAccessRequired = errors.New("reporter access required")
	ErrInsufficientPermission = errors.New("insufficient permissions")
)
