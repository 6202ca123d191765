package option

import "errors"

var (
	ErrOptionNotFound = errors.New("option not found")
	ErrOptionExists   = errors.New("option already exists")
	ErrOptionInUse    = errors.New("option is referenced by existing users")
	ErrInvalidType    = errors.New("invalid option type")
)
