package option

import "time"

type Type string

const (
	TypeHonor      Type = "honor"
	TypeLevel      Type = "level"
	TypeDepartment Type = "department"
	TypeParty      Type = "party"
	TypeGroup      Type = "group"
)

// ValidTypes lists every vocabulary an option value may belong to.
var ValidTypes = []Type{TypeHonor, TypeLevel, TypeDepartment, TypeParty, TypeGroup}

// Option is one entry of a dropdown vocabulary. Values are unique within
// their type.
type Option struct {
	ID        string
	Type      Type
	Value     string
	CreatedAt time.Time
}
