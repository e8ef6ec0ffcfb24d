package models

// Status is the logical lifecycle state shared by users and groups.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

// IsValid reports whether s is one of the known lifecycle states.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusDeleted
}
