package models

import "time"

// Event describes a lifecycle change of a user or group.
type Event struct {
	Type       string      `json:"type"`   // e.g. "user.created", "group.deleted"
	Entity     string      `json:"entity"` // "user" or "group"
	EntityID   string      `json:"entityId"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data,omitempty"`
}
