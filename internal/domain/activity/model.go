package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeApartmentAdded    ActivityType = "apartment_added"
	TypeApartmentUpdated  ActivityType = "apartment_updated"
	TypeMaintenanceLogged ActivityType = "maintenance_logged"
)

// Valid reports whether t is a known activity type.
func (t ActivityType) Valid() bool {
	switch t {
	case TypeApartmentAdded, TypeApartmentUpdated, TypeMaintenanceLogged:
		return true
	}
	return false
}

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	EntityID     string       `json:"entity_id"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
