package calendar

import "cloud.google.com/go/civil"

// EventType classifies a calendar entry.
type EventType string

const (
	TypeRentCollection EventType = "rent_collection"
	TypeLeaseRenewal   EventType = "lease_renewal"
	TypeInspection     EventType = "inspection"
)

var eventTypeLabels = map[EventType]string{
	TypeRentCollection: "Riscossione Affitto",
	TypeLeaseRenewal:   "Rinnovo Contratto",
	TypeInspection:     "Ispezione",
}

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	_, ok := eventTypeLabels[t]
	return ok
}

// Label returns the display text for t.
func (t EventType) Label() string {
	if label, ok := eventTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Event is a dated entry on the landlord's calendar. Dates have day
// granularity and no time zone.
type Event struct {
	ID    string     `json:"id"`
	Date  civil.Date `json:"date"`
	Title string     `json:"title"`
	Type  EventType  `json:"type"`
}
