package maintenance

import "cloud.google.com/go/civil"

// Status is the lifecycle position of a maintenance request.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusNew, StatusInProgress, StatusCompleted}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Open reports whether the request still needs work.
func (s Status) Open() bool {
	return s != StatusCompleted
}

// Category is the trade a request falls under.
type Category string

const (
	CategoryPlumbing    Category = "plumbing"
	CategoryElectricity Category = "electricity"
	CategoryAppliance   Category = "appliance"
	CategoryStructural  Category = "structural"
	CategoryGeneral     Category = "general"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryPlumbing,
	CategoryElectricity,
	CategoryAppliance,
	CategoryStructural,
	CategoryGeneral,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryPlumbing, CategoryElectricity, CategoryAppliance, CategoryStructural, CategoryGeneral:
		return true
	}
	return false
}

// Priority is how urgent a request is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Request is a maintenance ticket logged against an apartment.
type Request struct {
	ID          string     `json:"id" validate:"notblank"`
	ApartmentID string     `json:"apartment_id" validate:"notblank"`
	Description string     `json:"description" validate:"notblank"`
	Category    Category   `json:"category" validate:"enum"`
	Status      Status     `json:"status" validate:"enum"`
	DateLogged  civil.Date `json:"date_logged"`
	Priority    Priority   `json:"priority" validate:"enum"`
}

// HasOpenRequest reports whether any non-completed request references the
// apartment.
func HasOpenRequest(requests []Request, apartmentID string) bool {
	for _, req := range requests {
		if req.ApartmentID == apartmentID && req.Status.Open() {
			return true
		}
	}
	return false
}
