package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/maintenance"
)

// Journal records successful mutations. *activity.Service satisfies it.
type Journal interface {
	LogActivity(ctx context.Context, entry *activity.ActivityEntry) error
}

var _ Journal = (*activity.Service)(nil)

// Options configures a Store. Every field is optional.
type Options struct {
	Journal Journal
	Logger  *slog.Logger
	// Now is the store clock; it decides the date requests are logged on.
	Now func() time.Time
}

// NewApartment is the input of AddApartment.
type NewApartment struct {
	Address    string  `json:"address" validate:"notblank"`
	Unit       string  `json:"unit" validate:"notblank"`
	RentAmount float64 `json:"rent_amount" validate:"gte=0"`
}

// NewMaintenanceRequest is the input of AddMaintenanceRequest. Category
// defaults to general and Priority to medium when left empty.
type NewMaintenanceRequest struct {
	ApartmentID string               `json:"apartment_id"`
	Description string               `json:"description"`
	Category    maintenance.Category `json:"category,omitempty"`
	Priority    maintenance.Priority `json:"priority,omitempty"`
}
