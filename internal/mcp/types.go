package mcp

import (
	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/ganot/landlord/internal/domain/dashboard"
	"github.com/ganot/landlord/internal/domain/maintenance"
)

type FilterParams struct {
	Filter string `json:"filter,omitempty"`
}

type AddApartmentParams struct {
	Address    string  `json:"address"`
	Unit       string  `json:"unit"`
	RentAmount float64 `json:"rent_amount"`
}

// UpdateApartmentParams replaces an apartment. Omitted fields keep their
// current value.
type UpdateApartmentParams struct {
	ID         string                `json:"id"`
	Address    *string               `json:"address,omitempty"`
	Unit       *string               `json:"unit,omitempty"`
	Occupancy  *apartment.Occupancy  `json:"occupancy,omitempty"`
	TenantID   *string               `json:"tenant_id,omitempty"`
	RentStatus *apartment.RentStatus `json:"rent_status,omitempty"`
	RentAmount *float64              `json:"rent_amount,omitempty"`
}

type ListMaintenanceParams struct {
	Status string `json:"status,omitempty"`
}

type AddMaintenanceRequestParams struct {
	ApartmentID string               `json:"apartment_id"`
	Description string               `json:"description"`
	Category    maintenance.Category `json:"category,omitempty"`
	Priority    maintenance.Priority `json:"priority,omitempty"`
}

type SuggestionsParams struct {
	Description string `json:"description"`
}

type CalendarMonthParams struct {
	Month string `json:"month,omitempty"`
	Nav   string `json:"nav,omitempty"`
}

type GetRecentActivityParams struct {
	EntityID string                 `json:"entity_id,omitempty"`
	Type     *activity.ActivityType `json:"type,omitempty"`
	Limit    int                    `json:"limit,omitempty"`
	Offset   int                    `json:"offset,omitempty"`
}

type ApartmentsResponse struct {
	Filter     apartment.Filter         `json:"filter"`
	Apartments []dashboard.ApartmentRow `json:"apartments"`
}

type TenantsResponse struct {
	Tenants []dashboard.TenantRow `json:"tenants"`
}

type DocumentsResponse struct {
	Documents []dashboard.DocumentRow `json:"documents"`
}

type MaintenanceResponse struct {
	Status   maintenance.StatusFilter   `json:"status"`
	Requests []dashboard.MaintenanceRow `json:"requests"`
}

type SuggestionsResponse struct {
	Available   bool     `json:"available"`
	Suggestions []string `json:"suggestions"`
	Message     string   `json:"message,omitempty"`
}

type ActivityResponse struct {
	Entries []activity.ActivityEntry `json:"entries"`
}
