package dashboard

import (
	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/ganot/landlord/internal/domain/document"
	"github.com/ganot/landlord/internal/domain/maintenance"
	"github.com/ganot/landlord/internal/domain/tenant"
)

// FilterApartments returns the apartments selected by f, in collection
// order. FilterMaintenance keeps apartments with at least one open request.
func FilterApartments(apartments []apartment.Apartment, requests []maintenance.Request, f apartment.Filter) []apartment.Apartment {
	out := make([]apartment.Apartment, 0, len(apartments))
	for _, apt := range apartments {
		if matches(apt, requests, f) {
			out = append(out, apt)
		}
	}
	return out
}

func matches(apt apartment.Apartment, requests []maintenance.Request, f apartment.Filter) bool {
	switch f {
	case apartment.FilterOccupied:
		return apt.Occupancy == apartment.Occupied
	case apartment.FilterVacant:
		return apt.Occupancy == apartment.Vacant
	case apartment.FilterOverdue:
		return apt.RentStatus == apartment.RentOverdue
	case apartment.FilterMaintenance:
		return maintenance.HasOpenRequest(requests, apt.ID)
	default:
		return true
	}
}

// ApartmentRow is an apartment as listed on the dashboard.
type ApartmentRow struct {
	apartment.Apartment
	Label             string `json:"label"`
	TenantName        string `json:"tenant_name"`
	OccupancyLabel    string `json:"occupancy_label"`
	RentStatusLabel   string `json:"rent_status_label"`
	ActiveMaintenance bool   `json:"active_maintenance"`
}

// ApartmentRows filters apartments and resolves their references for
// display. Dangling tenant references render as unassigned.
func ApartmentRows(apartments []apartment.Apartment, tenants []tenant.Tenant, requests []maintenance.Request, f apartment.Filter) []ApartmentRow {
	filtered := FilterApartments(apartments, requests, f)
	rows := make([]ApartmentRow, 0, len(filtered))
	for _, apt := range filtered {
		rows = append(rows, ApartmentRow{
			Apartment:         apt,
			Label:             apt.Label(),
			TenantName:        tenant.NameFor(tenants, apt.TenantID),
			OccupancyLabel:    apt.Occupancy.Label(),
			RentStatusLabel:   apt.RentStatus.Label(),
			ActiveMaintenance: maintenance.HasOpenRequest(requests, apt.ID),
		})
	}
	return rows
}

// MaintenanceRow is a maintenance request as listed on the maintenance page.
type MaintenanceRow struct {
	maintenance.Request
	ApartmentLabel string `json:"apartment_label"`
	StatusLabel    string `json:"status_label"`
	CategoryLabel  string `json:"category_label"`
	PriorityLabel  string `json:"priority_label"`
}

// MaintenanceRows filters requests by status, newest first as stored, and
// resolves the apartment each one refers to.
func MaintenanceRows(requests []maintenance.Request, apartments []apartment.Apartment, f maintenance.StatusFilter) []MaintenanceRow {
	filtered := maintenance.Filter(requests, f)
	rows := make([]MaintenanceRow, 0, len(filtered))
	for _, req := range filtered {
		rows = append(rows, MaintenanceRow{
			Request:        req,
			ApartmentLabel: apartment.LabelFor(apartments, req.ApartmentID),
			StatusLabel:    req.Status.Label(),
			CategoryLabel:  req.Category.Label(),
			PriorityLabel:  req.Priority.Label(),
		})
	}
	return rows
}

// DocumentRow is a document as listed in the archive.
type DocumentRow struct {
	document.Document
	ApartmentLabel string `json:"apartment_label"`
	TypeLabel      string `json:"type_label"`
}

// DocumentRows resolves the apartment each document belongs to.
func DocumentRows(documents []document.Document, apartments []apartment.Apartment) []DocumentRow {
	rows := make([]DocumentRow, 0, len(documents))
	for _, doc := range documents {
		rows = append(rows, DocumentRow{
			Document:       doc,
			ApartmentLabel: apartment.LabelFor(apartments, doc.ApartmentID),
			TypeLabel:      doc.Type.Label(),
		})
	}
	return rows
}

// TenantRow is a tenant with the apartment they rent.
type TenantRow struct {
	tenant.Tenant
	ApartmentLabel string `json:"apartment_label"`
}

// TenantRows resolves each tenant's apartment.
func TenantRows(tenants []tenant.Tenant, apartments []apartment.Apartment) []TenantRow {
	rows := make([]TenantRow, 0, len(tenants))
	for _, t := range tenants {
		rows = append(rows, TenantRow{
			Tenant:         t,
			ApartmentLabel: apartment.LabelFor(apartments, t.ApartmentID),
		})
	}
	return rows
}
