package tenant

import "cloud.google.com/go/civil"

// UnassignedLabel is shown when an apartment has no tenant, or references one
// that is not in the tenant list.
const UnassignedLabel = "Non assegnato"

// Tenant is a person renting one of the apartments.
type Tenant struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	ApartmentID    string     `json:"apartment_id"`
	LeaseStartDate civil.Date `json:"lease_start_date"`
	LeaseEndDate   civil.Date `json:"lease_end_date"`
}

// Find returns the tenant with the given id.
func Find(tenants []Tenant, id string) (Tenant, bool) {
	if id == "" {
		return Tenant{}, false
	}
	for _, t := range tenants {
		if t.ID == id {
			return t, true
		}
	}
	return Tenant{}, false
}

// NameFor resolves a tenant id to a display name.
func NameFor(tenants []Tenant, id string) string {
	if t, ok := Find(tenants, id); ok {
		return t.Name
	}
	return UnassignedLabel
}
