package apartment

// Occupancy is whether an apartment currently has a tenant living in it.
type Occupancy string

const (
	Occupied Occupancy = "occupied"
	Vacant   Occupancy = "vacant"
)

// Valid reports whether o is a known occupancy tag.
func (o Occupancy) Valid() bool {
	switch o {
	case Occupied, Vacant:
		return true
	}
	return false
}

// RentStatus tracks the payment state of the current rent period.
type RentStatus string

const (
	RentPaid    RentStatus = "paid"
	RentOverdue RentStatus = "overdue"
	RentPending RentStatus = "pending"
)

// Valid reports whether s is a known rent status tag.
func (s RentStatus) Valid() bool {
	switch s {
	case RentPaid, RentOverdue, RentPending:
		return true
	}
	return false
}

// Apartment is a rentable unit managed by the landlord.
type Apartment struct {
	ID         string     `json:"id" validate:"notblank"`
	Address    string     `json:"address" validate:"notblank"`
	Unit       string     `json:"unit" validate:"notblank"`
	Occupancy  Occupancy  `json:"occupancy" validate:"enum"`
	TenantID   string     `json:"tenant_id,omitempty"`
	RentStatus RentStatus `json:"rent_status" validate:"enum"`
	RentAmount float64    `json:"rent_amount" validate:"gte=0"`
}

// Label renders the apartment the way lists and pickers show it.
func (a Apartment) Label() string {
	return a.Address + ", " + a.Unit
}

// HasTenant reports whether a tenant reference is set. The reference is not
// checked against the tenant collection.
func (a Apartment) HasTenant() bool {
	return a.TenantID != ""
}

// Find returns the apartment with the given id.
func Find(apartments []Apartment, id string) (Apartment, bool) {
	for _, apt := range apartments {
		if apt.ID == id {
			return apt, true
		}
	}
	return Apartment{}, false
}
