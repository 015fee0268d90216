package store

import (
	"slices"

	"cloud.google.com/go/civil"
	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/ganot/landlord/internal/domain/calendar"
	"github.com/ganot/landlord/internal/domain/dashboard"
	"github.com/ganot/landlord/internal/domain/document"
	"github.com/ganot/landlord/internal/domain/maintenance"
	"github.com/ganot/landlord/internal/domain/tenant"
)

// Seed is the initial content of a store.
type Seed struct {
	Apartments          []apartment.Apartment
	Tenants             []tenant.Tenant
	MaintenanceRequests []maintenance.Request
	Documents           []document.Document
	CalendarEvents      []calendar.Event
}

// Snapshot is an immutable view of every collection at one version. A
// snapshot is never modified after it is published; accessors hand out
// copies.
type Snapshot struct {
	version     uint64
	apartments  []apartment.Apartment
	tenants     []tenant.Tenant
	maintenance []maintenance.Request
	documents   []document.Document
	events      []calendar.Event
}

func newSnapshot(seed Seed) *Snapshot {
	return &Snapshot{
		apartments:  orEmpty(slices.Clone(seed.Apartments)),
		tenants:     orEmpty(slices.Clone(seed.Tenants)),
		maintenance: orEmpty(slices.Clone(seed.MaintenanceRequests)),
		documents:   orEmpty(slices.Clone(seed.Documents)),
		events:      orEmpty(slices.Clone(seed.CalendarEvents)),
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// next returns a shallow copy with the version bumped. Callers replace the
// collections they change instead of writing into the shared ones.
func (s *Snapshot) next() *Snapshot {
	n := *s
	n.version++
	return &n
}

// Version increases by one with every mutation.
func (s *Snapshot) Version() uint64 { return s.version }

func (s *Snapshot) Apartments() []apartment.Apartment { return slices.Clone(s.apartments) }

func (s *Snapshot) Tenants() []tenant.Tenant { return slices.Clone(s.tenants) }

// MaintenanceRequests are ordered newest first.
func (s *Snapshot) MaintenanceRequests() []maintenance.Request { return slices.Clone(s.maintenance) }

func (s *Snapshot) Documents() []document.Document { return slices.Clone(s.documents) }

func (s *Snapshot) CalendarEvents() []calendar.Event { return slices.Clone(s.events) }

// Apartment looks up an apartment by id.
func (s *Snapshot) Apartment(id string) (apartment.Apartment, bool) {
	return apartment.Find(s.apartments, id)
}

// Summary computes the dashboard figures.
func (s *Snapshot) Summary() dashboard.Summary {
	return dashboard.Summarize(s.apartments, s.maintenance)
}

// ApartmentRows lists the apartments selected by f with their references
// resolved.
func (s *Snapshot) ApartmentRows(f apartment.Filter) []dashboard.ApartmentRow {
	return dashboard.ApartmentRows(s.apartments, s.tenants, s.maintenance, f)
}

// MaintenanceRows lists the requests selected by f, newest first.
func (s *Snapshot) MaintenanceRows(f maintenance.StatusFilter) []dashboard.MaintenanceRow {
	return dashboard.MaintenanceRows(s.maintenance, s.apartments, f)
}

// Month projects the calendar events onto the month containing ref.
func (s *Snapshot) Month(ref civil.Date, opts calendar.ProjectOptions) calendar.Month {
	return calendar.ProjectMonth(ref, s.events, opts)
}

// TenantRows lists tenants with their apartment resolved.
func (s *Snapshot) TenantRows() []dashboard.TenantRow {
	return dashboard.TenantRows(s.tenants, s.apartments)
}

// DocumentRows lists documents with their apartment resolved.
func (s *Snapshot) DocumentRows() []dashboard.DocumentRow {
	return dashboard.DocumentRows(s.documents, s.apartments)
}
