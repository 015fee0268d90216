// Package app is the operation layer shared by the HTTP API and the MCP
// server. It reads store snapshots, forwards mutations to the store and
// resolves display views.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/ganot/landlord/internal/domain/calendar"
	"github.com/ganot/landlord/internal/domain/dashboard"
	"github.com/ganot/landlord/internal/domain/maintenance"
	"github.com/ganot/landlord/internal/store"
	"github.com/ganot/landlord/internal/suggestion"
)

// Store is the subset of *store.Store the service needs.
type Store interface {
	Snapshot() *store.Snapshot
	AddApartment(ctx context.Context, in store.NewApartment) (apartment.Apartment, error)
	UpdateApartment(ctx context.Context, apt apartment.Apartment) (apartment.Apartment, error)
	PatchApartment(ctx context.Context, id string, fn func(*apartment.Apartment)) (apartment.Apartment, error)
	AddMaintenanceRequest(ctx context.Context, in store.NewMaintenanceRequest) (maintenance.Request, error)
}

var _ Store = (*store.Store)(nil)

// ActivityService lists journalled mutations.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Options configures a Service. Every field is optional.
type Options struct {
	Suggestions suggestion.Gateway
	Activity    ActivityService
	Calendar    calendar.ProjectOptions
	Logger      *slog.Logger
	// Now decides the default calendar month.
	Now func() time.Time
}

// Service implements every dashboard operation.
type Service struct {
	store       Store
	suggestions suggestion.Gateway
	activity    ActivityService
	calendar    calendar.ProjectOptions
	logger      *slog.Logger
	now         func() time.Time
}

// NewService creates a service over st.
func NewService(st Store, opts Options) *Service {
	s := &Service{
		store:       st,
		suggestions: opts.Suggestions,
		activity:    opts.Activity,
		calendar:    opts.Calendar,
		logger:      opts.Logger,
		now:         opts.Now,
	}
	if s.suggestions == nil {
		s.suggestions = suggestion.New(suggestion.Config{}, nil)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Dashboard is the landing view: headline figures plus the filtered
// apartment list.
type Dashboard struct {
	Version    uint64                   `json:"version"`
	Summary    dashboard.Summary        `json:"summary"`
	Filter     apartment.Filter         `json:"filter"`
	Apartments []dashboard.ApartmentRow `json:"apartments"`
}

// Dashboard builds the dashboard from one snapshot. Unknown filter tags
// select every apartment.
func (s *Service) Dashboard(filterTag string) Dashboard {
	snap := s.store.Snapshot()
	f := apartment.ParseFilter(filterTag)
	return Dashboard{
		Version:    snap.Version(),
		Summary:    snap.Summary(),
		Filter:     f,
		Apartments: snap.ApartmentRows(f),
	}
}

// Apartments lists the apartments selected by filterTag.
func (s *Service) Apartments(filterTag string) []dashboard.ApartmentRow {
	return s.store.Snapshot().ApartmentRows(apartment.ParseFilter(filterTag))
}

func (s *Service) AddApartment(ctx context.Context, in store.NewApartment) (apartment.Apartment, error) {
	return s.store.AddApartment(ctx, in)
}

func (s *Service) UpdateApartment(ctx context.Context, apt apartment.Apartment) (apartment.Apartment, error) {
	return s.store.UpdateApartment(ctx, apt)
}

// PatchApartment changes only the fields fn touches, atomically with respect
// to other mutations.
func (s *Service) PatchApartment(ctx context.Context, id string, fn func(*apartment.Apartment)) (apartment.Apartment, error) {
	return s.store.PatchApartment(ctx, id, fn)
}

func (s *Service) Tenants() []dashboard.TenantRow {
	return s.store.Snapshot().TenantRows()
}

func (s *Service) Documents() []dashboard.DocumentRow {
	return s.store.Snapshot().DocumentRows()
}

// MaintenanceRequests lists requests newest first. Unknown status tags
// select every request.
func (s *Service) MaintenanceRequests(statusTag string) []dashboard.MaintenanceRow {
	return s.store.Snapshot().MaintenanceRows(maintenance.ParseStatusFilter(statusTag))
}

func (s *Service) AddMaintenanceRequest(ctx context.Context, in store.NewMaintenanceRequest) (maintenance.Request, error) {
	return s.store.AddMaintenanceRequest(ctx, in)
}

// Suggest asks the gateway for troubleshooting steps. It never fails; the
// store stays usable while the call is pending.
func (s *Service) Suggest(ctx context.Context, problem string) suggestion.Result {
	res := s.suggestions.Suggest(ctx, problem)
	s.logger.Debug("maintenance suggestions requested", "available", res.Available, "count", len(res.Suggestions))
	return res
}

// SuggestionsEnabled reports whether a credential was configured.
func (s *Service) SuggestionsEnabled() bool {
	return suggestion.Enabled(s.suggestions)
}

// CalendarMonth projects the month named by month (YYYY-MM, empty for the
// current month) after applying nav ("prev", "next" or empty).
func (s *Service) CalendarMonth(month, nav string) (calendar.Month, error) {
	ref := civil.DateOf(s.now().UTC())
	if month != "" {
		parsed, err := calendar.ParseMonth(month)
		if err != nil {
			return calendar.Month{}, err
		}
		ref = parsed
	}
	switch strings.ToLower(strings.TrimSpace(nav)) {
	case "":
	case "prev":
		ref = calendar.PreviousMonth(ref)
	case "next":
		ref = calendar.NextMonth(ref)
	default:
		return calendar.Month{}, fmt.Errorf("%w: nav %q", ErrInvalidInput, nav)
	}
	return s.store.Snapshot().Month(ref, s.calendar), nil
}

// RecentActivity lists journalled mutations newest first. Without a journal
// the list is empty.
func (s *Service) RecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	if s.activity == nil {
		return []activity.ActivityEntry{}, nil
	}
	return s.activity.GetRecentActivity(ctx, opts)
}
