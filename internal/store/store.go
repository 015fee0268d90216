package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"cloud.google.com/go/civil"
	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/ganot/landlord/internal/domain/calendar"
	"github.com/ganot/landlord/internal/domain/document"
	"github.com/ganot/landlord/internal/domain/maintenance"
	"github.com/ganot/landlord/internal/domain/tenant"
	"github.com/google/uuid"
)

const (
	apartmentIDPrefix   = "A-"
	maintenanceIDPrefix = "MNT-"
)

// Store holds the in-memory collections. Mutations are serialised and each
// one publishes a new Snapshot; readers never block.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
	journal Journal
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a store holding a copy of seed.
func New(seed Seed, opts Options) (*Store, error) {
	seen := make(map[string]struct{}, len(seed.Apartments))
	for _, apt := range seed.Apartments {
		if _, dup := seen[apt.ID]; dup {
			return nil, fmt.Errorf("seed apartment %q: %w", apt.ID, ErrDuplicateID)
		}
		seen[apt.ID] = struct{}{}
		if err := Validate(apt); err != nil {
			return nil, fmt.Errorf("seed apartment %q: %w", apt.ID, err)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Store{journal: opts.Journal, logger: logger, now: now}
	s.current.Store(newSnapshot(seed))
	return s, nil
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

func (s *Store) Apartments() []apartment.Apartment { return s.Snapshot().Apartments() }

func (s *Store) Tenants() []tenant.Tenant { return s.Snapshot().Tenants() }

func (s *Store) MaintenanceRequests() []maintenance.Request {
	return s.Snapshot().MaintenanceRequests()
}

func (s *Store) Documents() []document.Document { return s.Snapshot().Documents() }

func (s *Store) CalendarEvents() []calendar.Event { return s.Snapshot().CalendarEvents() }

func (s *Store) Apartment(id string) (apartment.Apartment, bool) {
	return s.Snapshot().Apartment(id)
}

// AddApartment appends a new vacant apartment with rent pending.
func (s *Store) AddApartment(ctx context.Context, in NewApartment) (apartment.Apartment, error) {
	if err := Validate(in); err != nil {
		return apartment.Apartment{}, err
	}
	apt := apartment.Apartment{
		ID:         apartmentIDPrefix + uuid.NewString(),
		Address:    in.Address,
		Unit:       in.Unit,
		Occupancy:  apartment.Vacant,
		RentStatus: apartment.RentPending,
		RentAmount: in.RentAmount,
	}

	s.mu.Lock()
	snap := s.current.Load().next()
	// Clip forces append to copy, leaving the previous snapshot untouched.
	snap.apartments = append(slices.Clip(snap.apartments), apt)
	s.current.Store(snap)
	s.mu.Unlock()

	s.logger.Info("apartment added", "id", apt.ID, "version", snap.version)
	s.record(ctx, activity.TypeApartmentAdded, apt.ID, "Added apartment "+apt.Label(), apt)
	return apt, nil
}

// UpdateApartment replaces the apartment with the same id, keeping its
// position.
func (s *Store) UpdateApartment(ctx context.Context, apt apartment.Apartment) (apartment.Apartment, error) {
	if err := Validate(apt); err != nil {
		return apartment.Apartment{}, err
	}

	s.mu.Lock()
	cur := s.current.Load()
	idx := slices.IndexFunc(cur.apartments, func(a apartment.Apartment) bool { return a.ID == apt.ID })
	if idx < 0 {
		s.mu.Unlock()
		return apartment.Apartment{}, fmt.Errorf("%w: %s", ErrApartmentNotFound, apt.ID)
	}
	snap := cur.next()
	snap.apartments = slices.Clone(cur.apartments)
	snap.apartments[idx] = apt
	s.current.Store(snap)
	s.mu.Unlock()

	s.logger.Info("apartment updated", "id", apt.ID, "version", snap.version)
	s.record(ctx, activity.TypeApartmentUpdated, apt.ID, "Updated apartment "+apt.Label(), apt)
	return apt, nil
}

// PatchApartment applies fn to the current apartment with the given id and
// stores the result, all under the write lock. Concurrent patches touching
// different fields both survive. fn cannot change the id.
func (s *Store) PatchApartment(ctx context.Context, id string, fn func(*apartment.Apartment)) (apartment.Apartment, error) {
	s.mu.Lock()
	cur := s.current.Load()
	idx := slices.IndexFunc(cur.apartments, func(a apartment.Apartment) bool { return a.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return apartment.Apartment{}, fmt.Errorf("%w: %s", ErrApartmentNotFound, id)
	}
	apt := cur.apartments[idx]
	fn(&apt)
	apt.ID = id
	if err := Validate(apt); err != nil {
		s.mu.Unlock()
		return apartment.Apartment{}, err
	}
	snap := cur.next()
	snap.apartments = slices.Clone(cur.apartments)
	snap.apartments[idx] = apt
	s.current.Store(snap)
	s.mu.Unlock()

	s.logger.Info("apartment patched", "id", apt.ID, "version", snap.version)
	s.record(ctx, activity.TypeApartmentUpdated, apt.ID, "Updated apartment "+apt.Label(), apt)
	return apt, nil
}

// AddMaintenanceRequest logs a new request dated today and puts it first.
// The apartment reference is not checked.
func (s *Store) AddMaintenanceRequest(ctx context.Context, in NewMaintenanceRequest) (maintenance.Request, error) {
	req := maintenance.Request{
		ID:          maintenanceIDPrefix + uuid.NewString(),
		ApartmentID: in.ApartmentID,
		Description: in.Description,
		Category:    in.Category,
		Status:      maintenance.StatusNew,
		DateLogged:  civil.DateOf(s.now().UTC()),
		Priority:    in.Priority,
	}
	if req.Category == "" {
		req.Category = maintenance.CategoryGeneral
	}
	if req.Priority == "" {
		req.Priority = maintenance.PriorityMedium
	}
	if err := Validate(req); err != nil {
		return maintenance.Request{}, err
	}

	s.mu.Lock()
	snap := s.current.Load().next()
	snap.maintenance = append([]maintenance.Request{req}, snap.maintenance...)
	s.current.Store(snap)
	s.mu.Unlock()

	s.logger.Info("maintenance request logged", "id", req.ID, "apartment_id", req.ApartmentID, "version", snap.version)
	s.record(ctx, activity.TypeMaintenanceLogged, req.ID, "Logged "+req.Category.Label()+" request for apartment "+req.ApartmentID, req)
	return req, nil
}

// record journals a mutation. Failures are logged and otherwise ignored.
func (s *Store) record(ctx context.Context, typ activity.ActivityType, entityID, summary string, details any) {
	if s.journal == nil {
		return
	}
	entry := &activity.ActivityEntry{
		EntityID:     entityID,
		ActivityType: typ,
		Summary:      summary,
		CreatedAt:    s.now(),
	}
	if raw, err := json.Marshal(details); err == nil {
		entry.Details = string(raw)
	}
	if err := s.journal.LogActivity(ctx, entry); err != nil {
		s.logger.Warn("failed to journal mutation", "type", typ, "entity_id", entityID, "error", err)
	}
}
