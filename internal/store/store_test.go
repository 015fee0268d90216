package store_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/ganot/landlord/internal/domain/maintenance"
	"github.com/ganot/landlord/internal/domain/tenant"
	"github.com/ganot/landlord/internal/repository/mocks"
	"github.com/ganot/landlord/internal/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 15, 23, 30, 0, 0, time.UTC)

func testSeed() store.Seed {
	return store.Seed{
		Apartments: []apartment.Apartment{
			{ID: "A1", Address: "Piazzale Susa, 7", Unit: "Int. 1", Occupancy: apartment.Vacant, RentStatus: apartment.RentPending, RentAmount: 1440},
			{ID: "A2", Address: "Via Roma 1", Unit: "Int. 2", Occupancy: apartment.Occupied, TenantID: "T1", RentStatus: apartment.RentPaid, RentAmount: 900},
		},
		Tenants: []tenant.Tenant{{ID: "T1", Name: "Mario Rossi", ApartmentID: "A2"}},
		MaintenanceRequests: []maintenance.Request{
			{ID: "R1", ApartmentID: "A2", Description: "Rubinetto", Category: maintenance.CategoryPlumbing, Status: maintenance.StatusNew, Priority: maintenance.PriorityLow},
		},
	}
}

func newStore(t *testing.T, opts store.Options) *store.Store {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	s, err := store.New(testSeed(), opts)
	require.NoError(t, err)
	return s
}

func TestStore_AddApartmentAppends(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, store.Options{})
	before := s.Apartments()

	apt, err := s.AddApartment(ctx, store.NewApartment{Address: "Via Po 3", Unit: "Int. 5", RentAmount: 750})
	require.NoError(t, err)
	require.Regexp(t, `^A-`, apt.ID)
	require.Equal(t, apartment.Vacant, apt.Occupancy)
	require.Equal(t, apartment.RentPending, apt.RentStatus)
	require.Empty(t, apt.TenantID)

	after := s.Apartments()
	require.Len(t, after, len(before)+1)
	require.Equal(t, before, after[:len(before)])
	require.Equal(t, apt, after[len(after)-1])

	got, ok := s.Apartment(apt.ID)
	require.True(t, ok)
	require.Equal(t, apt, got)
}

func TestStore_AddApartmentAllowsZeroRent(t *testing.T) {
	s := newStore(t, store.Options{})
	_, err := s.AddApartment(context.Background(), store.NewApartment{Address: "Via Po 3", Unit: "Box"})
	require.NoError(t, err)
}

func TestStore_AddApartmentValidation(t *testing.T) {
	ctx := context.Background()
	journal := &mocks.Journal{}
	s := newStore(t, store.Options{Journal: journal})

	cases := []store.NewApartment{
		{Address: "", Unit: "Int. 1", RentAmount: 100},
		{Address: "Via Po 3", Unit: "   ", RentAmount: 100},
		{Address: "Via Po 3", Unit: "Int. 1", RentAmount: -1},
	}
	for _, in := range cases {
		_, err := s.AddApartment(ctx, in)
		require.ErrorIs(t, err, store.ErrInvalidInput)
	}
	require.Len(t, s.Apartments(), 2)
	require.EqualValues(t, 0, s.Snapshot().Version())
	journal.AssertNotCalled(t, "LogActivity", mock.Anything, mock.Anything)
}

func TestStore_IDsAreUnique(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, store.Options{})

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		apt, err := s.AddApartment(ctx, store.NewApartment{Address: "Via Po", Unit: fmt.Sprint(i)})
		require.NoError(t, err)
		require.False(t, seen[apt.ID])
		seen[apt.ID] = true

		req, err := s.AddMaintenanceRequest(ctx, store.NewMaintenanceRequest{ApartmentID: apt.ID, Description: "Perdita"})
		require.NoError(t, err)
		require.False(t, seen[req.ID])
		seen[req.ID] = true
	}
}

func TestStore_ConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, store.Options{})

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.AddApartment(ctx, store.NewApartment{Address: "Via Po", Unit: fmt.Sprint(i)})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	apts := s.Apartments()
	require.Len(t, apts, 52)
	ids := map[string]bool{}
	for _, apt := range apts {
		ids[apt.ID] = true
	}
	require.Len(t, ids, 52)
	require.EqualValues(t, 50, s.Snapshot().Version())
}

func TestStore_UpdateApartmentTargetsOne(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, store.Options{})
	before := s.Apartments()

	updated := before[0]
	updated.Occupancy = apartment.Occupied
	updated.TenantID = "T1"
	updated.RentStatus = apartment.RentOverdue

	got, err := s.UpdateApartment(ctx, updated)
	require.NoError(t, err)
	require.Equal(t, updated, got)

	after := s.Apartments()
	require.Equal(t, updated, after[0])
	require.Equal(t, before[1], after[1])
}

func TestStore_UpdateApartmentNotFound(t *testing.T) {
	ctx := context.Background()
	journal := &mocks.Journal{}
	s := newStore(t, store.Options{Journal: journal})
	before := s.Snapshot()

	_, err := s.UpdateApartment(ctx, apartment.Apartment{
		ID: "A404", Address: "Via Po", Unit: "1", Occupancy: apartment.Vacant, RentStatus: apartment.RentPaid,
	})
	require.ErrorIs(t, err, store.ErrApartmentNotFound)
	require.Same(t, before, s.Snapshot())
	journal.AssertNotCalled(t, "LogActivity", mock.Anything, mock.Anything)
}

func TestStore_UpdateApartmentRejectsUnknownTags(t *testing.T) {
	s := newStore(t, store.Options{})
	apt := s.Apartments()[0]
	apt.Occupancy = "rented"

	_, err := s.UpdateApartment(context.Background(), apt)
	require.ErrorIs(t, err, store.ErrInvalidInput)
	require.Contains(t, err.Error(), "occupancy")
}

func TestStore_ConcurrentPatchesKeepBothFields(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, store.Options{})

	for i := 0; i < 20; i++ {
		var wg sync.WaitGroup
		errs := make(chan error, 2)
		unit := fmt.Sprintf("Int. %d", i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := s.PatchApartment(ctx, "A1", func(a *apartment.Apartment) { a.Unit = unit })
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := s.PatchApartment(ctx, "A1", func(a *apartment.Apartment) { a.RentAmount = float64(i) })
			errs <- err
		}()
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		apt, ok := s.Apartment("A1")
		require.True(t, ok)
		require.Equal(t, unit, apt.Unit)
		require.Equal(t, float64(i), apt.RentAmount)
	}
	require.EqualValues(t, 40, s.Snapshot().Version())
}

func TestStore_PatchApartmentErrors(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, store.Options{})
	before := s.Snapshot()

	_, err := s.PatchApartment(ctx, "A404", func(a *apartment.Apartment) { a.Unit = "2" })
	require.ErrorIs(t, err, store.ErrApartmentNotFound)

	_, err = s.PatchApartment(ctx, "A1", func(a *apartment.Apartment) { a.Address = " " })
	require.ErrorIs(t, err, store.ErrInvalidInput)

	got, err := s.PatchApartment(ctx, "A1", func(a *apartment.Apartment) { a.ID = "A9" })
	require.NoError(t, err)
	require.Equal(t, "A1", got.ID)
	require.Equal(t, before.Version()+1, s.Snapshot().Version())
	require.Equal(t, before.Apartments()[1:], s.Apartments()[1:])
}

func TestStore_AddMaintenanceRequestPrepends(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, store.Options{})

	first, err := s.AddMaintenanceRequest(ctx, store.NewMaintenanceRequest{
		ApartmentID: "A1", Description: "Caldaia", Category: maintenance.CategoryAppliance, Priority: maintenance.PriorityHigh,
	})
	require.NoError(t, err)
	second, err := s.AddMaintenanceRequest(ctx, store.NewMaintenanceRequest{ApartmentID: "A2", Description: "Crepa"})
	require.NoError(t, err)

	require.Regexp(t, `^MNT-`, first.ID)
	require.Equal(t, maintenance.StatusNew, first.Status)
	require.Equal(t, civil.Date{Year: 2026, Month: time.October, Day: 15}, first.DateLogged)
	require.Equal(t, maintenance.CategoryGeneral, second.Category)
	require.Equal(t, maintenance.PriorityMedium, second.Priority)

	reqs := s.MaintenanceRequests()
	require.Len(t, reqs, 3)
	require.Equal(t, second.ID, reqs[0].ID)
	require.Equal(t, first.ID, reqs[1].ID)
	require.Equal(t, "R1", reqs[2].ID)
}

func TestStore_AddMaintenanceRequestValidation(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, store.Options{})

	cases := []store.NewMaintenanceRequest{
		{ApartmentID: "", Description: "Caldaia"},
		{ApartmentID: "A1", Description: " "},
		{ApartmentID: "A1", Description: "Caldaia", Category: "gardening"},
		{ApartmentID: "A1", Description: "Caldaia", Priority: "urgent"},
	}
	for _, in := range cases {
		_, err := s.AddMaintenanceRequest(ctx, in)
		require.ErrorIs(t, err, store.ErrInvalidInput)
	}
	require.Len(t, s.MaintenanceRequests(), 1)
}

func TestStore_AddMaintenanceRequestToleratesUnknownApartment(t *testing.T) {
	s := newStore(t, store.Options{})
	req, err := s.AddMaintenanceRequest(context.Background(), store.NewMaintenanceRequest{ApartmentID: "A404", Description: "Guasto"})
	require.NoError(t, err)
	require.Equal(t, apartment.UnknownLabel, s.Snapshot().MaintenanceRows(maintenance.FilterAll)[0].ApartmentLabel)
	require.Equal(t, "A404", req.ApartmentID)
}

func TestStore_SnapshotsAreImmutable(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, store.Options{})
	old := s.Snapshot()

	_, err := s.AddApartment(ctx, store.NewApartment{Address: "Via Po", Unit: "1"})
	require.NoError(t, err)
	apt := s.Apartments()[0]
	apt.RentStatus = apartment.RentOverdue
	_, err = s.UpdateApartment(ctx, apt)
	require.NoError(t, err)
	_, err = s.AddMaintenanceRequest(ctx, store.NewMaintenanceRequest{ApartmentID: "A1", Description: "Caldaia"})
	require.NoError(t, err)

	require.Len(t, old.Apartments(), 2)
	require.Equal(t, apartment.RentPending, old.Apartments()[0].RentStatus)
	require.Len(t, old.MaintenanceRequests(), 1)
	require.EqualValues(t, 0, old.Version())
	require.EqualValues(t, 3, s.Snapshot().Version())

	// Copies handed out by accessors do not alias the snapshot.
	copied := old.Apartments()
	copied[0].Address = "changed"
	require.Equal(t, "Piazzale Susa, 7", old.Apartments()[0].Address)
}

func TestStore_JournalsMutations(t *testing.T) {
	ctx := context.Background()
	journal := &mocks.Journal{}
	journal.On("LogActivity", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeApartmentAdded && e.Details != "" && e.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()
	journal.On("LogActivity", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeMaintenanceLogged
	})).Return(errors.New("journal down")).Once()

	s := newStore(t, store.Options{Journal: journal})

	_, err := s.AddApartment(ctx, store.NewApartment{Address: "Via Po", Unit: "1"})
	require.NoError(t, err)
	// A failing journal never fails the mutation.
	_, err = s.AddMaintenanceRequest(ctx, store.NewMaintenanceRequest{ApartmentID: "A1", Description: "Caldaia"})
	require.NoError(t, err)

	journal.AssertExpectations(t)
}

func TestNew_RejectsDuplicateSeedIDs(t *testing.T) {
	seed := testSeed()
	seed.Apartments = append(seed.Apartments, seed.Apartments[0])

	_, err := store.New(seed, store.Options{})
	require.ErrorIs(t, err, store.ErrDuplicateID)
}

func TestNew_EmptySeed(t *testing.T) {
	s, err := store.New(store.Seed{}, store.Options{})
	require.NoError(t, err)
	require.NotNil(t, s.Apartments())
	require.Empty(t, s.Apartments())
	require.Equal(t, 0, s.Snapshot().Summary().OccupancyRate)
}
