package maintenance_test

import (
	"testing"

	"github.com/ganot/landlord/internal/domain/maintenance"
	"github.com/stretchr/testify/require"
)

func TestParseStatusFilter(t *testing.T) {
	require.Equal(t, maintenance.FilterAll, maintenance.ParseStatusFilter(""))
	require.Equal(t, maintenance.FilterAll, maintenance.ParseStatusFilter("closed"))
	require.Equal(t, maintenance.StatusFilter(maintenance.StatusInProgress), maintenance.ParseStatusFilter("in_progress"))
}

func TestFilter_PreservesOrder(t *testing.T) {
	requests := []maintenance.Request{
		{ID: "R3", Status: maintenance.StatusNew},
		{ID: "R2", Status: maintenance.StatusCompleted},
		{ID: "R1", Status: maintenance.StatusNew},
	}

	out := maintenance.Filter(requests, maintenance.ParseStatusFilter("new"))
	require.Len(t, out, 2)
	require.Equal(t, "R3", out[0].ID)
	require.Equal(t, "R1", out[1].ID)

	require.Len(t, maintenance.Filter(requests, maintenance.FilterAll), 3)
	require.Empty(t, maintenance.Filter(nil, maintenance.FilterAll))
}

func TestOpenCountAndHasOpenRequest(t *testing.T) {
	requests := []maintenance.Request{
		{ID: "R1", ApartmentID: "A1", Status: maintenance.StatusCompleted},
		{ID: "R2", ApartmentID: "A2", Status: maintenance.StatusInProgress},
		{ID: "R3", ApartmentID: "A2", Status: maintenance.StatusNew},
	}

	require.Equal(t, 2, maintenance.OpenCount(requests))
	require.False(t, maintenance.HasOpenRequest(requests, "A1"))
	require.True(t, maintenance.HasOpenRequest(requests, "A2"))
	require.False(t, maintenance.HasOpenRequest(requests, "A3"))
}
