package apartment_test

import (
	"testing"

	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	cases := map[string]apartment.Filter{
		"":            apartment.FilterAll,
		"all":         apartment.FilterAll,
		"occupied":    apartment.FilterOccupied,
		" Vacant ":    apartment.FilterVacant,
		"overdue":     apartment.FilterOverdue,
		"maintenance": apartment.FilterMaintenance,
		"bogus":       apartment.FilterAll,
	}
	for tag, want := range cases {
		require.Equal(t, want, apartment.ParseFilter(tag), tag)
	}
}

func TestLabelFor(t *testing.T) {
	apts := []apartment.Apartment{{ID: "A1", Address: "Piazzale Susa, 7", Unit: "Int. 1"}}

	require.Equal(t, "Piazzale Susa, 7, Int. 1", apartment.LabelFor(apts, "A1"))
	require.Equal(t, apartment.UnknownLabel, apartment.LabelFor(apts, "A9"))
}

func TestEnumValidity(t *testing.T) {
	require.True(t, apartment.Occupied.Valid())
	require.False(t, apartment.Occupancy("rented").Valid())
	require.True(t, apartment.RentOverdue.Valid())
	require.False(t, apartment.RentStatus("").Valid())
	require.Equal(t, "Sfitto", apartment.Vacant.Label())
}
