package dashboard

import (
	"math"
	"strconv"

	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/ganot/landlord/internal/domain/maintenance"
)

// Summary holds the headline figures of the dashboard.
type Summary struct {
	TotalProperties    int    `json:"total_properties"`
	Occupied           int    `json:"occupied"`
	OccupancyRate      int    `json:"occupancy_rate"`
	OccupancyRateLabel string `json:"occupancy_rate_label"`
	OverdueRents       int    `json:"overdue_rents"`
	OpenMaintenance    int    `json:"open_maintenance"`
}

// Summarize computes the dashboard figures for one snapshot.
func Summarize(apartments []apartment.Apartment, requests []maintenance.Request) Summary {
	rate := OccupancyRate(apartments)
	return Summary{
		TotalProperties:    len(apartments),
		Occupied:           OccupiedCount(apartments),
		OccupancyRate:      rate,
		OccupancyRateLabel: strconv.Itoa(rate) + "%",
		OverdueRents:       OverdueCount(apartments),
		OpenMaintenance:    OpenMaintenanceCount(requests),
	}
}

// OccupiedCount counts occupied apartments.
func OccupiedCount(apartments []apartment.Apartment) int {
	n := 0
	for _, apt := range apartments {
		if apt.Occupancy == apartment.Occupied {
			n++
		}
	}
	return n
}

// OccupancyRate is the share of occupied apartments as a whole percentage.
// An empty portfolio has a rate of 0.
func OccupancyRate(apartments []apartment.Apartment) int {
	if len(apartments) == 0 {
		return 0
	}
	return int(math.Round(float64(OccupiedCount(apartments)) * 100 / float64(len(apartments))))
}

// OverdueCount counts apartments whose rent is overdue.
func OverdueCount(apartments []apartment.Apartment) int {
	n := 0
	for _, apt := range apartments {
		if apt.RentStatus == apartment.RentOverdue {
			n++
		}
	}
	return n
}

// OpenMaintenanceCount counts requests that are not completed.
func OpenMaintenanceCount(requests []maintenance.Request) int {
	return maintenance.OpenCount(requests)
}
