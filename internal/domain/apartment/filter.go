package apartment

import "strings"

// Filter selects a subset of apartments on the dashboard.
type Filter string

const (
	FilterAll         Filter = "all"
	FilterOccupied    Filter = "occupied"
	FilterVacant      Filter = "vacant"
	FilterOverdue     Filter = "overdue"
	FilterMaintenance Filter = "maintenance"
)

// ParseFilter maps a filter tag to a Filter. Unknown or empty tags select all
// apartments.
func ParseFilter(tag string) Filter {
	switch f := Filter(strings.ToLower(strings.TrimSpace(tag))); f {
	case FilterOccupied, FilterVacant, FilterOverdue, FilterMaintenance:
		return f
	default:
		return FilterAll
	}
}
