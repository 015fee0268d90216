package maintenance

import "strings"

// StatusFilter selects requests by status. FilterAll matches every request.
type StatusFilter string

// FilterAll disables status filtering.
const FilterAll StatusFilter = "all"

// ParseStatusFilter maps a tag to a StatusFilter. Unknown or empty tags
// select all requests.
func ParseStatusFilter(tag string) StatusFilter {
	s := Status(strings.ToLower(strings.TrimSpace(tag)))
	if s.Valid() {
		return StatusFilter(s)
	}
	return FilterAll
}

// Matches reports whether req passes the filter.
func (f StatusFilter) Matches(req Request) bool {
	return f == FilterAll || Status(f) == req.Status
}

// Filter returns the requests passing f, keeping their order.
func Filter(requests []Request, f StatusFilter) []Request {
	out := make([]Request, 0, len(requests))
	for _, req := range requests {
		if f.Matches(req) {
			out = append(out, req)
		}
	}
	return out
}

// OpenCount counts requests that are not completed.
func OpenCount(requests []Request) int {
	n := 0
	for _, req := range requests {
		if req.Status.Open() {
			n++
		}
	}
	return n
}
