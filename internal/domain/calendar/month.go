package calendar

import (
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
)

// Day is one cell of a month grid.
type Day struct {
	Date    civil.Date `json:"date"`
	Events  []Event    `json:"events"`
	Holiday string     `json:"holiday,omitempty"`
}

// Month is the day-bucketed projection of the calendar for one month.
type Month struct {
	Year      int          `json:"year"`
	Month     time.Month   `json:"month"`
	Label     string       `json:"label"`
	First     civil.Date   `json:"first"`
	Last      civil.Date   `json:"last"`
	WeekStart time.Weekday `json:"week_start"`
	// Offset is the number of empty cells before day 1 in a grid whose
	// first column is WeekStart.
	Offset   int      `json:"offset"`
	Weekdays []string `json:"weekdays"`
	Days     []Day    `json:"days"`
	Previous string   `json:"previous"`
	Next     string   `json:"next"`
}

// ProjectMonth buckets events by day for the month containing ref. Each
// bucket holds the events dated exactly on that day, in input order; events
// outside the month are ignored.
func ProjectMonth(ref civil.Date, events []Event, opts ProjectOptions) Month {
	first := FirstOfMonth(ref)
	last := civil.DateOf(first.In(time.UTC).AddDate(0, 1, -1))

	byDay := make(map[civil.Date][]Event)
	for _, ev := range events {
		if ev.Date.Year == first.Year && ev.Date.Month == first.Month {
			byDay[ev.Date] = append(byDay[ev.Date], ev)
		}
	}

	days := make([]Day, 0, last.Day)
	for d := first; !d.After(last); d = d.AddDays(1) {
		day := Day{Date: d, Events: byDay[d]}
		if day.Events == nil {
			day.Events = []Event{}
		}
		if opts.Holidays != nil {
			if name, ok := opts.Holidays.HolidayOn(d); ok {
				day.Holiday = name
			}
		}
		days = append(days, day)
	}

	return Month{
		Year:      first.Year,
		Month:     first.Month,
		Label:     fmt.Sprintf("%s %d", MonthName(first.Month), first.Year),
		First:     first,
		Last:      last,
		WeekStart: opts.WeekStart,
		Offset:    WeekdayOffset(first, opts.WeekStart),
		Weekdays:  WeekdayHeaders(opts.WeekStart),
		Days:      days,
		Previous:  FormatMonth(PreviousMonth(first)),
		Next:      FormatMonth(NextMonth(first)),
	}
}

// WeekdayOffset returns how many columns d sits after weekStart.
func WeekdayOffset(d civil.Date, weekStart time.Weekday) int {
	return (int(d.In(time.UTC).Weekday()) - int(weekStart) + 7) % 7
}

// FirstOfMonth clamps d to day 1 of its month.
func FirstOfMonth(d civil.Date) civil.Date {
	return civil.Date{Year: d.Year, Month: d.Month, Day: 1}
}

// PreviousMonth returns day 1 of the month before d.
func PreviousMonth(d civil.Date) civil.Date {
	return addMonths(d, -1)
}

// NextMonth returns day 1 of the month after d.
func NextMonth(d civil.Date) civil.Date {
	return addMonths(d, 1)
}

func addMonths(d civil.Date, n int) civil.Date {
	// Day 1 never overflows, so time.Date only has to normalise the month.
	return civil.DateOf(time.Date(d.Year, d.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC))
}

// ParseMonth parses a YYYY-MM month reference into day 1 of that month. A
// full YYYY-MM-DD date is accepted and clamped.
func ParseMonth(s string) (civil.Date, error) {
	if d, err := civil.ParseDate(s); err == nil {
		return FirstOfMonth(d), nil
	}
	if !isMonthRef(s) {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[5:])
	if month < 1 || month > 12 {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return civil.Date{Year: year, Month: time.Month(month), Day: 1}, nil
}

// isMonthRef reports whether s is four ASCII digits, a dash and two ASCII
// digits.
func isMonthRef(s string) bool {
	if len(s) != 7 || s[4] != '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i != 4 && (s[i] < '0' || s[i] > '9') {
			return false
		}
	}
	return true
}

// FormatMonth renders d as YYYY-MM.
func FormatMonth(d civil.Date) string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}
