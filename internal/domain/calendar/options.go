package calendar

import "time"

// ProjectOptions controls how a month is laid out.
type ProjectOptions struct {
	// WeekStart is the weekday shown in the first grid column. The zero value
	// is Sunday.
	WeekStart time.Weekday
	// Holidays marks public holidays on the grid. Nil disables marking.
	Holidays HolidayCalendar
}
