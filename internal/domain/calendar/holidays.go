package calendar

import (
	"time"

	"cloud.google.com/go/civil"
	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/it"
)

// HolidayCalendar reports public holidays.
type HolidayCalendar interface {
	HolidayOn(d civil.Date) (string, bool)
}

// BusinessHolidays adapts a rickar/cal business calendar.
type BusinessHolidays struct {
	bc *cal.BusinessCalendar
}

// NewItalianHolidays returns the Italian national holiday calendar.
func NewItalianHolidays() *BusinessHolidays {
	bc := cal.NewBusinessCalendar()
	bc.AddHoliday(it.Holidays...)
	return &BusinessHolidays{bc: bc}
}

// HolidayOn returns the name of the holiday falling on d, if any.
func (h *BusinessHolidays) HolidayOn(d civil.Date) (string, bool) {
	actual, observed, hol := h.bc.IsHoliday(d.In(time.UTC))
	if (!actual && !observed) || hol == nil {
		return "", false
	}
	return hol.Name, true
}
