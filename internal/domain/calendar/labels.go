package calendar

import "time"

var monthNames = [...]string{
	"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

// Indexed by time.Weekday.
var weekdayShortNames = [...]string{"Dom", "Lun", "Mar", "Mer", "Gio", "Ven", "Sab"}

// MonthName returns the Italian name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return monthNames[m-1]
}

// WeekdayHeaders returns the short weekday names starting at weekStart.
func WeekdayHeaders(weekStart time.Weekday) []string {
	headers := make([]string, 0, len(weekdayShortNames))
	for i := range weekdayShortNames {
		headers = append(headers, weekdayShortNames[(int(weekStart)+i)%7])
	}
	return headers
}
