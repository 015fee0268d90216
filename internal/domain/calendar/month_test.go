package calendar_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/ganot/landlord/internal/domain/calendar"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestProjectMonth_BucketsEventsByDay(t *testing.T) {
	events := []calendar.Event{
		{ID: "E1", Date: date(2026, time.April, 5), Title: "Affitto A1", Type: calendar.TypeRentCollection},
		{ID: "E2", Date: date(2026, time.May, 1), Title: "Fuori mese", Type: calendar.TypeInspection},
		{ID: "E3", Date: date(2026, time.April, 5), Title: "Ispezione A1", Type: calendar.TypeInspection},
		{ID: "E4", Date: date(2026, time.April, 30), Title: "Rinnovo", Type: calendar.TypeLeaseRenewal},
		{ID: "E5", Date: date(2025, time.April, 5), Title: "Anno prima", Type: calendar.TypeInspection},
	}

	month := calendar.ProjectMonth(date(2026, time.April, 17), events, calendar.ProjectOptions{})

	require.Equal(t, date(2026, time.April, 1), month.First)
	require.Equal(t, date(2026, time.April, 30), month.Last)
	require.Len(t, month.Days, 30)
	// 1 April 2026 is a Wednesday.
	require.Equal(t, 3, month.Offset)
	require.Equal(t, "aprile 2026", month.Label)
	require.Equal(t, "2026-03", month.Previous)
	require.Equal(t, "2026-05", month.Next)

	fifth := month.Days[4]
	require.Equal(t, date(2026, time.April, 5), fifth.Date)
	require.Len(t, fifth.Events, 2)
	require.Equal(t, "E1", fifth.Events[0].ID)
	require.Equal(t, "E3", fifth.Events[1].ID)

	require.Len(t, month.Days[29].Events, 1)
	require.Equal(t, "E4", month.Days[29].Events[0].ID)

	total := 0
	for i, day := range month.Days {
		require.Equal(t, i+1, day.Date.Day)
		require.NotNil(t, day.Events)
		total += len(day.Events)
	}
	require.Equal(t, 3, total)
}

func TestProjectMonth_WeekStartMonday(t *testing.T) {
	month := calendar.ProjectMonth(date(2026, time.April, 1), nil, calendar.ProjectOptions{WeekStart: time.Monday})

	require.Equal(t, 2, month.Offset)
	require.Equal(t, "Lun", month.Weekdays[0])
	require.Equal(t, "Dom", month.Weekdays[6])
}

func TestProjectMonth_LeapFebruary(t *testing.T) {
	month := calendar.ProjectMonth(date(2024, time.February, 10), nil, calendar.ProjectOptions{})
	require.Len(t, month.Days, 29)
	require.Equal(t, date(2024, time.February, 29), month.Last)
}

func TestMonthNavigation(t *testing.T) {
	require.Equal(t, date(2026, time.January, 1), calendar.NextMonth(date(2025, time.December, 31)))
	require.Equal(t, date(2025, time.December, 1), calendar.PreviousMonth(date(2026, time.January, 15)))
	require.Equal(t, date(2026, time.February, 1), calendar.NextMonth(date(2026, time.January, 31)))
	require.Equal(t, date(2026, time.February, 1), calendar.PreviousMonth(date(2026, time.March, 31)))
}

func TestParseMonth(t *testing.T) {
	d, err := calendar.ParseMonth("2026-04")
	require.NoError(t, err)
	require.Equal(t, date(2026, time.April, 1), d)

	d, err = calendar.ParseMonth("2026-04-17")
	require.NoError(t, err)
	require.Equal(t, date(2026, time.April, 1), d)

	for _, bad := range []string{"", "2026-13", "2026/04", "abcd-ef", "26-4", "+202-01", "-001-05", "2026-+1", "2026- 1", "２０２６-01"} {
		_, err := calendar.ParseMonth(bad)
		require.ErrorIs(t, err, calendar.ErrInvalidMonth, bad)
	}
}

func TestFormatMonth(t *testing.T) {
	require.Equal(t, "2026-04", calendar.FormatMonth(date(2026, time.April, 17)))
}
