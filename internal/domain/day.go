package domain

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used in query strings and forms.
const DateLayout = "2006-01-02"

// HoursPerSlot is the fraction of an hour one stored entry represents.
const HoursPerSlot = 0.25

// DaySlots returns the 96 quarter-hour labels of a day, ascending from
// "00:00" to "23:45".
func DaySlots() []string {
	slots := make([]string, 0, 96)
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += 15 {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// ParseDayOrToday parses an ISO date string, falling back to today's date in
// server-local time when the value is empty or malformed.
func ParseDayOrToday(value string) time.Time {
	if value != "" {
		if day, err := time.ParseInLocation(DateLayout, value, time.Local); err == nil {
			return day
		}
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// DayNav holds the navigation dates surrounding the displayed day.
type DayNav struct {
	Current string
	Prev    string
	Next    string
	Today   string
	Heading string
}

// NewDayNav computes previous/next/today navigation for the given day.
// AddDate handles month and year rollover, including leap days.
func NewDayNav(day time.Time) DayNav {
	return DayNav{
		Current: day.Format(DateLayout),
		Prev:    day.AddDate(0, 0, -1).Format(DateLayout),
		Next:    day.AddDate(0, 0, 1).Format(DateLayout),
		Today:   time.Now().Format(DateLayout),
		Heading: day.Format("Monday, January 02, 2006"),
	}
}
