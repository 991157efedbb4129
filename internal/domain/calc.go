package domain

import "time"

// CalculatePercentage returns current/target as a percentage clamped to
// [0, 100]. A zero target yields 0.
func CalculatePercentage(current, target float64) float64 {
	if target == 0 {
		return 0
	}
	pct := current / target * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Duration is a minute count broken into hours and minutes for display.
type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// FormatDuration splits a minute count into hours and remaining minutes.
func FormatDuration(minutes int) Duration {
	return Duration{Hours: minutes / 60, Minutes: minutes % 60}
}

// StartOfWeek returns Sunday 00:00:00 of the week containing t, in t's
// location.
func StartOfWeek(t time.Time) time.Time {
	d := t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateInCurrentWeek reports whether date falls on or after the start of the
// week containing now.
func IsDateInCurrentWeek(date, now time.Time) bool {
	return !date.Before(StartOfWeek(now))
}

// WeekNumber returns the ISO-8601 week number for t.
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// DayName returns the full weekday name for t.
func DayName(t time.Time) string {
	return t.Weekday().String()
}

// TimeBasedGreeting returns a greeting for t's hour of day: morning for
// [5,12), afternoon for [12,18), evening otherwise.
func TimeBasedGreeting(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return "Good morning"
	case h >= 12 && h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
