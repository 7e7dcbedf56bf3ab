// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// DateLayout is the calendar date format used for session records.
const DateLayout = "2006-01-02"

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// System is the wall clock.
var System Clock = ClockFunc(time.Now)

// Fixed returns a clock that always reports t.
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time {
		return t
	})
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	if val < 0 {
		val = 0
	}

	return val / secondsInAMinute, val % secondsInAMinute
}

// FormatCountdown renders seconds as MM:SS.
func FormatCountdown(val int) string {
	m, s := SecsToMinsAndSecs(val)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// DateOf returns the local calendar date of t.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBefore returns the calendar date n days before t.
func DaysBefore(t time.Time, n int) string {
	return DateOf(RoundToStart(t).AddDate(0, 0, -n))
}

// FromStr parses a human readable date such as "yesterday" or "2 days ago"
// relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}

	if t, err := time.ParseInLocation(DateLayout, s, now.Location()); err == nil {
		return t, nil
	}

	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: now,
	}, s)
	if err != nil {
		return time.Time{}, errInvalidDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}

// MinsToHoursAndMins formats a minutes value as "1h 5m" or "45m".
func MinsToHoursAndMins(val int) string {
	if val < 0 {
		val = 0
	}

	h, m := val/minutesInAnHour, val%minutesInAnHour
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}
