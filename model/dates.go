package model

import (
	"strings"
	"time"
)

// DateLayout is the on-disk and display format for calendar dates.
const DateLayout = "2006-01-02"

// SystemDate is the registry's fixed notion of "now" used to filter current flights.
var SystemDate = Date(2020, time.November, 11)

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today drops the clock part of t, keeping its calendar day.
func Today(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the whole number of days from `from` to `to`, negative when `to` is earlier.
func DaysBetween(from, to time.Time) int {
	return int(Today(to).Sub(Today(from)).Hours() / 24)
}
