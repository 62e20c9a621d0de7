package utils

import (
	"strings"
	"time"
)

// Today returns the current calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// CompactDate collapses "2025-06-01" to "20250601" for calendar
// timestamps. No timezone conversion is applied anywhere in the calendar
// path; the exported values are floating local times.
func CompactDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

// CompactClock collapses "18:00" to "180000".
func CompactClock(clock string) string {
	return strings.ReplaceAll(clock, ":", "") + "00"
}
