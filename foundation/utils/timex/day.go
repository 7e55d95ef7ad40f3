// File: day.go
// Title: Day Boundary Helpers
// Description: Truncation of instants to midnight of their calendar day.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import "time"

// DayUTCMsFromUTCMs floors ms to the start of its UTC day. Negative values
// floor toward the earlier day. ms is rounded to the microsecond first, the
// same way UTCMsToUTCDatetime rounds it.
func DayUTCMsFromUTCMs(ms float64) int64 {
	sec, _ := splitMs(ms)
	days := sec / DaySeconds
	if sec%DaySeconds < 0 {
		days--
	}
	return days * DayMs
}

// DayDatetimeFromDatetime returns midnight of t's calendar day as a naive
// datetime.
func DayDatetimeFromDatetime(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayDatetimeFromUTCMs returns midnight of the UTC day containing ms.
func DayDatetimeFromUTCMs(ms float64) time.Time {
	return DayDatetimeFromDatetime(UTCMsToUTCDatetime(ms))
}
