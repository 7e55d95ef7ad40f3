// File: deprecated.go
// Title: Removed Conversion Functions
// Description: Former entry points that now only report their replacement.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import "time"

// UnixTimeMsToDatetime always fails.
//
// Deprecated: use UTCMsToLocalDatetime.
func UnixTimeMsToDatetime(ms float64) (time.Time, error) {
	return time.Time{}, newDeprecatedAPIError("UnixTimeMsToDatetime", "UTCMsToLocalDatetime")
}

// DatetimeToUnixTimeMs always fails.
//
// Deprecated: use UTCDatetimeToUTCMs.
func DatetimeToUnixTimeMs(t time.Time) (float64, error) {
	return 0, newDeprecatedAPIError("DatetimeToUnixTimeMs", "UTCDatetimeToUTCMs")
}
