// File: epoch.go
// Title: Epoch Millisecond Conversions
// Description: Conversions between time.Time and float64 milliseconds since
//              the Unix epoch. Arithmetic goes through whole seconds so the
//              full year 1..9999 range stays free of time.Duration overflow.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import (
	"math"
	"time"
)

// UTCDatetimeToUTCMs returns the milliseconds elapsed between the epoch and
// t. Naive values are UTC already; zone-aware values contribute their
// instant.
func UTCDatetimeToUTCMs(t time.Time) float64 {
	return float64(t.Unix())*SecondMs + float64(t.Nanosecond())/1e6
}

// UTCMsToUTCDatetime returns the naive UTC datetime ms milliseconds after
// the epoch, rounded to the nearest microsecond. ms must be finite.
func UTCMsToUTCDatetime(ms float64) time.Time {
	sec, micros := splitMs(ms)
	return time.Unix(sec, micros*1000).UTC()
}

// splitMs splits ms into whole epoch seconds and a microsecond remainder in
// [0, 1e6), rounding to the nearest microsecond.
func splitMs(ms float64) (sec, micros int64) {
	s := math.Floor(ms / SecondMs)
	us := math.Round((ms - s*SecondMs) * 1000)
	if us >= 1e6 {
		s++
		us -= 1e6
	}
	return int64(s), int64(us)
}
