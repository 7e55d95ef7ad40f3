// File: display.go
// Title: Display Helpers
// Description: Compact duration rendering and day arithmetic.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Duration formatting helpers
// - 2026-10-19 v0.2.0: Minute/second rendering and elapsed day arithmetic

package timex

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// SecondsToMMSSStr renders a duration in seconds as "{m}m{ss}s", for example
// 125 as "2m05s". Seconds are rounded to the nearest whole second before
// splitting, so 59.6 renders as "1m00s". Negative durations get a leading
// minus sign. NaN and infinities render as "NaN", "+Inf" and "-Inf".
func SecondsToMMSSStr(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return strconv.FormatFloat(seconds, 'f', -1, 64)
	}
	total := math.Round(math.Abs(seconds))
	minutes := math.Floor(total / 60)
	secs := total - minutes*60

	result := fmt.Sprintf("%.0fm%02.0fs", minutes, secs)
	if seconds < 0 && total != 0 {
		return "-" + result
	}
	return result
}

// AddDaysToUTCDatetime adds days multiples of 24 hours of elapsed time to t.
// The result keeps t's location; no DST adjustment is made.
func AddDaysToUTCDatetime(t time.Time, days int) time.Time {
	return t.UTC().AddDate(0, 0, days).In(t.Location())
}
