// File: constants.go
// Title: Time Conversion Constants
// Description: Epoch reference, unit scale factors and layout constants shared
//              by the conversion functions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial format constants
// - 2026-10-19 v0.2.0: Epoch and millisecond scale constants

package timex

import "time"

// Unit scale factors. Millisecond based values are float64 so they combine
// with float64 timestamps without conversions.
const (
	SecondMs     = 1000.0
	SecondNs     = 1e9
	MinuteMs     = 60 * SecondMs
	FiveMinuteMs = 5 * MinuteMs
	HourMs       = 60 * MinuteMs
	DayMs        = 24 * HourMs

	DayHours    = 24.0
	HourAsDay   = 1 / DayHours
	DayMinutes  = 24 * 60.0
	MinuteAsDay = 1 / DayMinutes
	DaySeconds  = 24 * 3600.0
	SecondAsDay = 1 / DaySeconds
)

// Range of epoch milliseconds covering years 1 through 9999
const (
	MinUTCMs = -62135596800000.0
	MaxUTCMs = 253402300799999.0
)

// Layouts
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"
	ISO8601Micro    = "2006-01-02T15:04:05.000000"

	// DefaultCustomFormat is the strftime pattern used when none is given
	DefaultCustomFormat = "%Y-%m-%d %H:%M:%S"
)

// Epoch is 1970-01-01T00:00:00Z.
var Epoch = time.Unix(0, 0).UTC()
