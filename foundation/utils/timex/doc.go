// Package timex implements the date/time conversion helpers of timeconv.
//
// Package: timex
// Title: Time Conversion Utilities
// Description: Stateless conversions between epoch-millisecond timestamps, UTC
//              datetimes, local datetimes, ISO-8601 strings and strftime
//              formatted strings, plus day-boundary calculations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-19 v0.2.0: Reworked around epoch conversions and an injectable Converter
//
// Package Overview:
//
// # Representations
//
// An instant is carried either as a time.Time or as float64 milliseconds
// (or nanoseconds) since the Unix epoch. A naive datetime is a time.Time in
// time.UTC whose calendar fields are the values of interest; functions that
// return wall-clock fields of another zone return naive values.
//
// # Epoch Conversions
//
//   - UTCNowTimestamp, UTCNowMs, UTCNowNs: the current time in seconds,
//     milliseconds and nanoseconds since the epoch
//   - UTCDatetimeToUTCMs: datetime to epoch milliseconds
//   - UTCMsToUTCDatetime: epoch milliseconds to a naive UTC datetime,
//     rounded to microseconds
//   - UTCMsToLocalDatetime: epoch milliseconds to naive local wall time
//
// Millisecond arithmetic is done on whole seconds plus a fraction, so every
// instant between years 1 and 9999 converts without time.Duration overflow.
//
// # Zone Conversions
//
//   - UTCToLocal: naive UTC to the local zone
//   - LocalToUTC: naive local wall time to UTC
//
// The two are inverses outside DST transitions. Wall times that fall into a
// DST gap or overlap resolve the way time.Date resolves them.
//
// # Day Boundaries
//
//   - DayUTCMsFromUTCMs: epoch milliseconds floored to the UTC midnight
//   - DayDatetimeFromDatetime: midnight of the same calendar day
//   - DayDatetimeFromUTCMs: the composition of the two above
//
// # Display and Formatting
//
//   - SecondsToMMSSStr: 125 renders as "2m05s"
//   - UTCDatetimeToISOString: "2023-12-25T15:30:00", with ".ffffff" only
//     when the microseconds are non-zero
//   - ISOStringToUTCDatetime: date-only, date-time with 'T' or space,
//     fractional seconds, Z and numeric offsets, compact basic format
//   - AddDaysToUTCDatetime: adds multiples of 24 hours
//   - FormatDatetimeToCustomString: strftime directives, rendered with
//     github.com/ncruces/go-strftime
//
// # Usage Examples
//
//	ms := timex.UTCDatetimeToUTCMs(time.Date(2023, 12, 25, 15, 30, 0, 0, time.UTC))
//	// ms == 1703518200000
//
//	t := timex.UTCMsToUTCDatetime(ms)
//	fmt.Println(timex.UTCDatetimeToISOString(t)) // 2023-12-25T15:30:00
//
//	s, err := timex.FormatDatetimeToCustomString(t, "%d-%m-%Y %H:%M")
//	// s == "25-12-2023 15:30"
//
// Pinning the clock and the local zone:
//
//	conv := timex.New(
//		timex.WithClock(timex.FixedClock(someInstant)),
//		timex.WithZoneResolver(timex.NamedZoneResolver{Name: "Europe/Berlin"}),
//	)
//	local, err := conv.UTCMsToLocalDatetime(ms)
//
// # Error Handling
//
// Failures are reported as typed errors that unwrap to a structured
// *error.Error from foundation/core/error:
//
//   - *ParseError: input matches no ISO-8601 layout (INVALID_FORMAT)
//   - *FormatError: unsupported strftime directive (UNSUPPORTED_FORMAT)
//   - *ZoneResolutionError: the local zone cannot be loaded (ZONE_RESOLUTION)
//   - *DeprecatedAPIError: a removed function was called (DEPRECATED_API)
//
// UnixTimeMsToDatetime and DatetimeToUnixTimeMs always return a
// *DeprecatedAPIError naming their replacement.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Named zones are loaded once and
// kept in a process-wide cache guarded by a sync.RWMutex.
package timex
