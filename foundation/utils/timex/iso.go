// File: iso.go
// Title: ISO-8601 Formatting and Parsing
// Description: Renders datetimes in ISO-8601 extended form and parses the
//              common ISO-8601 variants by trying a list of layouts.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Multi-layout Parse
// - 2026-10-19 v0.2.0: ISO-8601 only layouts, ParseError
// - 2026-10-19 v0.2.1: Reduced precision dates, basic times and spaced offsets

package timex

import (
	"strings"
	"time"
)

// isoLayouts are tried in order. Fractional seconds after the seconds field
// are accepted by time.Parse without being spelled out in the layout.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04:05 Z07:00",
	"2006-01-02T15:04:05 Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04 Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T150405Z0700",
	"2006-01-02T150405",
	"2006-01-02T1504Z0700",
	"2006-01-02T1504",
	"2006-01-02T15",
	"2006-01-02",
	"2006-002",
	"2006-01",
	"2006",
	"20060102T150405Z0700",
	"20060102T150405Z07",
	"20060102T150405",
	"20060102T1504Z0700",
	"20060102T1504Z07",
	"20060102T1504",
	"20060102",
}

// UTCDatetimeToISOString renders the calendar fields of t as
// "YYYY-MM-DDTHH:MM:SS", followed by ".ffffff" when the microsecond part is
// non-zero. No offset is printed.
func UTCDatetimeToISOString(t time.Time) string {
	if t.Nanosecond()/1000 != 0 {
		return t.Format(ISO8601Micro)
	}
	return t.Format(ISO8601DateTime)
}

// ISOStringToUTCDatetime parses an ISO-8601 date or date-time. Year-only and
// year-month input yields the first day of that period. Input without
// an offset yields a naive datetime; an explicit offset is kept on the
// result.
func ISOStringToUTCDatetime(s string) (time.Time, error) {
	value := normalizeISO(s)
	if value == "" {
		return time.Time{}, newParseError("ISOStringToUTCDatetime", s)
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, newParseError("ISOStringToUTCDatetime", s)
}

// normalizeISO trims the input and folds the alternative separators and the
// lower-case zulu designator onto the forms the layouts expect.
func normalizeISO(s string) string {
	value := strings.TrimSpace(s)
	if len(value) > 10 && (value[10] == ' ' || value[10] == 't') && value[4] == '-' {
		value = value[:10] + "T" + value[11:]
	}
	if strings.HasSuffix(value, "z") {
		value = value[:len(value)-1] + "Z"
	}
	return value
}
