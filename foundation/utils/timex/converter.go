// File: converter.go
// Title: Converter
// Description: Converter bundles the injectable clock and zone resolver used
//              by the "now" and local-zone conversions. The package level
//              functions delegate to a default Converter built from the
//              system clock and the host zone.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import (
	"time"

	mdwlog "github.com/msto63/timeconv/foundation/core/log"
)

// Converter performs conversions that depend on the current time or on the
// local zone. A Converter is immutable after New and safe for concurrent use.
type Converter struct {
	clock  Clock
	zones  ZoneResolver
	logger *mdwlog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithClock sets the time source.
func WithClock(clock Clock) Option {
	return func(c *Converter) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithZoneResolver sets how the local zone is determined.
func WithZoneResolver(zones ZoneResolver) Option {
	return func(c *Converter) {
		if zones != nil {
			c.zones = zones
		}
	}
}

// WithLogger sets the logger that records zone resolution failures.
func WithLogger(logger *mdwlog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Converter. Without options it reads the system clock and
// the host zone.
func New(opts ...Option) *Converter {
	c := &Converter{
		clock:  SystemClock{},
		zones:  SystemZoneResolver{},
		logger: mdwlog.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = New()

// Default returns the Converter used by the package level functions.
func Default() *Converter {
	return defaultConverter
}

// Location returns the resolved local zone.
func (c *Converter) Location() (*time.Location, error) {
	loc, err := c.zones.Local()
	if err != nil {
		c.logger.DebugWithErr("local zone resolution failed", err)
		return nil, err
	}
	return loc, nil
}

// UTCNow returns the current instant in UTC.
func (c *Converter) UTCNow() time.Time {
	return c.clock.Now().UTC()
}

// UTCNowTimestamp returns the current time as seconds since the epoch.
func (c *Converter) UTCNowTimestamp() float64 {
	now := c.clock.Now()
	return float64(now.Unix()) + float64(now.Nanosecond())/SecondNs
}

// UTCNowMs returns the current time as milliseconds since the epoch.
func (c *Converter) UTCNowMs() float64 {
	return UTCDatetimeToUTCMs(c.clock.Now())
}

// UTCNowNs returns the current time as nanoseconds since the epoch.
func (c *Converter) UTCNowNs() float64 {
	now := c.clock.Now()
	return float64(now.Unix())*SecondNs + float64(now.Nanosecond())
}

// UTCMsToLocalDatetime converts epoch milliseconds to the wall-clock fields
// of the local zone. The result is naive: its location is UTC.
func (c *Converter) UTCMsToLocalDatetime(ms float64) (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}
	return Naive(UTCMsToUTCDatetime(ms).In(loc)), nil
}

// UTCToLocal reads the wall-clock fields of t as UTC and returns the same
// instant expressed in the local zone.
func (c *Converter) UTCToLocal(t time.Time) (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}
	return Naive(t).In(loc), nil
}

// LocalToUTC reads the wall-clock fields of t as local time and returns the
// same instant in UTC. Wall times inside a DST gap or overlap resolve the
// way time.Date resolves them.
func (c *Converter) LocalToUTC(t time.Time) (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc).UTC(), nil
}

// Naive keeps the wall-clock fields of t and drops its zone.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// UTCNowTimestamp returns the current time as seconds since the epoch.
func UTCNowTimestamp() float64 { return defaultConverter.UTCNowTimestamp() }

// UTCNowMs returns the current time as milliseconds since the epoch.
func UTCNowMs() float64 { return defaultConverter.UTCNowMs() }

// UTCNowNs returns the current time as nanoseconds since the epoch.
func UTCNowNs() float64 { return defaultConverter.UTCNowNs() }

// UTCMsToLocalDatetime converts epoch milliseconds to naive local wall time
// in the host zone.
func UTCMsToLocalDatetime(ms float64) (time.Time, error) {
	return defaultConverter.UTCMsToLocalDatetime(ms)
}

// UTCToLocal converts naive UTC wall time to the host zone.
func UTCToLocal(t time.Time) (time.Time, error) {
	return defaultConverter.UTCToLocal(t)
}

// LocalToUTC converts naive wall time in the host zone to UTC.
func LocalToUTC(t time.Time) (time.Time, error) {
	return defaultConverter.LocalToUTC(t)
}
