// File: zone.go
// Title: Local Time Zone Resolution
// Description: ZoneResolver implementations for the host zone, a named IANA
//              zone and a fixed location. Named zones are loaded once and
//              shared through a process-wide cache.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Location cache for timezone conversions
// - 2026-10-19 v0.2.0: ZoneResolver interface with system, named and fixed resolvers
// - 2026-10-19 v0.2.1: Absolute zone file paths in TZ

package timex

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"
)

// ZoneResolver reports the zone that "local" refers to.
type ZoneResolver interface {
	Local() (*time.Location, error)
}

var (
	locationCache = make(map[string]*time.Location)
	cacheMutex    sync.RWMutex
)

// getCachedLocation returns a cached location or loads and caches it.
func getCachedLocation(name string) (*time.Location, error) {
	cacheMutex.RLock()
	if loc, exists := locationCache[name]; exists {
		cacheMutex.RUnlock()
		return loc, nil
	}
	cacheMutex.RUnlock()

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}

	cacheMutex.Lock()
	if cached, exists := locationCache[name]; exists {
		loc = cached
	} else {
		locationCache[name] = loc
	}
	cacheMutex.Unlock()

	return loc, nil
}

// LoadZone resolves an IANA zone name through the shared cache.
func LoadZone(name string) (*time.Location, error) {
	loc, err := getCachedLocation(name)
	if err != nil {
		return nil, newZoneResolutionError(name, err)
	}
	return loc, nil
}

// SystemZoneResolver resolves the host zone. TZ may hold an IANA name or an
// absolute path to a zone file, optionally prefixed with ':'. A value that
// cannot be loaded is reported as an error instead of the silent UTC fallback
// the runtime applies.
type SystemZoneResolver struct{}

var (
	systemZoneOnce sync.Once
	systemZone     *time.Location
	systemZoneErr  error
)

// Local implements ZoneResolver. The result is computed once per process.
func (SystemZoneResolver) Local() (*time.Location, error) {
	systemZoneOnce.Do(func() {
		systemZone, systemZoneErr = resolveSystemZone()
	})
	return systemZone, systemZoneErr
}

func resolveSystemZone() (*time.Location, error) {
	tz, ok := os.LookupEnv("TZ")
	if !ok || tz == "" {
		return time.Local, nil
	}
	name := strings.TrimPrefix(tz, ":")
	if strings.HasPrefix(name, "/") {
		if _, err := loadZoneFile(name); err != nil {
			return nil, newZoneResolutionError(name, err)
		}
		return time.Local, nil
	}
	if _, err := getCachedLocation(name); err != nil {
		return nil, newZoneResolutionError(name, err)
	}
	return time.Local, nil
}

// loadZoneFile reads a TZif file named by an absolute path, the TZ form
// used for /etc/localtime.
func loadZoneFile(path string) (*time.Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return time.LoadLocationFromTZData(path, data)
}

// NamedZoneResolver resolves a fixed IANA zone name such as
// "Europe/Berlin". An empty name means UTC.
type NamedZoneResolver struct {
	Name string
}

// Local implements ZoneResolver.
func (r NamedZoneResolver) Local() (*time.Location, error) {
	return LoadZone(r.Name)
}

// FixedZoneResolver always returns Location.
type FixedZoneResolver struct {
	Location *time.Location
}

// Local implements ZoneResolver.
func (r FixedZoneResolver) Local() (*time.Location, error) {
	if r.Location == nil {
		return nil, newZoneResolutionError("", errors.New("no location configured"))
	}
	return r.Location, nil
}
