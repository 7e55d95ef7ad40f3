// File: converter_test.go
// Title: Converter and Property Tests
// Description: Tests for the injectable clock and zone resolver and for the
//              round-trip properties of the conversions.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/timeconv/foundation/core/error"
	mdwlog "github.com/msto63/timeconv/foundation/core/log"
)

var (
	fixedInstant = time.Date(2023, 12, 25, 15, 30, 0, 123456789, time.UTC)
	plusTwo      = time.FixedZone("UTC+2", 2*3600)
)

func newFixedConverter(loc *time.Location) *Converter {
	return New(
		WithClock(FixedClock(fixedInstant)),
		WithZoneResolver(FixedZoneResolver{Location: loc}),
	)
}

func TestConverterNow(t *testing.T) {
	conv := newFixedConverter(time.UTC)

	assert.InDelta(t, 1703518200.123456789, conv.UTCNowTimestamp(), 1e-6)
	assert.InDelta(t, 1703518200123.456789, conv.UTCNowMs(), 1e-3)
	assert.InDelta(t, 1703518200123456789.0, conv.UTCNowNs(), 1e3)
	assert.True(t, conv.UTCNow().Equal(fixedInstant))
}

func TestConverterDefaults(t *testing.T) {
	conv := New(WithClock(nil), WithZoneResolver(nil), WithLogger(nil))
	require.NotNil(t, conv)
	assert.IsType(t, SystemClock{}, conv.clock)
	assert.IsType(t, SystemZoneResolver{}, conv.zones)
	assert.Same(t, defaultConverter, Default())

	before := UTCDatetimeToUTCMs(time.Now())
	now := UTCNowMs()
	assert.GreaterOrEqual(t, now, before)
}

func TestUTCMsToLocalDatetime(t *testing.T) {
	conv := newFixedConverter(plusTwo)

	got, err := conv.UTCMsToLocalDatetime(christmasMs)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 25, 17, 30, 0, 0, time.UTC), got)
}

func TestZoneConversions(t *testing.T) {
	newYork, err := LoadZone("America/New_York")
	require.NoError(t, err)

	testCases := []struct {
		name      string
		loc       *time.Location
		utc       time.Time
		localHour int
	}{
		{"fixed zone", plusTwo, time.Date(2023, 12, 25, 15, 30, 0, 0, time.UTC), 17},
		{"new york winter", newYork, time.Date(2023, 12, 25, 15, 30, 0, 0, time.UTC), 10},
		{"new york summer", newYork, time.Date(2023, 7, 4, 15, 30, 0, 0, time.UTC), 11},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conv := newFixedConverter(tc.loc)

			local, err := conv.UTCToLocal(tc.utc)
			require.NoError(t, err)
			assert.Equal(t, tc.localHour, local.Hour())
			assert.Same(t, tc.loc, local.Location())
			assert.True(t, local.Equal(tc.utc))

			back, err := conv.LocalToUTC(Naive(local))
			require.NoError(t, err)
			assert.True(t, back.Equal(tc.utc), "LocalToUTC(UTCToLocal(x)) = %v, want %v", back, tc.utc)
			assert.Equal(t, time.UTC, back.Location())
		})
	}
}

func TestZoneResolutionErrors(t *testing.T) {
	testCases := []struct {
		name     string
		resolver ZoneResolver
		zone     string
	}{
		{"unknown name", NamedZoneResolver{Name: "Not/AZone"}, "Not/AZone"},
		{"nil location", FixedZoneResolver{}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatText, Output: &buf})
			conv := New(WithZoneResolver(tc.resolver), WithLogger(logger))

			_, err := conv.UTCMsToLocalDatetime(0)
			var zoneErr *ZoneResolutionError
			require.True(t, errors.As(err, &zoneErr), "expected *ZoneResolutionError, got %v", err)
			assert.Equal(t, tc.zone, zoneErr.Zone)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeZoneResolution))
			assert.Contains(t, buf.String(), "local zone resolution failed")

			_, err = conv.UTCToLocal(fixedInstant)
			assert.Error(t, err)
			_, err = conv.LocalToUTC(fixedInstant)
			assert.Error(t, err)
		})
	}
}

func TestResolveSystemZone(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv("TZ", "")
		loc, err := resolveSystemZone()
		require.NoError(t, err)
		assert.Same(t, time.Local, loc)
	})

	t.Run("unknown zone", func(t *testing.T) {
		t.Setenv("TZ", ":Not/AZone")
		_, err := resolveSystemZone()
		var zoneErr *ZoneResolutionError
		require.True(t, errors.As(err, &zoneErr))
		assert.Equal(t, "Not/AZone", zoneErr.Zone)
	})

	dir := t.TempDir()
	zoneFile := filepath.Join(dir, "CET")
	require.NoError(t, os.WriteFile(zoneFile, fixedOffsetTZif(3600, "CET"), 0o600))
	garbage := filepath.Join(dir, "garbage")
	require.NoError(t, os.WriteFile(garbage, []byte("not a zone file"), 0o600))
	missing := filepath.Join(dir, "missing")

	pathCases := []struct {
		name    string
		tz      string
		zone    string
		wantErr bool
	}{
		{"absolute path", zoneFile, zoneFile, false},
		{"colon absolute path", ":" + zoneFile, zoneFile, false},
		{"missing file", missing, missing, true},
		{"colon missing file", ":" + missing, missing, true},
		{"invalid file", garbage, garbage, true},
	}

	for _, tc := range pathCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TZ", tc.tz)
			loc, err := resolveSystemZone()
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Same(t, time.Local, loc)
				return
			}
			var zoneErr *ZoneResolutionError
			require.True(t, errors.As(err, &zoneErr), "expected *ZoneResolutionError, got %v", err)
			assert.Equal(t, tc.zone, zoneErr.Zone)
		})
	}
}

func TestLoadZoneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CET")
	require.NoError(t, os.WriteFile(path, fixedOffsetTZif(3600, "CET"), 0o600))

	loc, err := loadZoneFile(path)
	require.NoError(t, err)
	name, offset := fixedInstant.In(loc).Zone()
	assert.Equal(t, "CET", name)
	assert.Equal(t, 3600, offset)
}

// fixedOffsetTZif builds a version 1 TZif file with a single zone and no
// transitions.
func fixedOffsetTZif(offset int32, abbrev string) []byte {
	var buf bytes.Buffer
	buf.WriteString("TZif")
	buf.Write(make([]byte, 16))
	chars := uint32(len(abbrev) + 1)
	for _, n := range []uint32{0, 0, 0, 0, 1, chars} {
		_ = binary.Write(&buf, binary.BigEndian, n)
	}
	_ = binary.Write(&buf, binary.BigEndian, offset)
	buf.Write([]byte{0, 0})
	buf.WriteString(abbrev)
	buf.WriteByte(0)
	return buf.Bytes()
}

func TestLoadZoneCaches(t *testing.T) {
	first, err := LoadZone("Europe/Berlin")
	require.NoError(t, err)
	second, err := LoadZone("Europe/Berlin")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

// sampleMs returns whole millisecond instants spread over years 1 to 9999.
func sampleMs(n int) []float64 {
	const (
		minMs = int64(MinUTCMs)
		maxMs = int64(MaxUTCMs)
	)
	rng := rand.New(rand.NewSource(1))
	samples := []float64{0, -1, 1, christmasMs, MinUTCMs, MaxUTCMs}
	for i := 0; i < n; i++ {
		samples = append(samples, float64(minMs+rng.Int63n(maxMs-minMs)))
	}
	return samples
}

func TestPropertyMillisecondRoundTrip(t *testing.T) {
	for _, m := range sampleMs(2000) {
		got := UTCDatetimeToUTCMs(UTCMsToUTCDatetime(m))
		require.Equal(t, m, got, "round trip of %f", m)
	}
}

// fractionalMs returns instants with sub-millisecond parts, including values
// within half a microsecond of a day boundary.
func fractionalMs(n int) []float64 {
	rng := rand.New(rand.NewSource(3))
	samples := []float64{
		86399999.9999, 86399999.9995, 86399999.9994, -0.0001, -0.0005, -0.0006,
		christmasMs - 0.0001, -86400000.0004,
	}
	for i := 0; i < n; i++ {
		day := float64(rng.Int63n(200000)-100000) * DayMs
		samples = append(samples, day-rng.Float64()*0.001, day+rng.Float64()*DayMs)
	}
	return samples
}

func TestPropertyDayTruncation(t *testing.T) {
	for _, m := range append(sampleMs(2000), fractionalMs(1000)...) {
		day := DayDatetimeFromUTCMs(m)
		require.Equal(t, day, DayDatetimeFromDatetime(day), "idempotence at %f", m)
		require.Equal(t, DayUTCMsFromUTCMs(m), int64(UTCDatetimeToUTCMs(day)), "agreement at %f", m)
		require.Equal(t, DayUTCMsFromUTCMs(m), DayUTCMsFromUTCMs(float64(DayUTCMsFromUTCMs(m))))
	}
}

func TestPropertyLocalInverse(t *testing.T) {
	conv := newFixedConverter(plusTwo)
	for _, m := range sampleMs(500) {
		utc := UTCMsToUTCDatetime(m)
		local, err := conv.UTCToLocal(utc)
		require.NoError(t, err)
		back, err := conv.LocalToUTC(Naive(local))
		require.NoError(t, err)
		require.True(t, back.Equal(utc), "inverse at %f", m)

		naiveLocal, err := conv.UTCMsToLocalDatetime(m)
		require.NoError(t, err)
		require.Equal(t, Naive(local), naiveLocal)
	}
}

func TestPropertyISORoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		// Years 1000..9999 keep the four digit year layout.
		ms := float64(-30610224000000 + rng.Int63n(284012438400000))
		in := UTCMsToUTCDatetime(ms)
		parsed, err := ISOStringToUTCDatetime(UTCDatetimeToISOString(in))
		require.NoError(t, err)
		require.True(t, parsed.Equal(in), "iso round trip of %v", in)
	}
}
