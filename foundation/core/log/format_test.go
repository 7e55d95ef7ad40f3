// File: format_test.go
// Title: Log Formatter Tests
// Description: Tests for JSON, text, console and logfmt output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Sorted field order, console formatter

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/timeconv/foundation/core/error"
)

func testEntry() *Entry {
	entry := NewEntry(LevelWarn, "conversion failed")
	entry.Timestamp = time.Date(2023, 12, 25, 15, 30, 0, 0, time.UTC)
	entry.Logger = "timeconv"
	entry.CorrelationID = "cid-1"
	entry.Fields["zone"] = "Europe/Berlin"
	entry.Fields["ms"] = 1703518200000
	return entry
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			format, err := ParseFormat(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tc.input, err)
			}
			if format != tc.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tc.input, format, tc.expected)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	entry := testEntry()
	entry.Error = mdwerror.New("bad input").WithCode(mdwerror.CodeInvalidFormat)
	entry.Duration = 1500 * time.Microsecond

	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid JSON %s: %v", out, err)
	}

	expected := map[string]interface{}{
		"timestamp":      "2023-12-25T15:30:00Z",
		"level":          "warn",
		"message":        "conversion failed",
		"logger":         "timeconv",
		"correlation_id": "cid-1",
		"zone":           "Europe/Berlin",
		"error":          "bad input",
		"duration_ms":    1.5,
	}
	for k, want := range expected {
		if decoded[k] != want {
			t.Errorf("%s = %v, want %v", k, decoded[k], want)
		}
	}

	details, ok := decoded["error_details"].(map[string]interface{})
	if !ok || details["code"] != "INVALID_FORMAT" {
		t.Errorf("error_details = %v", decoded["error_details"])
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "15:30:00 [WRN] {timeconv} (cid=cid-1) conversion failed [ms=1703518200000 zone=Europe/Berlin]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatterKeepsContent(t *testing.T) {
	out, err := NewConsoleFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{"WRN", "conversion failed", "zone=Europe/Berlin"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("Format() = %q, missing %q", out, want)
		}
	}
}

func TestLogfmtFormatter(t *testing.T) {
	entry := testEntry()
	entry.Error = errors.New("boom")

	out, err := NewLogfmtFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `timestamp=2023-12-25T15:30:00Z level=warn message="conversion failed" logger=timeconv correlation_id=cid-1 ms=1703518200000 zone="Europe/Berlin" error="boom"` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestGetFormatter(t *testing.T) {
	testCases := []struct {
		format Format
		check  func(Formatter) bool
	}{
		{FormatJSON, func(f Formatter) bool { _, ok := f.(*JSONFormatter); return ok }},
		{FormatText, func(f Formatter) bool { _, ok := f.(*TextFormatter); return ok }},
		{FormatConsole, func(f Formatter) bool { _, ok := f.(*ConsoleFormatter); return ok }},
		{FormatLogfmt, func(f Formatter) bool { _, ok := f.(*LogfmtFormatter); return ok }},
		{Format(99), func(f Formatter) bool { _, ok := f.(*JSONFormatter); return ok }},
	}

	for _, tc := range testCases {
		if !tc.check(GetFormatter(tc.format)) {
			t.Errorf("GetFormatter(%v) returned wrong type", tc.format)
		}
	}
}
