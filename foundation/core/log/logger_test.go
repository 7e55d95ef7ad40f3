// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context handling, level
//              filtering, error integration and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-19 v0.2.0: Severity based LogError, timer tests merged

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/timeconv/foundation/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: &buf, Name: "test"}), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, m)
	}
	return entries
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
}

func TestWithMethodsReturnClones(t *testing.T) {
	logger := New()
	derived := logger.WithLevel(LevelDebug).WithField("k", "v").WithCorrelationID("cid")

	if derived == logger {
		t.Error("With* should return a new logger instance")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
	if _, ok := logger.contextFields["k"]; ok {
		t.Error("WithField() should not modify original logger")
	}
	if logger.correlationID != "" {
		t.Error("WithCorrelationID() should not modify original logger")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	logger.Debug("hidden")
	logger.Info("shown")
	logger.Error("also shown")

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["message"] != "shown" || entries[1]["level"] != "error" {
		t.Errorf("unexpected entries: %v", entries)
	}
}

func TestContextFieldsAndCorrelation(t *testing.T) {
	base, buf := newBufferLogger(LevelDebug)
	logger := base.WithFields(Fields{"command": "inspect"}).WithCorrelationID("abc")

	logger.Debug("converted", Float64("ms", 1.5), String("zone", "UTC"))

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["command"] != "inspect" || e["correlation_id"] != "abc" || e["ms"] != 1.5 || e["zone"] != "UTC" {
		t.Errorf("entry = %v", e)
	}
}

func TestLogErrorLevels(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{"low severity", mdwerror.New("bad").WithCode(mdwerror.CodeInvalidFormat), "info", "INVALID_FORMAT"},
		{"medium severity", mdwerror.New("old").WithCode(mdwerror.CodeDeprecatedAPI), "warn", "DEPRECATED_API"},
		{"high severity", mdwerror.New("zone").WithCode(mdwerror.CodeZoneResolution), "error", "ZONE_RESOLUTION"},
		{"plain error", errors.New("plain"), "error", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace)
			logger.LogError(tc.err)

			entries := decodeLines(t, buf)
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			if entries[0]["level"] != tc.wantLevel {
				t.Errorf("level = %v, want %v", entries[0]["level"], tc.wantLevel)
			}
			if entries[0]["error_code"] != tc.wantCode {
				t.Errorf("error_code = %v, want %v", entries[0]["error_code"], tc.wantCode)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() should disable every level")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	timer := logger.StartTimer("inspect").WithField("input", "0")
	if d := timer.Stop(); d < 0 {
		t.Errorf("Stop() = %v", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}

	failed := logger.StartTimer("format")
	failed.StopWithError(errors.New("unsupported directive"))

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["message"] != "inspect completed" || entries[0]["operation"] != "inspect" || entries[0]["input"] != "0" {
		t.Errorf("completion entry = %v", entries[0])
	}
	if entries[1]["message"] != "format failed" || entries[1]["level"] != "error" {
		t.Errorf("failure entry = %v", entries[1])
	}
}

func TestTimerRespectsLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	logger.StartTimer("quiet").Stop()
	if buf.Len() != 0 {
		t.Errorf("debug timer output at info level: %s", buf.String())
	}
}
