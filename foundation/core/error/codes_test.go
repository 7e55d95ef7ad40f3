// File: codes_test.go
// Title: Error Code and Severity Tests
// Description: Tests for code classification, exit codes and severity mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Time conversion codes, merged severity tests

package error

import "testing"

var allCodes = []Code{
	CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
	CodeInvalidFormat, CodeUnsupportedFormat, CodeZoneResolution, CodeDeprecatedAPI, CodeValueOutOfRange,
	CodeConfigError, CodeInvalidConfig, CodeEnvironmentError,
}

func TestCodeIsValid(t *testing.T) {
	for _, code := range allCodes {
		if !code.IsValid() {
			t.Errorf("%s.IsValid() = false", code)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestCodeCategory(t *testing.T) {
	testCases := []struct {
		code     Code
		expected string
	}{
		{CodeInvalidFormat, "input"},
		{CodeUnsupportedFormat, "input"},
		{CodeZoneResolution, "environment"},
		{CodeDeprecatedAPI, "api"},
		{CodeInvalidConfig, "configuration"},
		{CodeUnknown, "generic"},
	}

	for _, tc := range testCases {
		t.Run(tc.code.String(), func(t *testing.T) {
			if got := tc.code.Category(); got != tc.expected {
				t.Errorf("Category() = %s, want %s", got, tc.expected)
			}
		})
	}
}

func TestCodeExitCode(t *testing.T) {
	testCases := []struct {
		code     Code
		expected int
	}{
		{CodeInvalidFormat, 65},
		{CodeNotFound, 66},
		{CodeZoneResolution, 69},
		{CodeDeprecatedAPI, 64},
		{CodeConfigError, 78},
		{CodeUnknown, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.code.String(), func(t *testing.T) {
			if got := tc.code.ExitCode(); got != tc.expected {
				t.Errorf("ExitCode() = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	testCases := []struct {
		severity Severity
		expected string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tc := range testCases {
		if got := tc.severity.String(); got != tc.expected {
			t.Errorf("Severity(%d).String() = %s, want %s", tc.severity, got, tc.expected)
		}
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	testCases := []struct {
		code     Code
		expected Severity
	}{
		{CodeEnvironmentError, SeverityCritical},
		{CodeZoneResolution, SeverityHigh},
		{CodeDeprecatedAPI, SeverityMedium},
		{CodeInvalidFormat, SeverityLow},
		{CodeUnsupportedFormat, SeverityLow},
		{Code("OTHER"), SeverityMedium},
	}

	for _, tc := range testCases {
		t.Run(tc.code.String(), func(t *testing.T) {
			if got := GetSeverityFromCode(tc.code); got != tc.expected {
				t.Errorf("GetSeverityFromCode(%s) = %v, want %v", tc.code, got, tc.expected)
			}
			if tc.expected.ShouldAlert() != (tc.expected >= SeverityHigh) {
				t.Errorf("ShouldAlert() inconsistent for %v", tc.expected)
			}
		})
	}
}
