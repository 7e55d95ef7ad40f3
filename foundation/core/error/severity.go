// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and the logger can
//              decide how loudly a failure should be reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for time conversion codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad caller input, e.g. an unparsable timestamp
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a broken environment, e.g. an unresolvable local zone
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError:
		return SeverityCritical

	case CodeZoneResolution, CodeConfigError, CodeInvalidConfig, CodeInternal:
		return SeverityHigh

	case CodeDeprecatedAPI:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeInvalidFormat, CodeUnsupportedFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
