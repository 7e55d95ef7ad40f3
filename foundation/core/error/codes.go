// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across timeconv for consistent
//              classification of conversion, parsing and configuration errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Replaced platform codes with time conversion codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Time conversion
	CodeInvalidFormat     Code = "INVALID_FORMAT"
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	CodeZoneResolution    Code = "ZONE_RESOLUTION"
	CodeDeprecatedAPI     Code = "DEPRECATED_API"
	CodeValueOutOfRange   Code = "VALUE_OUT_OF_RANGE"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidFormat, CodeUnsupportedFormat, CodeZoneResolution, CodeDeprecatedAPI, CodeValueOutOfRange,
		CodeConfigError, CodeInvalidConfig, CodeEnvironmentError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidFormat, CodeUnsupportedFormat, CodeValueOutOfRange, CodeInvalidInput:
		return "input"
	case CodeZoneResolution, CodeEnvironmentError:
		return "environment"
	case CodeDeprecatedAPI:
		return "api"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status following sysexits.h
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeUnsupportedFormat, CodeValueOutOfRange:
		return 65 // EX_DATAERR
	case CodeNotFound:
		return 66 // EX_NOINPUT
	case CodeZoneResolution, CodeEnvironmentError:
		return 69 // EX_UNAVAILABLE
	case CodeDeprecatedAPI:
		return 64 // EX_USAGE
	case CodeConfigError, CodeInvalidConfig:
		return 78 // EX_CONFIG
	default:
		return 1
	}
}
