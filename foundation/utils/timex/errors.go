// File: errors.go
// Title: Conversion Errors
// Description: Typed errors returned by the conversion functions. Each one
//              unwraps to a structured *mdwerror.Error so callers can either
//              match the type with errors.As or classify by code.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import (
	"fmt"

	mdwerror "github.com/msto63/timeconv/foundation/core/error"
)

// DeprecatedAPIError is returned by removed functions and names the function
// that replaces them.
type DeprecatedAPIError struct {
	Function    string
	Replacement string
	err         *mdwerror.Error
}

func newDeprecatedAPIError(function, replacement string) *DeprecatedAPIError {
	return &DeprecatedAPIError{
		Function:    function,
		Replacement: replacement,
		err: mdwerror.Newf("%s is deprecated: use %s instead", function, replacement).
			WithCode(mdwerror.CodeDeprecatedAPI).
			WithOperation("timex." + function).
			WithDetail("replacement", replacement),
	}
}

func (e *DeprecatedAPIError) Error() string { return e.err.Error() }
func (e *DeprecatedAPIError) Unwrap() error { return e.err }

// ParseError is returned when a string matches none of the accepted
// date/time layouts.
type ParseError struct {
	Input string
	err   *mdwerror.Error
}

func newParseError(operation, input string) *ParseError {
	return &ParseError{
		Input: input,
		err: mdwerror.Newf("cannot parse %q as an ISO-8601 date/time", input).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("timex." + operation).
			WithDetail("input", input),
	}
}

func (e *ParseError) Error() string { return e.err.Error() }
func (e *ParseError) Unwrap() error { return e.err }

// FormatError is returned when a strftime pattern contains a directive the
// formatter cannot render.
type FormatError struct {
	Format    string
	Directive string
	err       *mdwerror.Error
}

func newFormatError(format, directive, reason string) *FormatError {
	return &FormatError{
		Format:    format,
		Directive: directive,
		err: mdwerror.New(fmt.Sprintf("unsupported directive %q in format %q: %s", directive, format, reason)).
			WithCode(mdwerror.CodeUnsupportedFormat).
			WithOperation("timex.FormatDatetimeToCustomString").
			WithDetail("format", format).
			WithDetail("directive", directive),
	}
}

func (e *FormatError) Error() string { return e.err.Error() }
func (e *FormatError) Unwrap() error { return e.err }

// ZoneResolutionError is returned when the local time zone cannot be
// determined.
type ZoneResolutionError struct {
	Zone string
	err  *mdwerror.Error
}

func newZoneResolutionError(zone string, cause error) *ZoneResolutionError {
	base := mdwerror.Newf("cannot resolve time zone %q", zone).
		WithCode(mdwerror.CodeZoneResolution).
		WithOperation("timex.ZoneResolver.Local").
		WithDetail("zone", zone)
	if cause != nil {
		base = base.WithCause(cause)
	}
	return &ZoneResolutionError{Zone: zone, err: base}
}

func (e *ZoneResolutionError) Error() string { return e.err.Error() }
func (e *ZoneResolutionError) Unwrap() error { return e.err }
