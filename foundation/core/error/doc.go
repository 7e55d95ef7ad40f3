// Package error provides structured error handling for timeconv.
//
// Package: error
// Title: timeconv Error Handling
// Description: Structured errors with codes, severities, operation names,
//              details and stack traces. The timex package builds its typed
//              errors (ParseError, FormatError, ...) on top of *Error, and the
//              logger and CLI read code and severity back through HasCode,
//              GetCode and GetSeverity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Trimmed to the time conversion domain
//
// Usage:
//
//	import mdwerror "github.com/msto63/timeconv/foundation/core/error"
//
//	err := mdwerror.New("unknown time zone").
//		WithCode(mdwerror.CodeZoneResolution).
//		WithOperation("timex.NamedZoneResolver.Local").
//		WithDetail("zone", name)
//
//	if mdwerror.HasCode(err, mdwerror.CodeZoneResolution) {
//		// fall back to UTC
//	}
package error
