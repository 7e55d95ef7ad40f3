// File: validation.go
// Title: Configuration Validation Implementation
// Description: Checks that the configured zone loads, the strftime pattern
//              is supported and the log settings parse.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-19 v0.2.0: Domain checks for zone, format and logging

package config

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/timeconv/foundation/core/error"
	mdwlog "github.com/msto63/timeconv/foundation/core/log"
	"github.com/msto63/timeconv/foundation/utils/timex"
)

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate validates every configured value
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}

	fail := func(format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	if c.Time.Timezone != "" {
		if _, err := timex.LoadZone(c.Time.Timezone); err != nil {
			fail("time.timezone: unknown zone %q", c.Time.Timezone)
		}
	}
	if err := timex.ValidateFormat(c.Time.Format); err != nil {
		fail("time.format: %v", err)
	}
	switch c.Time.Output {
	case OutputText, OutputTable:
	default:
		fail("time.output: must be %q or %q, got %q", OutputText, OutputTable, c.Time.Output)
	}

	if _, err := mdwlog.ParseLevel(c.Log.Level); err != nil {
		fail("log.level: %v", err)
	}
	if _, err := mdwlog.ParseFormat(c.Log.Format); err != nil {
		fail("log.format: %v", err)
	}

	return result
}

// Err converts a failed result into a structured error
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: " + strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}
