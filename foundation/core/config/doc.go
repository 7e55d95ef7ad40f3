// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads the timeconv configuration from TOML or
//              YAML files with defaults, validation and environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed timeconv configuration

/*
Package config provides configuration management for timeconv.

Key Features:
  - TOML and YAML files, format detected from the extension
  - Defaults for every value
  - TIMECONV_<SECTION>_<KEY> environment overrides
  - Validation of the zone, the strftime pattern and the log settings
  - File discovery with a TIMECONV_CONFIG override

Example TOML configuration:

	[time]
	timezone = "Europe/Berlin"
	format = "%d.%m.%Y %H:%M"
	output = "table"

	[log]
	level = "debug"
	format = "logfmt"

The same in YAML:

	time:
	  timezone: Europe/Berlin
	  format: "%d.%m.%Y %H:%M"
	log:
	  level: debug

Loading:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	if err != nil {
		return err
	}
	fmt.Println(cfg.Time.Timezone)

Errors:

A missing file returns NOT_FOUND, an unparsable file INVALID_INPUT and a
file with invalid values INVALID_CONFIG, all as *error.Error values from
foundation/core/error.
*/
package config
