// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Locates the timeconv configuration file across the usual
//              directories and falls back to defaults when none exists.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: timeconv search paths and TIMECONV_CONFIG

package config

import (
	"os"
	"path/filepath"
)

// PathEnv names an explicit configuration file
const PathEnv = EnvPrefix + "_CONFIG"

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
}

// DefaultDiscoveryOptions returns the standard search locations
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "timeconv"))
	}
	paths = append(paths, "/etc/timeconv")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"timeconv", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Discover loads the file named by TIMECONV_CONFIG or the first file found
// in the search paths. Without any file the defaults are returned with
// environment overrides applied.
func Discover(options DiscoveryOptions) (*Config, error) {
	if path := os.Getenv(PathEnv); path != "" {
		return Load(path)
	}

	if path, ok := FindConfigFile(options); ok {
		return Load(path)
	}

	return Default().finish()
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	for _, path := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}
