// File: doc.go
// Title: Config Package Documentation
// Description: Package documentation for configuration loading.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial documentation

// Package config loads TOML and YAML configuration files into a flat
// key-value view with dot-notation access, environment variable
// overrides, and typed getters with defaults. The file format is
// detected from the extension and can be forced via LoadOptions.
package config
