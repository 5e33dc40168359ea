// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing, and
//              accessing engine settings from TOML and YAML files with
//              environment variable overrides and defaults.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	wlerror "github.com/msto63/wordlang/core/error"
	wlstringx "github.com/msto63/wordlang/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values for missing keys
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if wlstringx.IsBlank(filePath) {
		return nil, wlerror.New("config file path cannot be empty").
			WithCode(wlerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, wlerror.Newf("config file not found: %s", filePath).
			WithCode(wlerror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, wlerror.Wrap(err, "reading config file").
			WithCode(wlerror.CodeConfigError).
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, wlerror.Wrap(err, "parsing config file").
			WithCode(wlerror.CodeInvalidConfig).
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString parses configuration from an in-memory string
func LoadFromString(content string, format Format) (*Config, error) {
	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, wlerror.Wrap(err, "parsing config content").
			WithCode(wlerror.CodeInvalidConfig).
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format}, nil
}

// NewDefault returns an empty configuration that answers every lookup with
// the caller-provided default.
func NewDefault() *Config {
	return &Config{data: make(map[string]interface{}), format: FormatTOML}
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses raw bytes into a nested map
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return data, nil
}

// mergeDefaults fills missing top-level keys from the defaults map
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	if data == nil {
		data = make(map[string]interface{})
	}
	for key, value := range defaults {
		if _, exists := data[key]; !exists {
			data[key] = value
		}
	}
	return data
}

// GetString retrieves a string value using dot notation (e.g. "log.level")
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env := c.getEnvValue(key); env != "" {
		return env
	}

	if value := c.getValue(key); value != nil {
		if s, ok := value.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", value)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt retrieves an integer value using dot notation
func (c *Config) GetInt(key string, defaultValue ...int) int {
	fallback := 0
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		if n, err := strconv.Atoi(env); err == nil {
			return n
		}
		return fallback
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return fallback
}

// GetBool retrieves a boolean value using dot notation
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	fallback := false
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		if b, err := strconv.ParseBool(env); err == nil {
			return b
		}
		return fallback
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	return fallback
}

// Has reports whether a key is present in the configuration file
func (c *Config) Has(key string) bool {
	return c.getValue(key) != nil
}

// Set stores a value under a dot-notation key, creating intermediate maps
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parts := strings.Split(key, ".")
	current := c.data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format of the loaded configuration
func (c *Config) Format() Format {
	return c.format
}

// getValue resolves a dot-notation key against the nested data map
func (c *Config) getValue(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := strings.Split(key, ".")
	var current interface{} = c.data

	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current, ok = m[part]
		if !ok {
			return nil
		}
	}

	return current
}

// getEnvValue looks up the environment override for a key. The key
// "log.level" with prefix "WORDLANG" maps to WORDLANG_LOG_LEVEL.
func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}

	envKey := c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.Getenv(envKey)
}
