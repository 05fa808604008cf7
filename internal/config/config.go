// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for sample-scraper with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags (applied by the CLI)
//  2. Environment variables
//  3. Local override file (<name>.local.yaml next to the config file)
//  4. Configuration file
//  5. Built-in defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	scrapeerrors "github.com/sirseerhq/sample-scraper/internal/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadConfig.
const (
	EnvLogEnabled = "SAMPLE_SCRAPER_LOG_ENABLED"
	EnvLogLevel   = "SAMPLE_SCRAPER_LOG_LEVEL"
	EnvLogFormat  = "SAMPLE_SCRAPER_LOG_FORMAT"
	EnvLogFile    = "SAMPLE_SCRAPER_LOG_FILE"
	EnvOutput     = "SAMPLE_SCRAPER_OUTPUT"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"text", "json"}
	stdoutPaths  = []string{"-", "/dev/stdout", "/dev/fd/1", "/proc/self/fd/1"}
)

// DefaultPaths lists the locations searched when no config path is given.
func DefaultPaths() []string {
	return []string{
		".sample-scraper.yaml",
		".sample-scraper.yml",
		filepath.Join(os.Getenv("HOME"), ".sample-scraper", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".sample-scraper", "config.yml"),
	}
}

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, that file must
// exist. Otherwise the first file found in DefaultPaths is used, and defaults
// apply when none exists.
//
// All load failures wrap ErrInvalidConfig.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	path := configPath
	if path == "" {
		for _, candidate := range DefaultPaths() {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path != "" {
		if err := mergeFile(cfg, path, true); err != nil {
			return nil, err
		}
		if err := mergeFile(cfg, LocalPath(path), false); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Output.File = expandPath(cfg.Output.File)

	return cfg, nil
}

// LocalPath returns the override file for path: config.yaml -> config.local.yaml.
func LocalPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".local" + ext
}

// mergeFile overlays the settings found in path onto cfg. Only values set in
// the file replace what cfg already holds.
func mergeFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: failed to read config file %s: %v", scrapeerrors.ErrInvalidConfig, path, err)
	}

	var fileCfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fileCfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: failed to parse config file %s: %v", scrapeerrors.ErrInvalidConfig, path, err)
	}

	if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
		return fmt.Errorf("%w: failed to merge config file %s: %v", scrapeerrors.ErrInvalidConfig, path, err)
	}
	// mergo counts false as empty and would keep the previous value.
	if fileCfg.Log.Enabled != nil {
		cfg.Log.Enabled = Bool(*fileCfg.Log.Enabled)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if enabled := os.Getenv(EnvLogEnabled); enabled != "" {
		cfg.Log.Enabled = Bool(parseBool(enabled))
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		cfg.Log.Format = format
	}
	if file := os.Getenv(EnvLogFile); file != "" {
		cfg.Log.File = file
	}
	if file := os.Getenv(EnvOutput); file != "" {
		cfg.Output.File = file
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// Validate checks that the configuration can be used. Level and format are
// matched case-insensitively. The log sink may never point at standard output
// or at the data file, since either would interleave diagnostics with records.
func (c *Config) Validate() error {
	if !contains(validLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log level %q must be one of %s",
			scrapeerrors.ErrInvalidConfig, c.Log.Level, strings.Join(validLevels, ", "))
	}
	if !contains(validFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("%w: log format %q must be one of %s",
			scrapeerrors.ErrInvalidConfig, c.Log.Format, strings.Join(validFormats, ", "))
	}
	if IsStdout(c.Log.File) {
		return fmt.Errorf("%w: log file %q would write diagnostics into the data stream",
			scrapeerrors.ErrInvalidConfig, c.Log.File)
	}
	if c.Log.File != "" && c.Output.File != "" && filepath.Clean(c.Log.File) == filepath.Clean(c.Output.File) {
		return fmt.Errorf("%w: log file and output file are both %q",
			scrapeerrors.ErrInvalidConfig, c.Log.File)
	}
	if c.Output.File == "-" {
		c.Output.File = ""
	}
	return nil
}

// IsStdout reports whether path names the process's standard output.
func IsStdout(path string) bool {
	return contains(stdoutPaths, path)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
