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

// Package config types define the configuration structures used by
// sample-scraper. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
//
// Only the diagnostic log sink and the data destination are configurable. The
// record count and the record templates are fixed.
package config

// Config represents the complete configuration for sample-scraper.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig controls the diagnostic log sink. The sink is a side channel:
// it is never the data stream.
type LogConfig struct {
	// Enabled is a pointer so that an override file can turn the sink off
	// without being mistaken for an unset value.
	Enabled *bool  `yaml:"enabled"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	// File is the log destination. Empty means standard error.
	File string `yaml:"file"`
}

// OutputConfig controls where records are written.
type OutputConfig struct {
	// File is the NDJSON destination. Empty means standard output.
	File string `yaml:"file"`
}

// IsEnabled reports whether the start-of-run diagnostic should be emitted.
// An unset value counts as enabled.
func (l LogConfig) IsEnabled() bool {
	return l.Enabled == nil || *l.Enabled
}

// DefaultConfig returns a Config that reproduces the reference behavior:
// records on stdout, one info-level text diagnostic on stderr.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Enabled: Bool(true),
			Level:   "info",
			Format:  "text",
		},
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
