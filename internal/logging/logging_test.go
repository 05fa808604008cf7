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

package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirseerhq/sample-scraper/internal/config"
	scrapeerrors "github.com/sirseerhq/sample-scraper/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextToStderr(t *testing.T) {
	var stderr bytes.Buffer

	logger, closer, err := New(config.LogConfig{Level: "info", Format: "text"}, &stderr)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("Starting run...")
	logger.Debug("hidden below info")

	out := stderr.String()
	assert.Contains(t, out, `level=INFO`)
	assert.Contains(t, out, `msg="Starting run..."`)
	assert.NotContains(t, out, "hidden below info")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNew_JSON(t *testing.T) {
	var stderr bytes.Buffer

	logger, closer, err := New(config.LogConfig{Level: "debug", Format: "JSON"}, &stderr)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("Starting run...", "records", 20)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(stderr.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "Starting run...", entry["msg"])
	assert.EqualValues(t, 20, entry["records"])
}

func TestNew_Disabled(t *testing.T) {
	var stderr bytes.Buffer

	logger, closer, err := New(config.LogConfig{Enabled: config.Bool(false), Level: "bogus"}, &stderr)
	require.NoError(t, err)
	defer closer.Close()

	logger.Error("should not appear")
	assert.Zero(t, stderr.Len())
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraper.log")
	var stderr bytes.Buffer

	logger, closer, err := New(config.LogConfig{Level: "info", Format: "text", File: path}, &stderr)
	require.NoError(t, err)

	logger.Info("Starting run...")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Starting run...")
	assert.Zero(t, stderr.Len(), "file sink must not also write to stderr")
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
	}{
		{"unknown level", config.LogConfig{Level: "loud"}},
		{"unknown format", config.LogConfig{Level: "info", Format: "xml"}},
		{"unknown format with file sink", config.LogConfig{Level: "info", Format: "xml", File: filepath.Join(t.TempDir(), "x.log")}},
		{"stdout file", config.LogConfig{Level: "info", File: "/dev/stdout"}},
		{"unopenable file", config.LogConfig{Level: "info", File: filepath.Join(t.TempDir(), "missing", "x.log")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := New(tt.cfg, &bytes.Buffer{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, scrapeerrors.ErrInvalidConfig))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
