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

// Package logging builds the diagnostic logger. Diagnostics are a side channel:
// they go to standard error or a log file, never to the data stream.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sirseerhq/sample-scraper/internal/config"
	scrapeerrors "github.com/sirseerhq/sample-scraper/internal/errors"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger for cfg writing to stderr, or to cfg.File when set.
// The returned Closer releases the log file and must be closed by the caller.
// A disabled sink yields a logger that drops every record.
func New(cfg config.LogConfig, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	if !cfg.IsEnabled() {
		return Discard(), nopCloser{}, nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      = stderr
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		if config.IsStdout(cfg.File) {
			return nil, nil, fmt.Errorf("%w: log file %q is standard output", scrapeerrors.ErrInvalidConfig, cfg.File)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: failed to open log file: %v", scrapeerrors.ErrInvalidConfig, err)
		}
		w, closer = f, f
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		err := fmt.Errorf("%w: unknown log format %q", scrapeerrors.ErrInvalidConfig, cfg.Format)
		if closeErr := closer.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing log file: %w", closeErr))
		}
		return nil, nil, err
	}

	return slog.New(handler), closer, nil
}

// ParseLevel maps debug, info, warn and error (any case) to a slog level.
// An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: unknown log level %q", scrapeerrors.ErrInvalidConfig, s)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
