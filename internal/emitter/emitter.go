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

// Package emitter produces the sample scraper's data stream: twenty records,
// numbered 0 through 19, written in order as NDJSON.
//
// The Emitter writes each record as soon as it is built and keeps none of them.
// Before the first record it optionally logs a single "Starting run..."
// diagnostic to its logger, which is always a different sink than the data
// stream.
package emitter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sirseerhq/sample-scraper/internal/logging"
	"github.com/sirseerhq/sample-scraper/internal/output"
	"github.com/sirseerhq/sample-scraper/internal/record"
)

// RecordCount is the number of records every run emits.
const RecordCount = 20

// StartMessage is the diagnostic logged once before the first record.
const StartMessage = "Starting run..."

// Emitter writes the fixed record sequence to an OutputWriter.
type Emitter struct {
	out     output.OutputWriter
	logger  *slog.Logger
	now     func() time.Time
	emitted int
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithLogger sets the diagnostic logger. Pass nil or a discarding logger to
// suppress the start-of-run message.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Emitter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock replaces time.Now as the source of sample_date values.
func WithClock(now func() time.Time) Option {
	return func(e *Emitter) {
		if now != nil {
			e.now = now
		}
	}
}

// New returns an Emitter writing to out. Without options it logs nothing and
// stamps records with time.Now.
func New(out output.OutputWriter, opts ...Option) *Emitter {
	e := &Emitter{
		out:    out,
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run emits RecordCount records in ascending order. It stops at the first write
// error and returns it; records already written stay written. ctx is checked
// before each record.
//
// sample_date never decreases within a run: if the local wall clock reads
// earlier than the previous record, whether the clock stepped backwards or a
// DST transition turned it back, the previous timestamp is reused.
func (e *Emitter) Run(ctx context.Context) error {
	e.logger.InfoContext(ctx, StartMessage)

	var last record.Timestamp
	for n := 0; n < RecordCount; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		at := record.NewTimestamp(e.now())
		if n > 0 && at.Before(last) {
			at = last
		}
		last = at

		if err := e.out.Write(record.New(n, at.Time())); err != nil {
			return fmt.Errorf("emitting record %d: %w", n, err)
		}
		e.emitted++
	}
	return nil
}

// Emitted returns the number of records successfully written so far.
func (e *Emitter) Emitted() int {
	return e.emitted
}
