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

package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	scrapeerrors "github.com/sirseerhq/sample-scraper/internal/errors"
	"github.com/sirseerhq/sample-scraper/internal/logging"
	"github.com/sirseerhq/sample-scraper/internal/output"
	"github.com/sirseerhq/sample-scraper/internal/record"
)

// Result tallies the lines of one stream.
type Result struct {
	Valid          int
	InvalidJSON    int
	InvalidRecords int
}

// Invalid returns the number of rejected lines.
func (r Result) Invalid() int {
	return r.InvalidJSON + r.InvalidRecords
}

// Err returns an error wrapping ErrValidationFailed when any line was rejected.
func (r Result) Err() error {
	if r.Invalid() == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d lines rejected", scrapeerrors.ErrValidationFailed,
		r.Invalid(), r.Invalid()+r.Valid)
}

// Runner feeds an NDJSON stream to a Handler.
type Runner struct {
	handler Handler
	logger  *slog.Logger
}

// NewRunner returns a Runner dispatching to h. A nil logger discards.
func NewRunner(h Handler, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{handler: h, logger: logger}
}

// Run reads in until EOF. Blank lines are skipped. Invalid lines are reported
// to the handler and counted but do not stop the run; a read error, a handler
// error or a cancelled ctx does, and the partial Result is returned with it.
func (r *Runner) Run(ctx context.Context, in io.Reader) (Result, error) {
	var result Result

	reader := output.NewReader(in)
	for reader.Next() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		line := bytes.TrimSpace(reader.Bytes())
		if len(line) == 0 {
			continue
		}

		rec, err := record.Check(line)
		switch {
		case err == nil:
			if err := r.handler.HandleValidRecord(rec); err != nil {
				return result, fmt.Errorf("line %d: %w", reader.Line(), err)
			}
			result.Valid++
		case errors.Is(err, scrapeerrors.ErrInvalidJSON):
			r.logger.DebugContext(ctx, "line is not JSON", "line", reader.Line())
			r.handler.HandleInvalidJSON(line)
			result.InvalidJSON++
		default:
			r.logger.DebugContext(ctx, "record rejected", "line", reader.Line(), "err", err)
			r.handler.HandleInvalidRecord(line, err)
			result.InvalidRecords++
		}
	}

	if err := reader.Err(); err != nil {
		return result, fmt.Errorf("reading line %d: %w", reader.Line()+1, err)
	}
	return result, nil
}
