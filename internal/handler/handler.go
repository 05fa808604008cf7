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
	"fmt"
	"io"
	"strings"

	scrapeerrors "github.com/sirseerhq/sample-scraper/internal/errors"
	"github.com/sirseerhq/sample-scraper/internal/output"
	"github.com/sirseerhq/sample-scraper/internal/record"
)

// Handler receives each non-blank line of a record stream.
type Handler interface {
	// HandleValidRecord is called for lines that satisfy the record contract.
	// An error aborts the run.
	HandleValidRecord(rec record.Record) error

	// HandleInvalidRecord is called for JSON lines that break the contract.
	HandleInvalidRecord(line []byte, err error)

	// HandleInvalidJSON is called for lines that are not JSON.
	HandleInvalidJSON(line []byte)
}

// Reporter writes human-readable reports about invalid lines. Handlers embed
// it to share the reporting format.
type Reporter struct {
	Diagnostics io.Writer
}

// HandleInvalidRecord prints the offending line and the reason it was rejected.
func (r Reporter) HandleInvalidRecord(line []byte, err error) {
	reason := strings.TrimPrefix(err.Error(), scrapeerrors.ErrInvalidRecord.Error()+": ")
	fmt.Fprintf(r.Diagnostics, "\nThe following record is invalid:\n%s\n * %s\n\n", line, reason)
}

// HandleInvalidJSON prints the offending line.
func (r Reporter) HandleInvalidJSON(line []byte) {
	fmt.Fprintf(r.Diagnostics, "\nThe following line was not valid JSON:\n%s\n", line)
}

// ValidationHandler counts valid records and writes a progress dot for each.
type ValidationHandler struct {
	Reporter
	progress io.Writer
	count    int
}

// NewValidationHandler returns a ValidationHandler writing progress dots and
// reports to diagnostics.
func NewValidationHandler(diagnostics io.Writer) *ValidationHandler {
	return &ValidationHandler{
		Reporter: Reporter{Diagnostics: diagnostics},
		progress: diagnostics,
	}
}

// HandleValidRecord counts rec.
func (h *ValidationHandler) HandleValidRecord(rec record.Record) error {
	h.count++
	fmt.Fprint(h.progress, ".")
	return nil
}

// Count returns the number of valid records seen.
func (h *ValidationHandler) Count() int {
	return h.count
}

// DumpHandler writes every valid record to an OutputWriter.
type DumpHandler struct {
	Reporter
	out output.OutputWriter
}

// NewDumpHandler returns a DumpHandler writing records to out and reports to
// diagnostics.
func NewDumpHandler(out output.OutputWriter, diagnostics io.Writer) *DumpHandler {
	return &DumpHandler{
		Reporter: Reporter{Diagnostics: diagnostics},
		out:      out,
	}
}

// HandleValidRecord writes rec as one NDJSON line.
func (h *DumpHandler) HandleValidRecord(rec record.Record) error {
	return h.out.Write(rec)
}
