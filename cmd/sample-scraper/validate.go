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

package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	scrapeerrors "github.com/sirseerhq/sample-scraper/internal/errors"
	"github.com/sirseerhq/sample-scraper/internal/handler"
	"github.com/spf13/cobra"
)

func newValidateCommand(opts *globalOptions) *cobra.Command {
	var (
		fromEmitter bool
		noSummary   bool
	)

	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Check an NDJSON stream against the record contract",
		Long: `Check every line of an NDJSON stream against the record contract.

Each line must be a JSON object with exactly the keys number, message,
sample_date and source_url. Reads standard input when no file (or "-") is
given; --run validates a fresh run of the emitter instead.

A dot is printed to stderr for each valid record and every rejected line is
reported there. Exits with code 4 if any line was rejected.

validate writes no records, so --output is rejected and output.file or
SAMPLE_SCRAPER_OUTPUT from the configuration are ignored.`,
		Example: `  sample-scraper | sample-scraper validate
  sample-scraper validate records.ndjson
  sample-scraper validate --run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("output") {
				return fmt.Errorf("%w: validate writes no records and does not accept --output", scrapeerrors.ErrInvalidConfig)
			}

			_, logger, cleanup, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			in, err := openInput(cmd.Context(), cmd, args, fromEmitter, logger)
			if err != nil {
				return err
			}
			defer in.Close()

			h := handler.NewValidationHandler(cmd.ErrOrStderr())
			result, runErr := handler.NewRunner(h, logger).Run(cmd.Context(), in)

			stdout := cmd.OutOrStdout()
			fmt.Fprintln(cmd.ErrOrStderr())
			if runErr != nil {
				fmt.Fprintf(stdout, "Validated %d records before failure!\n", h.Count())
			} else {
				fmt.Fprintf(stdout, "Validated %d records!\n", h.Count())
			}
			if !noSummary {
				renderSummary(stdout, result)
			}

			if runErr != nil {
				return runErr
			}
			return result.Err()
		},
	}

	cmd.Flags().BoolVar(&fromEmitter, "run", false, "Validate a fresh in-process run of the emitter")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "Omit the summary table")

	return cmd
}

// renderSummary prints a table of line counts by outcome.
func renderSummary(w io.Writer, result handler.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Outcome", "Lines"})
	t.AppendRow(table.Row{"valid records", result.Valid})
	t.AppendRow(table.Row{"invalid JSON", result.InvalidJSON})
	t.AppendRow(table.Row{"invalid records", result.InvalidRecords})
	t.AppendFooter(table.Row{"total", result.Valid + result.Invalid()})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
