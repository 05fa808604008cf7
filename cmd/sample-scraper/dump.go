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

	"github.com/sirseerhq/sample-scraper/internal/handler"
	"github.com/spf13/cobra"
)

func newDumpCommand(opts *globalOptions) *cobra.Command {
	var fromEmitter bool

	cmd := &cobra.Command{
		Use:   "dump [file|-]",
		Short: "Re-emit the valid records of an NDJSON stream",
		Long: `Read an NDJSON stream and write every valid record back out in canonical
form: keys in order number, message, sample_date, source_url and sample_date
in local time.

Rejected lines are reported on stderr and dropped from the output. Exits with
code 4 if any line was rejected.`,
		Example: `  sample-scraper dump records.ndjson > clean.ndjson
  sample-scraper dump --run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, cleanup, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := checkDistinctOutput(args, cfg.Output.File); err != nil {
				return err
			}

			in, err := openInput(cmd.Context(), cmd, args, fromEmitter, logger)
			if err != nil {
				return err
			}
			defer in.Close()

			writer, err := openDataWriter(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			h := handler.NewDumpHandler(writer, cmd.ErrOrStderr())
			result, runErr := handler.NewRunner(h, logger).Run(cmd.Context(), in)
			closeErr := writer.Close()

			if runErr == nil {
				runErr = closeErr
			}
			if runErr == nil {
				runErr = result.Err()
			}

			if runErr != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Run failed!")
				return runErr
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Run completed successfully!")
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromEmitter, "run", false, "Dump a fresh in-process run of the emitter")

	return cmd
}
