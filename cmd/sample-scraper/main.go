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
	"errors"
	"fmt"
	"os"

	scrapeerrors "github.com/sirseerhq/sample-scraper/internal/errors"
	"github.com/sirseerhq/sample-scraper/internal/output"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := newRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// newRootCommand builds the command tree. The root command itself emits the
// record stream.
func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "sample-scraper",
		Short: "Emit sample scraper records as newline-delimited JSON",
		Long: `sample-scraper is an example scraper template. It synthesizes twenty
records and writes them to standard output, one JSON object per line:

  {"number":0,"message":"Hello 0","sample_date":"...","source_url":"http://somewhere.com/0"}

Diagnostics go to standard error (or --log-file) and never to the data stream.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, opts)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}} (record schema v%d)\n", output.SchemaVersion))
	opts.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newValidateCommand(opts))
	rootCmd.AddCommand(newDumpCommand(opts))

	return rootCmd
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch {
	case errors.Is(err, scrapeerrors.ErrInvalidConfig):
		return 2 // Configuration errors
	case errors.Is(err, scrapeerrors.ErrOutputWrite):
		return 3 // Data stream could not be written
	case errors.Is(err, scrapeerrors.ErrValidationFailed):
		return 4 // Stream broke the record contract
	}

	return 1 // General error
}
