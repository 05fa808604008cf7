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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sirseerhq/sample-scraper/internal/emitter"
	scrapeerrors "github.com/sirseerhq/sample-scraper/internal/errors"
	"github.com/sirseerhq/sample-scraper/internal/output"
	"github.com/spf13/cobra"
)

// openInput returns the stream a validate or dump run reads from: the file
// named by args[0], stdin for "-" or no argument, or a fresh in-process
// emitter run when fromEmitter is set.
func openInput(ctx context.Context, cmd *cobra.Command, args []string, fromEmitter bool, logger *slog.Logger) (io.ReadCloser, error) {
	if fromEmitter {
		if len(args) > 0 {
			return nil, fmt.Errorf("--run cannot be combined with an input file")
		}
		return emitterStream(ctx, logger), nil
	}

	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// checkDistinctOutput rejects an output file that is also the input file.
// Creating the output truncates it before the first line is read.
func checkDistinctOutput(args []string, outputFile string) error {
	if len(args) == 0 || args[0] == "-" || outputFile == "" {
		return nil
	}
	input := args[0]
	if filepath.Clean(input) == filepath.Clean(outputFile) {
		return fmt.Errorf("%w: output file %q is the input file", scrapeerrors.ErrInvalidConfig, outputFile)
	}
	inInfo, err := os.Stat(input)
	if err != nil {
		return nil
	}
	if outInfo, err := os.Stat(outputFile); err == nil && os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("%w: output file %q is the input file", scrapeerrors.ErrInvalidConfig, outputFile)
	}
	return nil
}

// emitterStream runs the emitter in a goroutine and returns the read side of
// its data stream. Closing the reader early makes the emitter's next write fail,
// which ends the goroutine.
func emitterStream(ctx context.Context, logger *slog.Logger) io.ReadCloser {
	pr, pw := io.Pipe()
	go func() {
		err := emitter.New(output.NewWriter(pw), emitter.WithLogger(logger)).Run(ctx)
		pw.CloseWithError(err)
	}()
	return pr
}
