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
	"github.com/sirseerhq/sample-scraper/internal/emitter"
	"github.com/spf13/cobra"
)

// runEmit writes the record stream.
func runEmit(cmd *cobra.Command, opts *globalOptions) error {
	cfg, logger, cleanup, err := opts.setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	writer, err := openDataWriter(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	e := emitter.New(writer, emitter.WithLogger(logger))
	if err := e.Run(cmd.Context()); err != nil {
		writer.Close()
		return err
	}

	return writer.Close()
}
