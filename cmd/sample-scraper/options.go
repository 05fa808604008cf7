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
	"io"
	"log/slog"

	"github.com/sirseerhq/sample-scraper/internal/config"
	"github.com/sirseerhq/sample-scraper/internal/logging"
	"github.com/sirseerhq/sample-scraper/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	quiet      bool
	logLevel   string
	logFormat  string
	logFile    string
	outputFile string
}

func (o *globalOptions) register(flags *pflag.FlagSet) {
	flags.StringVar(&o.configPath, "config", "", "Path to configuration file (default: .sample-scraper.yaml or ~/.sample-scraper/config.yaml)")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "Disable the diagnostic log")
	flags.StringVar(&o.logLevel, "log-level", "", "Diagnostic log level: debug, info, warn or error")
	flags.StringVar(&o.logFormat, "log-format", "", "Diagnostic log format: text or json")
	flags.StringVar(&o.logFile, "log-file", "", "Write diagnostics to this file instead of stderr")
	flags.StringVarP(&o.outputFile, "output", "o", "", "Write records to this file (default: stdout)")
}

// loadConfig resolves the effective configuration: file and environment via
// config.LoadConfig, then any flag the user set explicitly.
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}

	o.applyFlags(cmd.Flags(), cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies every flag the user set explicitly onto cfg, so that an
// unset flag never masks a value from the file or the environment.
func (o *globalOptions) applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("quiet") {
		cfg.Log.Enabled = config.Bool(!o.quiet)
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if flags.Changed("output") {
		cfg.Output.File = o.outputFile
	}
}

// setup loads configuration and builds the diagnostic logger. The returned
// cleanup closes the log file, if any.
func (o *globalOptions) setup(cmd *cobra.Command) (*config.Config, *slog.Logger, func(), error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, closer, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, func() { closer.Close() }, nil
}

// openDataWriter returns the NDJSON destination: cfg.Output.File or stdout.
func openDataWriter(cfg *config.Config, stdout io.Writer) (output.OutputWriter, error) {
	if cfg.Output.File == "" {
		return output.NewWriter(stdout), nil
	}
	return output.NewFileWriter(cfg.Output.File)
}
