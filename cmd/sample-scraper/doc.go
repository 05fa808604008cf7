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

// Package main implements the sample-scraper command-line interface.
// Run without arguments, it writes twenty synthesized records to standard
// output as NDJSON, the output contract every scraper follows, and logs a
// single "Starting run..." diagnostic to standard error.
//
// The CLI supports:
//   - Emitting the record stream to stdout or a file (default behavior)
//   - Validating any NDJSON stream against the record contract (validate)
//   - Re-emitting the valid records of a stream (dump)
//   - Disabling or redirecting the diagnostic log (--quiet, --log-file)
//   - YAML configuration with environment overrides
//
// Usage:
//
//	sample-scraper [flags]
//	sample-scraper validate [file|-] [flags]
//	sample-scraper dump [file|-] [flags]
//
// Example:
//
//	sample-scraper | sample-scraper validate
//	sample-scraper --quiet --output records.ndjson
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Configuration error
//   - 3: Output could not be written
//   - 4: Validation failed
package main
