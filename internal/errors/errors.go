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

// Package errors defines sentinel errors for consistent error handling across the application.
// Run-level errors map to specific exit codes in the CLI for proper scripting support.
// Line-level errors classify a single NDJSON line and never abort a run on their own.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrInvalidConfig indicates a configuration file, environment variable or
	// flag holds a value that cannot be used.
	// Maps to exit code 2.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutputWrite indicates the data stream could not be written, for example
	// because the consumer closed the pipe.
	// Maps to exit code 3.
	ErrOutputWrite = errors.New("output write failed")

	// ErrValidationFailed indicates at least one line of an NDJSON stream did not
	// satisfy the record contract.
	// Maps to exit code 4.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidJSON indicates a line is not a JSON object.
	ErrInvalidJSON = errors.New("line is not valid JSON")

	// ErrInvalidRecord indicates a JSON object that violates the record contract.
	ErrInvalidRecord = errors.New("invalid record")
)
