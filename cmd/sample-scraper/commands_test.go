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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirseerhq/sample-scraper/internal/config"
	scrapeerrors "github.com/sirseerhq/sample-scraper/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const badStream = `{"number":0,"message":"Hello 0","sample_date":"2026-10-17T09:15:02.000001","source_url":"http://somewhere.com/0"}
Starting run...
{"number":1,"company":"Company 1 Ltd","message":"Hello 1","sample_date":"2026-10-17T09:15:02.000002","source_url":"http://somewhere.com/1"}
`

// emitted returns the stdout of a quiet root run.
func emitted(t *testing.T) string {
	t.Helper()
	stdout, _, err := executeCommand(t, "", "--quiet")
	require.NoError(t, err)
	return stdout
}

func TestValidate_Stdin(t *testing.T) {
	isolate(t)

	stdout, stderr, err := executeCommand(t, emitted(t), "validate", "--quiet")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "Validated 20 records!\n"), "stdout: %q", stdout)
	assert.Contains(t, stdout, "valid records")
	assert.Contains(t, stdout, "total")
	assert.Equal(t, strings.Repeat(".", 20)+"\n", stderr)
}

func TestValidate_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "records.ndjson")
	require.NoError(t, os.WriteFile(path, []byte(emitted(t)), 0o644))

	stdout, _, err := executeCommand(t, "", "validate", path, "--quiet", "--no-summary")
	require.NoError(t, err)
	assert.Equal(t, "Validated 20 records!\n", stdout)
}

func TestValidate_Run(t *testing.T) {
	isolate(t)

	stdout, stderr, err := executeCommand(t, "", "validate", "--run")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "Validated 20 records!\n"), "stdout: %q", stdout)
	assert.Contains(t, stderr, "Starting run...")
	assert.Contains(t, stderr, strings.Repeat(".", 20))
}

func TestValidate_RunWithFileIsRejected(t *testing.T) {
	isolate(t)

	_, _, err := executeCommand(t, "", "validate", "--run", "records.ndjson", "--quiet")
	require.Error(t, err)
	assert.Equal(t, 1, mapErrorToExitCode(err))
}

func TestValidate_InvalidLines(t *testing.T) {
	isolate(t)

	stdout, stderr, err := executeCommand(t, badStream, "validate", "--quiet")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scrapeerrors.ErrValidationFailed))
	assert.Equal(t, 4, mapErrorToExitCode(err))

	assert.True(t, strings.HasPrefix(stdout, "Validated 1 records!\n"), "stdout: %q", stdout)
	assert.Contains(t, stdout, "invalid JSON")
	assert.Contains(t, stderr, "The following line was not valid JSON:\nStarting run...\n")
	assert.Contains(t, stderr, "The following record is invalid:\n")
	assert.Contains(t, stderr, ` * unexpected key "company"`)
}

func TestValidate_OutputFlagRejected(t *testing.T) {
	isolate(t)

	_, _, err := executeCommand(t, emitted(t), "validate", "--quiet", "--output", "report.ndjson")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scrapeerrors.ErrInvalidConfig))
	assert.Equal(t, 2, mapErrorToExitCode(err))
	assert.NoFileExists(t, "report.ndjson")
}

func TestValidate_IgnoresConfiguredOutput(t *testing.T) {
	dir := isolate(t)
	t.Setenv(config.EnvOutput, filepath.Join(dir, "records.ndjson"))

	stdout, _, err := executeCommand(t, emitted(t), "validate", "--quiet", "--no-summary")
	require.NoError(t, err)
	assert.Equal(t, "Validated 20 records!\n", stdout)
}

func TestValidate_MissingFile(t *testing.T) {
	isolate(t)

	_, _, err := executeCommand(t, "", "validate", "missing.ndjson", "--quiet")
	require.Error(t, err)
	assert.Equal(t, 1, mapErrorToExitCode(err))
}

func TestDump_Stdin(t *testing.T) {
	isolate(t)
	input := emitted(t)

	stdout, stderr, err := executeCommand(t, input, "dump", "--quiet")
	require.NoError(t, err)

	assert.Equal(t, input, stdout, "a clean stream is reproduced unchanged")
	assert.Equal(t, "Run completed successfully!\n", stderr)
}

func TestDump_DropsInvalidLines(t *testing.T) {
	isolate(t)

	stdout, stderr, err := executeCommand(t, badStream, "dump", "--quiet")
	require.Error(t, err)
	assert.Equal(t, 4, mapErrorToExitCode(err))

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"number":0`)
	assert.NotContains(t, stdout, "Starting run...")
	assert.True(t, strings.HasSuffix(stderr, "Run failed!\n"), "stderr: %q", stderr)
}

func TestDump_RunToFile(t *testing.T) {
	dir := isolate(t)
	outPath := filepath.Join(dir, "dump.ndjson")

	stdout, _, err := executeCommand(t, "", "dump", "--run", "--quiet", "--output", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	requireRecordStream(t, string(data))
}

func TestDump_OutputIsInputRejected(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "records.ndjson")
	stream := emitted(t)
	require.NoError(t, os.WriteFile(path, []byte(stream), 0o644))

	tests := []struct {
		name   string
		input  string
		output string
	}{
		{name: "same path", input: path, output: path},
		{name: "unclean path", input: "records.ndjson", output: "./sub/../records.ndjson"},
		{name: "relative and absolute", input: "records.ndjson", output: path},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, "", "dump", tt.input, "--quiet", "--output", tt.output)
			require.Error(t, err)
			assert.True(t, errors.Is(err, scrapeerrors.ErrInvalidConfig))
			assert.Equal(t, 2, mapErrorToExitCode(err))
			assert.Empty(t, stdout)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, stream, string(data), "input must be left untouched")
		})
	}
}
