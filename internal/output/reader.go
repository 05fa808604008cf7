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

package output

import (
	"bufio"
	"bytes"
	"io"
)

// MaxLineSize is the longest NDJSON line Reader accepts.
const MaxLineSize = 1024 * 1024

// Reader iterates over the lines of an NDJSON stream.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Reader{scanner: scanner}
}

// Next advances to the next line and reports whether one was read.
func (r *Reader) Next() bool {
	if !r.scanner.Scan() {
		return false
	}
	r.line++
	return true
}

// Bytes returns the current line without its line terminator. The slice is
// only valid until the next call to Next.
func (r *Reader) Bytes() []byte {
	return bytes.TrimRight(r.scanner.Bytes(), "\r")
}

// Line returns the 1-based number of the current line.
func (r *Reader) Line() int {
	return r.line
}

// Err returns the first read error, if any. A line longer than MaxLineSize
// reports bufio.ErrTooLong.
func (r *Reader) Err() error {
	return r.scanner.Err()
}
