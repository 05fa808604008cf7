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

// Package output reads and writes NDJSON (Newline Delimited JSON) streams.
// Every line of an NDJSON stream holds one complete JSON value, which lets a
// consumer process records as they arrive without buffering the whole run.
//
// Writer encodes one record per line to an io.Writer or file and never keeps
// records in memory. Reader walks an NDJSON stream line by line and tracks the
// line number for diagnostics.
//
// Example usage:
//
//	w := output.NewWriter(os.Stdout)
//	defer w.Close()
//
//	for n := 0; n < 20; n++ {
//	    if err := w.Write(record.New(n, time.Now())); err != nil {
//	        return err
//	    }
//	}
package output
