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

package record

import (
	"strconv"
	"time"
)

const (
	// MessagePrefix is prepended to the decimal index to form Record.Message.
	MessagePrefix = "Hello "

	// SourceURLPrefix is prepended to the decimal index to form Record.SourceURL.
	SourceURLPrefix = "http://somewhere.com/"
)

// Record is one synthesized data unit. Records are values: they are built,
// serialized and discarded, never mutated after construction.
type Record struct {
	Number     int       `json:"number"`
	Message    string    `json:"message"`
	SampleDate Timestamp `json:"sample_date"`
	SourceURL  string    `json:"source_url"`
}

// New returns the record for loop index n captured at the given instant.
func New(n int, at time.Time) Record {
	idx := strconv.Itoa(n)
	return Record{
		Number:     n,
		Message:    MessagePrefix + idx,
		SampleDate: NewTimestamp(at),
		SourceURL:  SourceURLPrefix + idx,
	}
}

// Keys returns the JSON keys of a record in serialization order.
func Keys() []string {
	return []string{"number", "message", "sample_date", "source_url"}
}
