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
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	scrapeerrors "github.com/sirseerhq/sample-scraper/internal/errors"
)

// Check parses one NDJSON line and verifies it against the record contract:
// a JSON object holding exactly the keys number, message, sample_date and
// source_url, with number a non-negative integer, message and source_url built
// from number, and sample_date an ISO-8601 timestamp.
//
// Lines that are not JSON at all wrap ErrInvalidJSON. Well-formed JSON that
// breaks the contract wraps ErrInvalidRecord with the reason.
func Check(line []byte) (Record, error) {
	line = bytes.TrimSpace(line)
	if !json.Valid(line) {
		return Record{}, scrapeerrors.ErrInvalidJSON
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil || fields == nil {
		return Record{}, invalid("expected a JSON object")
	}

	if err := checkKeys(fields); err != nil {
		return Record{}, err
	}

	n, err := decodeNumber(fields["number"])
	if err != nil {
		return Record{}, err
	}

	message, err := decodeString("message", fields["message"])
	if err != nil {
		return Record{}, err
	}
	sampleDate, err := decodeString("sample_date", fields["sample_date"])
	if err != nil {
		return Record{}, err
	}
	sourceURL, err := decodeString("source_url", fields["source_url"])
	if err != nil {
		return Record{}, err
	}

	at, err := ParseTimestamp(sampleDate)
	if err != nil {
		return Record{}, invalid(err.Error())
	}

	rec := New(n, at)
	if message != rec.Message {
		return Record{}, invalid(fmt.Sprintf("message %q does not match number %d (want %q)", message, n, rec.Message))
	}
	if sourceURL != rec.SourceURL {
		return Record{}, invalid(fmt.Sprintf("source_url %q does not match number %d (want %q)", sourceURL, n, rec.SourceURL))
	}

	return rec, nil
}

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", scrapeerrors.ErrInvalidRecord, reason)
}

// checkKeys reports the first missing key in serialization order, then any
// unexpected keys in sorted order.
func checkKeys(fields map[string]json.RawMessage) error {
	want := make(map[string]bool, len(Keys()))
	for _, key := range Keys() {
		want[key] = true
		if _, ok := fields[key]; !ok {
			return invalid(fmt.Sprintf("missing key %q", key))
		}
	}

	var extra []string
	for key := range fields {
		if !want[key] {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return invalid(fmt.Sprintf("unexpected key %q", extra[0]))
	}
	return nil
}

func decodeNumber(raw json.RawMessage) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return 0, invalid("number is unreadable")
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, invalid(fmt.Sprintf("number must be an integer, got %s", raw))
	}
	n, err := strconv.Atoi(num.String())
	if err != nil {
		return 0, invalid(fmt.Sprintf("number must be an integer, got %s", raw))
	}
	if n < 0 {
		return 0, invalid(fmt.Sprintf("number must not be negative, got %d", n))
	}
	return n, nil
}

// decodeString rejects null and non-string values, which json.Unmarshal into a
// string would otherwise accept or coerce.
func decodeString(key string, raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", invalid(fmt.Sprintf("%s must be a string, got %s", key, raw))
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", invalid(fmt.Sprintf("%s must be a string", key))
	}
	return s, nil
}
