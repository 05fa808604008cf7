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
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the ISO-8601 combined date-time layout used for sample_date:
// local wall time, microsecond precision, no UTC offset.
const Layout = "2006-01-02T15:04:05.000000"

// parseLayouts are tried in order by ParseTimestamp. A fractional second is
// accepted after the seconds field even though the layouts do not spell it out.
var parseLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Timestamp is a wall-clock instant that serializes using Layout.
type Timestamp time.Time

// NewTimestamp converts t to local time, truncates it to the precision Layout
// can represent and drops the monotonic clock reading, so that comparisons
// match the serialized text.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.Round(0).Truncate(time.Microsecond).Local())
}

// Time returns the underlying time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// Equal reports whether t and u represent the same instant.
func (t Timestamp) Equal(u Timestamp) bool {
	return time.Time(t).Equal(time.Time(u))
}

// Before reports whether the serialized wall-clock value of t sorts before
// that of u. Layout has no offset, so across a DST fall-back this can disagree
// with time.Time.Before: a later instant may carry an earlier wall time.
func (t Timestamp) Before(u Timestamp) bool {
	return t.String() < u.String()
}

// String formats the timestamp using Layout.
func (t Timestamp) String() string {
	return time.Time(t).Format(Layout)
}

// MarshalJSON encodes the timestamp as a JSON string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a JSON string accepted by ParseTimestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("sample_date must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = NewTimestamp(parsed)
	return nil
}

// ParseTimestamp parses an ISO-8601 combined date-time. Values without an
// offset are interpreted in the local timezone.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("sample_date %q is not an ISO-8601 timestamp", s)
}
