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
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	at := time.Date(2026, 10, 17, 9, 15, 2, 481516789, time.Local)

	tests := []struct {
		name string
		n    int
		want Record
	}{
		{
			name: "first index",
			n:    0,
			want: Record{
				Number:     0,
				Message:    "Hello 0",
				SampleDate: NewTimestamp(at),
				SourceURL:  "http://somewhere.com/0",
			},
		},
		{
			name: "two digit index has no leading zero",
			n:    19,
			want: Record{
				Number:     19,
				Message:    "Hello 19",
				SampleDate: NewTimestamp(at),
				SourceURL:  "http://somewhere.com/19",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.n, at)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("New(%d) mismatch (-want +got):\n%s", tt.n, diff)
			}
		})
	}
}

func TestRecord_MarshalJSON(t *testing.T) {
	at := time.Date(2026, 10, 17, 9, 15, 2, 481516789, time.Local)

	data, err := json.Marshal(New(3, at))
	require.NoError(t, err)

	assert.Equal(t,
		`{"number":3,"message":"Hello 3","sample_date":"2026-10-17T09:15:02.481516","source_url":"http://somewhere.com/3"}`,
		string(data))
}

func TestRecord_KeysMatchSerialization(t *testing.T) {
	data, err := json.Marshal(New(1, time.Now()))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))

	require.Len(t, fields, len(Keys()))
	for _, key := range Keys() {
		assert.Contains(t, fields, key)
	}
}
