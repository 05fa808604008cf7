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

// Package record defines the single data unit produced by the sample scraper
// and the contract every emitted NDJSON line must satisfy.
//
// A Record carries four fields:
//
//	{"number":0,"message":"Hello 0","sample_date":"2026-10-17T09:15:02.481516","source_url":"http://somewhere.com/0"}
//
// New builds the record for a loop index. Check parses a single NDJSON line and
// verifies it against the same contract, which is what the validate and dump
// commands rely on.
package record
