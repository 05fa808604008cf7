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

// Package handler consumes an NDJSON record stream, such as the one the
// emitter produces, and dispatches every line to a Handler according to
// whether it is a valid record, a JSON object that breaks the record contract,
// or not JSON at all.
//
// Two handlers are provided. ValidationHandler counts valid records and prints
// a progress dot for each. DumpHandler re-emits valid records as normalized
// NDJSON. Both report invalid lines through the embedded Reporter.
package handler
