// Copyright 2025 Gharkhoj Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package search runs natural-language queries against the denormalized
// listing table.
//
// The Searcher type implements a fixed filter pipeline over the table:
//   - Parse the query into a FilterSet
//   - Drop listings without a price
//   - Apply the bedroom, budget, location, status and furnishing
//     filters that the query actually set
//   - Rank ready-to-move listings first, then by ascending price
//   - Deduplicate by project slug and truncate to the result limit
//
// Every step is a pure transform over row slices; the table itself is
// never mutated, so concurrent searches over one table are safe.
package search
