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


// Package query extracts structured listing filters from free-text search
// queries.
//
// Parse applies a fixed set of pattern rules to the lowercased query:
//   - Bedroom count via a "<digits> bhk" pattern
//   - Budget via an ordered list of unit patterns (crore, lakh, short
//     lakh, million) where the first match wins
//   - City via an ordered alias table that also yields the locality
//     keywords used for address matching
//   - Construction status, property type and furnishing via keyword
//     checks with fixed priority
//
// Parsing is pure and deterministic. Rules are carried as data tables
// so new units, cities or aliases can be added without touching the
// control flow.
package query
