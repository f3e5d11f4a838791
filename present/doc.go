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


// Package present turns search results into human-readable text.
//
// Summarize writes the two-to-four line result summary, including
// relaxation hints when nothing matched. BuildCard flattens one listing
// row into display-ready card fields with the fallback chains and
// sentinel normalization the raw exports require ("nan", "n/a" and
// friends all render as "Not mentioned"). FormatPrice renders rupee
// amounts in crore/lakh units.
//
// Everything here is pure string shaping; how a CLI or UI draws the
// card is up to the caller.
package present
