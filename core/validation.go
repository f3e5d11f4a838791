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


package core

import (
	"fmt"
	"strings"
)

// ValidateQuery validates a raw search query according to domain rules.
//
// Validation rules:
//   - The query must contain at least one non-whitespace character
//
// NOT validated:
//   - Whether any filter can be extracted (a query with no recognizable
//     constraints is legal and simply matches everything)
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}
	return nil
}

// ValidateTable validates a listing table according to domain rules.
//
// Validation rules:
//   - The table must not be nil
//   - The table must carry a header
//
// NOT validated (optional in source data):
//   - Presence of any particular column (filters that need an absent
//     column skip themselves)
//   - Row count (an empty table is legal and yields empty results)
func ValidateTable(table *Table) error {
	if table == nil {
		return ErrNilTable
	}

	if len(table.Columns) == 0 {
		return fmt.Errorf("%w: header row missing or empty", ErrNoColumns)
	}

	return nil
}
