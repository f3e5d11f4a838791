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


package present

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gharkhoj/gharkhoj/core"
)

// Summarize describes a result set in plain English. Empty results get
// relaxation hints derived from the filters that were actually applied;
// non-empty results report the count, the price spread and a closing
// line that depends on how many matches there were.
func Summarize(rows []core.Row, filters core.FilterSet) string {
	if len(rows) == 0 {
		var hints []string
		if filters.Status != core.StatusUnset {
			hints = append(hints, "removing the 'ready to move' filter")
		}
		if filters.MaxBudget != nil {
			hints = append(hints, "increasing your budget")
		}
		if len(hints) == 0 {
			return "No properties found matching your criteria. Try adjusting your search parameters."
		}
		return fmt.Sprintf("No properties found matching your criteria. Try %s for better results.",
			strings.Join(hints, ", and "))
	}

	count := len(rows)

	bhkInfo := ""
	if filters.BHK != nil {
		bhkInfo = fmt.Sprintf("%dBHK ", *filters.BHK)
	}

	cityInfo := "various cities"
	if filters.City != "" {
		cityInfo = filters.City
	}
	cityInfo = titleCase(cityInfo)

	budget := "your budget"
	if filters.MaxBudget != nil {
		if *filters.MaxBudget >= core.Crore {
			budget = fmt.Sprintf("₹%.1f Cr", *filters.MaxBudget/core.Crore)
		} else {
			budget = fmt.Sprintf("₹%.1f Lakh", *filters.MaxBudget/core.Lakh)
		}
	}

	noun := "property"
	if count > 1 {
		noun = "properties"
	}

	min, max := priceBounds(rows)

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d %s%s in %s under %s. ", count, bhkInfo, noun, cityInfo, budget)
	fmt.Fprintf(&b, "Prices range from %s. ", formatPriceRange(min, max))
	if count > 5 {
		fmt.Fprintf(&b, "Showing top %d matches with the best value for your requirements.", count)
	} else {
		b.WriteString("These properties offer great value with modern amenities and convenient locations.")
	}
	return b.String()
}

// priceBounds returns the lowest and highest parseable price in rows.
// Rows without a usable price are ignored.
func priceBounds(rows []core.Row) (min, max float64) {
	seen := false
	for _, row := range rows {
		price, ok := row.Float(core.ColPrice)
		if !ok {
			continue
		}
		if !seen {
			min, max = price, price
			seen = true
			continue
		}
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}
	return min, max
}

// titleCase uppercases the first letter of every word and lowercases
// the rest, treating any non-letter as a word boundary.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if inWord {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			inWord = true
		} else {
			inWord = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
