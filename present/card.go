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

	"github.com/gharkhoj/gharkhoj/core"
	"github.com/gharkhoj/gharkhoj/query"
)

// NotMentioned is the placeholder rendered for any field whose value is
// missing or one of the export sentinels.
const NotMentioned = "Not mentioned"

// maxLocalityLen caps the locality line on a card. Longer values are
// cut to 37 characters plus an ellipsis.
const maxLocalityLen = 40

// sentinels are values the raw exports use for "no data". They compare
// case-insensitively and count as missing everywhere a card field does
// a fallback.
var sentinels = map[string]struct{}{
	"":              {},
	"nan":           {},
	"none":          {},
	"n/a":           {},
	"unknown":       {},
	"not mentioned": {},
}

// Card holds the display-ready fields for one listing. Every field is
// already formatted and fallback-resolved; consumers render them
// verbatim.
type Card struct {
	ProjectName string
	City        string
	Locality    string
	Location    string
	BHK         string
	Price       string
	Status      string
	CarpetArea  string
	Furnishing  string
	Amenities   []string
	CTAURL      string
}

// BuildCard flattens one listing row into a Card.
func BuildCard(row core.Row) Card {
	name := presentValue(row, core.ColProjectName)
	if name == "" {
		name = "Untitled Project"
	}

	city := CityOf(row)
	locality := presentValue(row, core.ColLandmark, core.ColFullAddress)
	if locality == "" {
		locality = NotMentioned
	}

	location := fmt.Sprintf("%s, %s", city, locality)
	if city == NotMentioned && locality == NotMentioned {
		location = "Location details coming soon"
	}
	// Truncate after the location line is built so it keeps the full
	// address.
	if runes := []rune(locality); len(runes) > maxLocalityLen {
		locality = string(runes[:maxLocalityLen-3]) + "..."
	}

	price := "Price on request"
	if amount, ok := row.Float(core.ColPrice); ok {
		price = FormatPrice(amount)
	}

	status := presentValue(row, core.ColStatus)
	if status == "" {
		status = "Available"
	}

	carpet := "N/A"
	if v, ok := row.Get(core.ColCarpetArea); ok && !isMissing(v) && v != "N/A" {
		carpet = v + " sq.ft"
	}

	furnishing := presentValue(row, core.ColFurnishedType)
	if furnishing == "" {
		furnishing = NotMentioned
	}

	slug := presentValue(row, core.ColSlug)
	if slug == "" {
		slug = strings.ReplaceAll(strings.ToLower(name), " ", "-")
	}

	return Card{
		ProjectName: name,
		City:        city,
		Locality:    locality,
		Location:    location,
		BHK:         bhkDisplay(row),
		Price:       price,
		Status:      status,
		CarpetArea:  carpet,
		Furnishing:  furnishing,
		Amenities:   amenities(row),
		CTAURL:      "/project/" + slug,
	}
}

// Cards maps BuildCard over a result set, preserving order.
func Cards(rows []core.Row) []Card {
	cards := make([]Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, BuildCard(row))
	}
	return cards
}

// CityOf derives the display city for a row. It prefers an explicit
// city column, then scans the full address for a known city keyword,
// then falls back to the last comma-separated part of the address.
func CityOf(row core.Row) string {
	if city := presentValue(row, core.ColCity); city != "" {
		return city
	}

	address, _ := row.Get(core.ColFullAddress)
	lower := strings.ToLower(address)
	for _, city := range query.Cities {
		for _, keyword := range city.Keywords {
			if strings.Contains(lower, keyword) {
				return titleCase(city.Name)
			}
		}
	}

	if !isMissing(address) {
		parts := strings.Split(address, ",")
		for i := len(parts) - 1; i >= 0; i-- {
			if part := strings.TrimSpace(parts[i]); part != "" {
				return titleCase(part)
			}
		}
	}
	return NotMentioned
}

// bhkDisplay prefers the custom configuration label and falls back to
// the numeric type.
func bhkDisplay(row core.Row) string {
	if label := presentValue(row, core.ColCustomBHK); label != "" {
		return label
	}
	if n, ok := row.Int(core.ColType); ok {
		return fmt.Sprintf("%dBHK", n)
	}
	return "N/A"
}

// amenities derives the amenity list from the lift flag and the
// balcony and bathroom counts. Unparseable counts are omitted. Rows
// with no amenity data get a generic list.
func amenities(row core.Row) []string {
	var out []string
	if row.Bool(core.ColLift) {
		out = append(out, "Lift")
	}
	if n, ok := row.Int(core.ColBalcony); ok && n > 0 {
		out = append(out, pluralize(n, "Balcony", "Balconies"))
	}
	if n, ok := row.Int(core.ColBathrooms); ok {
		out = append(out, pluralize(n, "Bathroom", "Bathrooms"))
	}
	if len(out) == 0 {
		out = []string{"Modern Amenities", "Security", "Parking"}
	}
	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// presentValue returns the first column value that is neither absent
// nor a sentinel, or "" when the chain is exhausted.
func presentValue(row core.Row, columns ...string) string {
	for _, column := range columns {
		if v, ok := row.Get(column); ok && !isMissing(v) {
			return v
		}
	}
	return ""
}

func isMissing(v string) bool {
	_, ok := sentinels[strings.ToLower(strings.TrimSpace(v))]
	return ok
}
