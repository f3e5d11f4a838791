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

// Status is the construction status a query asks for.
type Status string

const (
	// StatusUnset means the query did not mention construction status.
	StatusUnset Status = ""
	// StatusReady matches listings that are ready to move into.
	StatusReady Status = "ready"
	// StatusUnderConstruction matches listings still being built.
	StatusUnderConstruction Status = "under_construction"
)

// PropertyType is the kind of property a query asks for. It is
// extracted for display but the listing files carry no matching
// column, so no filter consumes it.
type PropertyType string

const (
	// PropertyTypeUnset means the query did not mention a property kind.
	PropertyTypeUnset PropertyType = ""
	// PropertyTypeApartment covers apartments and flats.
	PropertyTypeApartment PropertyType = "apartment"
	// PropertyTypeVilla covers villas.
	PropertyTypeVilla PropertyType = "villa"
	// PropertyTypePlot covers plots of land.
	PropertyTypePlot PropertyType = "plot"
)

// FurnishedTypes as stored in the listing files.
const (
	FurnishedFull = "FURNISHED"
	FurnishedSemi = "SEMI-FURNISHED"
	FurnishedNone = "UNFURNISHED"
)

// FilterSet holds the structured constraints extracted from one query.
// Every field is optional; the zero value matches everything.
type FilterSet struct {
	// BHK is the requested bedroom count, nil when not mentioned.
	BHK *int

	// MaxBudget is the price ceiling in rupees, nil when not mentioned.
	MaxBudget *float64

	// City is the canonical city name the query resolved to. It may
	// also hold a free-form locality when no known city matched.
	City string

	// CityKeywords are the location substrings matched against
	// address fields. For a known city this includes its aliases and
	// prominent localities; otherwise it is just the city itself.
	CityKeywords []string

	// Status constrains construction status when set.
	Status Status

	// PropertyType records the requested property kind when mentioned.
	PropertyType PropertyType

	// Furnishing is the requested furnishedType value when mentioned.
	Furnishing string
}

// IsEmpty reports whether no constraint was extracted at all.
func (f FilterSet) IsEmpty() bool {
	return f.BHK == nil &&
		f.MaxBudget == nil &&
		f.City == "" &&
		len(f.CityKeywords) == 0 &&
		f.Status == StatusUnset &&
		f.PropertyType == PropertyTypeUnset &&
		f.Furnishing == ""
}

// LocationKeywords returns the substrings to match against address
// fields. When the parser recorded a city without alias keywords the
// city itself is used.
func (f FilterSet) LocationKeywords() []string {
	if len(f.CityKeywords) > 0 {
		return f.CityKeywords
	}
	if f.City != "" {
		return []string{f.City}
	}
	return nil
}
