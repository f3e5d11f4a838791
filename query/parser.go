package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gharkhoj/gharkhoj/core"
)

var bhkPattern = regexp.MustCompile(`(\d+)\s*bhk`)

// Status keywords checked against the query text. Ready takes priority,
// so "ready or upcoming" resolves to ready.
var (
	readyWords             = []string{"ready", "immediate", "ready to move"}
	underConstructionWords = []string{"under construction", "upcoming"}
)

// propertyTypeRules is checked in order, first match wins.
var propertyTypeRules = []struct {
	keywords []string
	value    core.PropertyType
}{
	{[]string{"apartment", "flat"}, core.PropertyTypeApartment},
	{[]string{"villa"}, core.PropertyTypeVilla},
	{[]string{"plot"}, core.PropertyTypePlot},
}

// Parse extracts a FilterSet from a free-text query. It is pure: the
// same query always yields the same filters regardless of any dataset.
// A query matching no rule returns an empty FilterSet, which downstream
// search treats as "no constraints".
func Parse(rawQuery string) core.FilterSet {
	query := strings.ToLower(rawQuery)
	var filters core.FilterSet

	if m := bhkPattern.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			filters.BHK = &n
		}
	}

	if budget, ok := parseBudget(query); ok {
		filters.MaxBudget = &budget
	}

	for _, city := range Cities {
		if containsAny(query, city.Keywords) {
			filters.City = city.Name
			filters.CityKeywords = append([]string(nil), city.Keywords...)
			break
		}
	}

	if containsAny(query, readyWords) {
		filters.Status = core.StatusReady
	} else if containsAny(query, underConstructionWords) {
		filters.Status = core.StatusUnderConstruction
	}

	for _, rule := range propertyTypeRules {
		if containsAny(query, rule.keywords) {
			filters.PropertyType = rule.value
			break
		}
	}

	// "unfurnished" contains "furnished", so the plain form is decided
	// only after the semi and un checks.
	if strings.Contains(query, "furnished") {
		switch {
		case strings.Contains(query, "semi"):
			filters.Furnishing = core.FurnishedSemi
		case strings.Contains(query, "unfurnished"):
			filters.Furnishing = core.FurnishedNone
		default:
			filters.Furnishing = core.FurnishedFull
		}
	}

	return filters
}

// containsAny reports whether any keyword appears as a substring of the
// query.
func containsAny(query string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}
