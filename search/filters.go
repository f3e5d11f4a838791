package search

import (
	"fmt"
	"strings"

	"github.com/gharkhoj/gharkhoj/core"
)

// Status keywords matched against the listing status field. Listings
// label status freely ("Ready To Move", "Possession soon", "Ongoing"),
// so matching is by substring over a small keyword set.
var (
	readyStatusWords             = []string{"ready", "completed", "ready to move"}
	underConstructionStatusWords = []string{"under construction", "ongoing", "upcoming"}
)

// addressColumns are the fields a location keyword may appear in.
var addressColumns = []string{core.ColFullAddress, core.ColLandmark, core.ColProjectName}

// withPrice returns the rows that carry a parseable price. This always
// copies, so later in-place sorting never touches the backing table.
func withPrice(rows []core.Row) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, row := range rows {
		if _, ok := row.Float(core.ColPrice); ok {
			out = append(out, row)
		}
	}
	return out
}

// filterBHK keeps rows whose numeric type code equals the requested
// bedroom count, or whose custom label contains "<n>BHK" or "<n> BHK".
// Rows with neither field never match.
func filterBHK(rows []core.Row, bhk int) []core.Row {
	attached := fmt.Sprintf("%dBHK", bhk)
	spaced := fmt.Sprintf("%d BHK", bhk)

	out := make([]core.Row, 0, len(rows))
	for _, row := range rows {
		if f, ok := row.Float(core.ColType); ok && f == float64(bhk) {
			out = append(out, row)
			continue
		}
		if label, ok := row.Get(core.ColCustomBHK); ok {
			if containsFold(label, attached) || containsFold(label, spaced) {
				out = append(out, row)
			}
		}
	}
	return out
}

// filterBudget keeps rows priced at or under the ceiling.
func filterBudget(rows []core.Row, maxBudget float64) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, row := range rows {
		if price, ok := row.Float(core.ColPrice); ok && price <= maxBudget {
			out = append(out, row)
		}
	}
	return out
}

// filterLocation keeps rows where any keyword appears in any of the
// address fields.
func filterLocation(rows []core.Row, keywords []string) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, row := range rows {
		for _, col := range addressColumns {
			if fieldContainsAny(row, col, keywords) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// filterStatus keeps rows whose status field matches the keyword set
// for the requested readiness.
func filterStatus(rows []core.Row, status core.Status) []core.Row {
	words := underConstructionStatusWords
	if status == core.StatusReady {
		words = readyStatusWords
	}

	out := make([]core.Row, 0, len(rows))
	for _, row := range rows {
		if fieldContainsAny(row, core.ColStatus, words) {
			out = append(out, row)
		}
	}
	return out
}

// filterFurnishing keeps rows whose furnishedType equals the requested
// value, compared upper-cased.
func filterFurnishing(rows []core.Row, furnishing string) []core.Row {
	want := strings.ToUpper(furnishing)

	out := make([]core.Row, 0, len(rows))
	for _, row := range rows {
		if v, ok := row.Get(core.ColFurnishedType); ok && strings.ToUpper(v) == want {
			out = append(out, row)
		}
	}
	return out
}
