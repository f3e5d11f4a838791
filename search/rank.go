package search

import (
	"sort"

	"github.com/gharkhoj/gharkhoj/core"
)

// rankRows orders rows in place: ready-to-move listings first, then by
// ascending price. Without a status column ranking is by price alone.
// The sort is stable so equally ranked rows keep their load order,
// which makes repeated searches return identical output.
func rankRows(rows []core.Row, hasStatus bool) {
	if hasStatus {
		sort.SliceStable(rows, func(i, j int) bool {
			ri, rj := isReady(rows[i]), isReady(rows[j])
			if ri != rj {
				return ri
			}
			return priceOf(rows[i]) < priceOf(rows[j])
		})
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return priceOf(rows[i]) < priceOf(rows[j])
	})
}

// dedupBySlug keeps the first occurrence of each slug. Running after
// ranking, the first occurrence is the best-ranked one. Rows without a
// slug dedup together under the empty key.
func dedupBySlug(rows []core.Row) []core.Row {
	seen := make(map[string]bool, len(rows))
	out := make([]core.Row, 0, len(rows))
	for _, row := range rows {
		slug, _ := row.Get(core.ColSlug)
		if seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, row)
	}
	return out
}

func isReady(row core.Row) bool {
	v, ok := row.Get(core.ColStatus)
	return ok && containsFold(v, "ready")
}

func priceOf(row core.Row) float64 {
	price, _ := row.Float(core.ColPrice)
	return price
}
