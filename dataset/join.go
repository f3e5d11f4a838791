package dataset

import "github.com/gharkhoj/gharkhoj/core"

// Join denormalizes the four sources into one listing table:
// project rows are left-joined with addresses and configurations on
// the project id, then with variants on the configuration id. A stage
// whose source lacks the expected foreign-key column is skipped and
// the table passes through unchanged.
func Join(project, address, configuration, variant *core.Table) *core.Table {
	merged := project

	if address.HasColumn(core.ColProjectID) {
		merged = leftJoin(merged, address, core.ColID, core.ColProjectID, "_address")
	}

	if configuration.HasColumn(core.ColProjectID) {
		merged = leftJoin(merged, configuration, core.ColID, core.ColProjectID, "_config")
	}

	// The configuration's own id normally collides with the project id
	// and survives the join renamed; fall back to the shared id column
	// when no collision happened.
	configKey := core.ColID
	if merged.HasColumn(core.ColConfigID) {
		configKey = core.ColConfigID
	}
	if variant.HasColumn(core.ColConfigurationID) {
		merged = leftJoin(merged, variant, configKey, core.ColConfigurationID, "_variant")
	}

	return merged
}

// leftJoin matches left rows to right rows on string equality of the
// key columns. Every left row appears at least once; a row with
// multiple matches appears once per match. Right columns whose name
// already exists on the left are renamed with the suffix. Null keys
// never match.
func leftJoin(left, right *core.Table, leftKey, rightKey, suffix string) *core.Table {
	out := &core.Table{Columns: append([]string(nil), left.Columns...)}

	leftCols := make(map[string]bool, len(left.Columns))
	for _, c := range left.Columns {
		leftCols[c] = true
	}

	renamed := make([]string, len(right.Columns))
	for i, c := range right.Columns {
		name := c
		if leftCols[c] {
			name = c + suffix
		}
		renamed[i] = name
		out.Columns = append(out.Columns, name)
	}

	index := make(map[string][]core.Row, len(right.Rows))
	for _, r := range right.Rows {
		if key, ok := r.Get(rightKey); ok {
			index[key] = append(index[key], r)
		}
	}

	for _, lr := range left.Rows {
		var matches []core.Row
		if key, ok := lr.Get(leftKey); ok {
			matches = index[key]
		}

		if len(matches) == 0 {
			out.Rows = append(out.Rows, lr.Clone())
			continue
		}
		for _, rr := range matches {
			joined := lr.Clone()
			for i, c := range right.Columns {
				if v, ok := rr.Get(c); ok {
					joined[renamed[i]] = v
				}
			}
			out.Rows = append(out.Rows, joined)
		}
	}

	return out
}
