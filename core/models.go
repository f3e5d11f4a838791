package core

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Column names of the denormalized listing table. The first group comes
// from the project file, the rest are carried in by the address,
// configuration and variant joins.
const (
	ColID            = "id"
	ColProjectName   = "projectName"
	ColType          = "type"
	ColCustomBHK     = "customBHK"
	ColPrice         = "price"
	ColCarpetArea    = "carpetArea"
	ColSlug          = "slug"
	ColFurnishedType = "furnishedType"
	ColStatus        = "status"
	ColLift          = "lift"

	ColProjectID   = "projectId"
	ColFullAddress = "fullAddress"
	ColLandmark    = "landmark"
	ColCity        = "city"

	// ColConfigID is the configuration file's own id after the join has
	// renamed it to avoid colliding with the project id.
	ColConfigID        = "id_config"
	ColConfigurationID = "configurationId"
	ColBathrooms       = "bathrooms"
	ColBalcony         = "balcony"
)

// Indian numbering units used in budgets and price display.
const (
	Crore = 10_000_000.0
	Lakh  = 100_000.0
)

// Row is a single denormalized listing. Every value is kept as the raw
// CSV text; a missing key and an empty string both mean the field is
// absent. Accessors report absence through their second return value so
// filters can skip rows instead of guessing at defaults.
type Row map[string]string

// Get returns the raw value of a column. The second return value is
// false when the column is absent or empty.
func (r Row) Get(col string) (string, bool) {
	v, ok := r[col]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Has reports whether the row carries a value for the column.
func (r Row) Has(col string) bool {
	_, ok := r.Get(col)
	return ok
}

// Float parses a column as a number. Thousands separators are stripped
// before parsing. Absent or unparseable values report false.
func (r Row) Float(col string) (float64, bool) {
	v, ok := r.Get(col)
	if !ok {
		return 0, false
	}
	v = strings.ReplaceAll(strings.TrimSpace(v), ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int parses a column as an integer, truncating any fractional part,
// so "2.0" and "2" both come back as 2.
func (r Row) Int(col string) (int, bool) {
	f, ok := r.Float(col)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Bool reports whether a column holds a true flag. Source files encode
// booleans as the strings "TRUE" and "FALSE" in mixed case.
func (r Row) Bool(col string) bool {
	v, ok := r.Get(col)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// Clone returns a copy of the row that can be extended without
// mutating the original.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an in-memory column-aware collection of rows. Columns keeps
// the source order so joins and rendering stay deterministic.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table schema carries the column.
// Filters that depend on optional columns consult this before running.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// RowID generates a deterministic ID for a denormalized row from the
// fields that distinguish one listing variant from another.
func RowID(r Row) ID {
	parts := []string{ColSlug, ColID, ColConfigID, ColConfigurationID}
	vals := make([]string, len(parts))
	for i, col := range parts {
		vals[i], _ = r.Get(col)
	}
	return IDFromContent(strings.Join(vals, "|"))
}
