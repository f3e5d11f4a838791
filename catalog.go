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


package gharkhoj

import (
	"log/slog"

	"github.com/gharkhoj/gharkhoj/core"
	"github.com/gharkhoj/gharkhoj/dataset"
	"github.com/gharkhoj/gharkhoj/present"
	"github.com/gharkhoj/gharkhoj/search"
)

// Catalog is a loaded listing dataset plus the query machinery on top
// of it. The table is built once in Open and never mutated afterwards,
// so a single Catalog serves concurrent queries without locking.
type Catalog struct {
	table    *core.Table
	searcher *search.Searcher
	logger   *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger shared by the catalog, its loader and its
// searcher. A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(o *catalogOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Open loads the four source files described by cfg, denormalizes them
// into one listing table and returns a query-ready Catalog. A nil cfg
// uses DefaultConfig. Any unreadable source is fatal; a partially
// loaded catalog is never returned.
func Open(cfg *dataset.Config, opts ...CatalogOption) (*Catalog, error) {
	// Apply options
	options := &catalogOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if cfg == nil {
		cfg = dataset.DefaultConfig()
	}

	loader, err := dataset.NewLoader(cfg, dataset.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}
	table, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if err := core.ValidateTable(table); err != nil {
		return nil, err
	}

	searcher, err := search.NewSearcher(table, search.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	return &Catalog{
		table:    table,
		searcher: searcher,
		logger:   options.logger,
	}, nil
}

// Result bundles everything one query produces: the ranked rows, the
// filters parsed out of the query text, the summary line and the
// display cards.
type Result struct {
	Rows    []core.Row
	Filters core.FilterSet
	Summary string
	Cards   []present.Card
}

// Search parses the query text and returns matching listings in ranked
// order along with the extracted filters. A limit of zero or less uses
// search.DefaultLimit.
func (c *Catalog) Search(query string, limit int) ([]core.Row, core.FilterSet) {
	return c.searcher.Search(query, limit)
}

// Query runs the full pipeline over one query: search, summary text
// and display cards.
func (c *Catalog) Query(query string, limit int) Result {
	rows, filters := c.searcher.Search(query, limit)
	return Result{
		Rows:    rows,
		Filters: filters,
		Summary: present.Summarize(rows, filters),
		Cards:   present.Cards(rows),
	}
}

// Summarize describes a result set in plain English.
func (c *Catalog) Summarize(rows []core.Row, filters core.FilterSet) string {
	return present.Summarize(rows, filters)
}

// Cards flattens a result set into display-ready cards.
func (c *Catalog) Cards(rows []core.Row) []present.Card {
	return present.Cards(rows)
}

// Searcher returns the underlying searcher.
func (c *Catalog) Searcher() *search.Searcher {
	return c.searcher
}

// Table returns the denormalized listing table.
func (c *Catalog) Table() *core.Table {
	return c.table
}

// Len reports how many listing rows the catalog holds.
func (c *Catalog) Len() int {
	return c.table.Len()
}
