package search

import (
	"log/slog"

	"github.com/gharkhoj/gharkhoj/core"
	"github.com/gharkhoj/gharkhoj/query"
)

// DefaultLimit is the result cap used when the caller passes no
// positive limit.
const DefaultLimit = 10

// Searcher answers natural-language queries over a denormalized
// listing table. The table is treated as read-only; a Searcher is safe
// for concurrent use.
type Searcher struct {
	table  *core.Table
	logger *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over the listing table.
func NewSearcher(table *core.Table, opts ...Option) (*Searcher, error) {
	if table == nil {
		return nil, ErrTableRequired
	}

	s := &Searcher{
		table:  table,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Table returns the listing table the searcher runs on.
func (s *Searcher) Table() *core.Table {
	return s.table
}

// Search parses the query, applies the extracted filters and returns
// up to limit rows ranked ready-first then cheapest-first, along with
// the FilterSet so callers can explain the results. A query that sets
// no filters degenerates to all priced listings, ranked and truncated
// as usual. Returned rows alias the table and must not be mutated.
func (s *Searcher) Search(query string, limit int) ([]core.Row, core.FilterSet) {
	return s.SearchWithMonitor(query, limit, nil)
}

// SearchWithMonitor searches with a monitor receiving callbacks as
// each pipeline stage narrows the working set.
func (s *Searcher) SearchWithMonitor(rawQuery string, limit int, monitor SearchMonitor) ([]core.Row, core.FilterSet) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	monitor.Start(rawQuery)

	filters := query.Parse(rawQuery)
	monitor.AfterParse(filters)

	rows := withPrice(s.table.Rows)
	monitor.AfterPriceFilter(len(rows))

	if filters.BHK != nil {
		rows = filterBHK(rows, *filters.BHK)
		monitor.AfterBHKFilter(len(rows))
	}

	if filters.MaxBudget != nil {
		rows = filterBudget(rows, *filters.MaxBudget)
		monitor.AfterBudgetFilter(len(rows))
	}

	if filters.City != "" {
		rows = filterLocation(rows, filters.LocationKeywords())
		monitor.AfterLocationFilter(len(rows))
	}

	hasStatus := s.table.HasColumn(core.ColStatus)
	if filters.Status != core.StatusUnset && hasStatus {
		rows = filterStatus(rows, filters.Status)
		monitor.AfterStatusFilter(len(rows))
	}

	if filters.Furnishing != "" && s.table.HasColumn(core.ColFurnishedType) {
		rows = filterFurnishing(rows, filters.Furnishing)
		monitor.AfterFurnishingFilter(len(rows))
	}

	rankRows(rows, hasStatus)
	monitor.AfterRank(rows)

	if s.table.HasColumn(core.ColProjectName) {
		rows = dedupBySlug(rows)
	}

	if len(rows) > limit {
		rows = rows[:limit]
	}

	s.logger.Debug("search complete",
		"query", rawQuery,
		"results", len(rows))
	monitor.Finish(rows)

	return rows, filters
}
