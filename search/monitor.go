package search

import "github.com/gharkhoj/gharkhoj/core"

// SearchMonitor provides hooks to observe the search pipeline.
// Implement this interface to track how each filter narrows the
// working set during a search. Filter callbacks only fire for filters
// the query actually set.
type SearchMonitor interface {
	Start(query string)
	AfterParse(filters core.FilterSet)
	AfterPriceFilter(remaining int)
	AfterBHKFilter(remaining int)
	AfterBudgetFilter(remaining int)
	AfterLocationFilter(remaining int)
	AfterStatusFilter(remaining int)
	AfterFurnishingFilter(remaining int)
	AfterRank(rows []core.Row)
	Finish(results []core.Row)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)              {}
func (n *noopMonitor) AfterParse(_ core.FilterSet) {}
func (n *noopMonitor) AfterPriceFilter(_ int)      {}
func (n *noopMonitor) AfterBHKFilter(_ int)        {}
func (n *noopMonitor) AfterBudgetFilter(_ int)     {}
func (n *noopMonitor) AfterLocationFilter(_ int)   {}
func (n *noopMonitor) AfterStatusFilter(_ int)     {}
func (n *noopMonitor) AfterFurnishingFilter(_ int) {}
func (n *noopMonitor) AfterRank(_ []core.Row)      {}
func (n *noopMonitor) Finish(_ []core.Row)         {}
