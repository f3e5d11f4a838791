package search

import (
	"log/slog"
	"testing"

	"github.com/gharkhoj/gharkhoj/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listingTable builds a small denormalized table covering the filter
// paths: mixed cities, statuses, furnishing and one unpriced row.
func listingTable() *core.Table {
	return &core.Table{
		Columns: []string{
			"id", "projectName", "type", "customBHK", "price", "carpetArea",
			"slug", "furnishedType", "status", "lift",
			"projectId", "fullAddress", "landmark", "city",
			"id_config", "configurationId", "bathrooms", "balcony",
		},
		Rows: []core.Row{
			{
				"id": "1", "projectName": "Green Acres", "type": "3",
				"price": "9500000", "carpetArea": "850", "slug": "green-acres",
				"furnishedType": "FURNISHED", "status": "Ready To Move", "lift": "TRUE",
				"fullAddress": "123 Baner Road, Pune", "landmark": "Near Baner Hill",
				"bathrooms": "2", "balcony": "1",
			},
			{
				"id": "2", "projectName": "Blue Heights", "type": "2",
				"price": "7200000", "carpetArea": "650", "slug": "blue-heights",
				"furnishedType": "SEMI-FURNISHED", "status": "Under Construction", "lift": "FALSE",
				"fullAddress": "45 Andheri West, Mumbai", "landmark": "Metro Station",
				"bathrooms": "1", "balcony": "0",
			},
			{
				"id": "3", "projectName": "Lakeside Towers", "type": "2",
				"price": "6800000", "carpetArea": "700", "slug": "lakeside-towers",
				"furnishedType": "UNFURNISHED", "status": "Ready To Move", "lift": "TRUE",
				"fullAddress": "Ghodbunder Road, Thane", "landmark": "Lake View",
				"bathrooms": "2", "balcony": "2",
			},
			{
				"id": "4", "projectName": "Lake Villa", "customBHK": "4 BHK Duplex",
				"price": "21000000", "carpetArea": "2200", "slug": "lake-villa",
				"furnishedType": "FURNISHED", "status": "Completed", "lift": "FALSE",
				"fullAddress": "Phase 2, Hinjewadi, Pune", "landmark": "IT Park",
				"bathrooms": "4", "balcony": "3",
			},
			{
				"id": "5", "projectName": "Metro Residency", "type": "2",
				"price": "5900000", "carpetArea": "610", "slug": "metro-residency",
				"furnishedType": "FURNISHED", "status": "Ongoing", "lift": "TRUE",
				"fullAddress": "Chembur East, Mumbai", "landmark": "Monorail",
				"bathrooms": "1", "balcony": "1",
			},
			{
				"id": "6", "projectName": "Paper Plot", "type": "1",
				"slug": "paper-plot",
				"fullAddress": "Somewhere, Pune",
			},
		},
	}
}

func slugsOf(rows []core.Row) []string {
	slugs := make([]string, len(rows))
	for i, row := range rows {
		slugs[i], _ = row.Get(core.ColSlug)
	}
	return slugs
}

func TestNewSearcher(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(listingTable())
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with custom logger", func(t *testing.T) {
		searcher, err := NewSearcher(listingTable(), WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(listingTable(), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil table", func(t *testing.T) {
		_, err := NewSearcher(nil)
		assert.Equal(t, ErrTableRequired, err)
	})
}

func TestSearch_EndToEnd(t *testing.T) {
	searcher, err := NewSearcher(listingTable())
	require.NoError(t, err)

	rows, filters := searcher.Search("3BHK flat in Pune under ₹1.2 Cr", 10)

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"green-acres"}, slugsOf(rows))

	require.NotNil(t, filters.BHK)
	assert.Equal(t, 3, *filters.BHK)
	require.NotNil(t, filters.MaxBudget)
	assert.Equal(t, 12000000.0, *filters.MaxBudget)
	assert.Equal(t, "pune", filters.City)
}

func TestSearch_DropsUnpricedRows(t *testing.T) {
	searcher, err := NewSearcher(listingTable())
	require.NoError(t, err)

	rows, _ := searcher.Search("properties in Pune", 10)

	assert.NotContains(t, slugsOf(rows), "paper-plot")
}

func TestSearch_BHKMatchesCustomLabel(t *testing.T) {
	searcher, err := NewSearcher(listingTable())
	require.NoError(t, err)

	rows, _ := searcher.Search("4 BHK in Pune", 10)

	assert.Equal(t, []string{"lake-villa"}, slugsOf(rows))
}

func TestSearch_BudgetFilter(t *testing.T) {
	searcher, err := NewSearcher(listingTable())
	require.NoError(t, err)

	rows, _ := searcher.Search("2BHK in Mumbai under 70 lakh", 10)

	// Blue Heights at 72 lakh is over the ceiling.
	assert.Equal(t, []string{"lakeside-towers", "metro-residency"}, slugsOf(rows))
}

func TestSearch_CityAliasMatchesAddressFields(t *testing.T) {
	searcher, err := NewSearcher(listingTable())
	require.NoError(t, err)

	// Chembur resolves to Mumbai, whose keyword set also covers the
	// Thane listing.
	rows, _ := searcher.Search("flat in Chembur", 10)

	slugs := slugsOf(rows)
	assert.Contains(t, slugs, "metro-residency")
	assert.Contains(t, slugs, "lakeside-towers")
	assert.Contains(t, slugs, "blue-heights")
	assert.NotContains(t, slugs, "green-acres")
}

func TestSearch_StatusFilter(t *testing.T) {
	searcher, err := NewSearcher(listingTable())
	require.NoError(t, err)

	t.Run("ready", func(t *testing.T) {
		rows, _ := searcher.Search("ready to move in Mumbai", 10)
		assert.Equal(t, []string{"lakeside-towers"}, slugsOf(rows))
	})

	t.Run("under construction", func(t *testing.T) {
		rows, _ := searcher.Search("under construction flats in Mumbai", 10)
		assert.Equal(t, []string{"metro-residency", "blue-heights"}, slugsOf(rows))
	})
}

func TestSearch_StatusFilterSkippedWithoutColumn(t *testing.T) {
	table := &core.Table{
		Columns: []string{"projectName", "price", "slug"},
		Rows: []core.Row{
			{"projectName": "A", "price": "200", "slug": "a"},
			{"projectName": "B", "price": "100", "slug": "b"},
		},
	}
	searcher, err := NewSearcher(table)
	require.NoError(t, err)

	rows, _ := searcher.Search("ready to move", 10)

	// No status column: the filter is skipped and ranking falls back
	// to price alone.
	assert.Equal(t, []string{"b", "a"}, slugsOf(rows))
}

func TestSearch_FurnishingIsExactMatch(t *testing.T) {
	searcher, err := NewSearcher(listingTable())
	require.NoError(t, err)

	t.Run("furnished excludes semi and un", func(t *testing.T) {
		rows, _ := searcher.Search("furnished flat in Mumbai", 10)
		assert.Equal(t, []string{"metro-residency"}, slugsOf(rows))
	})

	t.Run("semi furnished", func(t *testing.T) {
		rows, _ := searcher.Search("semi furnished flat in Mumbai", 10)
		assert.Equal(t, []string{"blue-heights"}, slugsOf(rows))
	})

	t.Run("unfurnished", func(t *testing.T) {
		rows, _ := searcher.Search("unfurnished flat in Mumbai", 10)
		assert.Equal(t, []string{"lakeside-towers"}, slugsOf(rows))
	})
}

func TestSearch_RankingReadyFirstThenPrice(t *testing.T) {
	searcher, err := NewSearcher(listingTable())
	require.NoError(t, err)

	rows, _ := searcher.Search("2BHK in Mumbai", 10)

	// Lakeside Towers is ready so it outranks the cheaper Ongoing and
	// Under Construction listings.
	assert.Equal(t, []string{"lakeside-towers", "metro-residency", "blue-heights"}, slugsOf(rows))
}

func TestSearch_DedupKeepsBestRanked(t *testing.T) {
	table := &core.Table{
		Columns: []string{"projectName", "price", "slug", "status"},
		Rows: []core.Row{
			{"projectName": "Green Acres", "price": "9500000", "slug": "green-acres", "status": "Ready"},
			{"projectName": "Green Acres", "price": "9000000", "slug": "green-acres", "status": "Ready"},
			{"projectName": "Blue Heights", "price": "7200000", "slug": "blue-heights", "status": "Ready"},
		},
	}
	searcher, err := NewSearcher(table)
	require.NoError(t, err)

	rows, _ := searcher.Search("flat", 10)

	require.Equal(t, []string{"blue-heights", "green-acres"}, slugsOf(rows))
	price, _ := rows[1].Float(core.ColPrice)
	assert.Equal(t, 9000000.0, price)
}

func TestSearch_Limit(t *testing.T) {
	table := &core.Table{Columns: []string{"projectName", "price", "slug"}}
	for i := 0; i < 15; i++ {
		table.Rows = append(table.Rows, core.Row{
			"projectName": "P",
			"price":       "100",
			"slug":        string(rune('a' + i)),
		})
	}
	searcher, err := NewSearcher(table)
	require.NoError(t, err)

	t.Run("default limit", func(t *testing.T) {
		rows, _ := searcher.Search("anything", 0)
		assert.Len(t, rows, DefaultLimit)
	})

	t.Run("explicit limit", func(t *testing.T) {
		rows, _ := searcher.Search("anything", 3)
		assert.Len(t, rows, 3)
	})
}

func TestSearch_NoFiltersDegeneratesToAllPriced(t *testing.T) {
	searcher, err := NewSearcher(listingTable())
	require.NoError(t, err)

	rows, filters := searcher.Search("show me something nice", 10)

	assert.True(t, filters.IsEmpty())
	assert.Len(t, rows, 5)
}

func TestSearch_Deterministic(t *testing.T) {
	searcher, err := NewSearcher(listingTable())
	require.NoError(t, err)

	first, _ := searcher.Search("2BHK in Mumbai", 10)
	second, _ := searcher.Search("2BHK in Mumbai", 10)

	assert.Equal(t, first, second)
}

func TestSearch_EmptyTable(t *testing.T) {
	searcher, err := NewSearcher(&core.Table{Columns: []string{"price"}})
	require.NoError(t, err)

	rows, _ := searcher.Search("3BHK in Pune", 10)
	assert.Empty(t, rows)
}

func TestSearchWithMonitor(t *testing.T) {
	searcher, err := NewSearcher(listingTable())
	require.NoError(t, err)

	monitor := &testMonitor{}
	rows, _ := searcher.SearchWithMonitor("3BHK in Pune under 1.2 cr", 10, monitor)

	assert.NotEmpty(t, rows)
	assert.True(t, monitor.startCalled)
	assert.True(t, monitor.finishCalled)
	assert.NotNil(t, monitor.filters.BHK)

	// Only the filters the query set fire their callbacks.
	assert.True(t, monitor.bhkCalled)
	assert.True(t, monitor.budgetCalled)
	assert.True(t, monitor.locationCalled)
	assert.False(t, monitor.statusCalled)
	assert.False(t, monitor.furnishingCalled)
}

// testMonitor is a simple test implementation of SearchMonitor
type testMonitor struct {
	startCalled      bool
	finishCalled     bool
	bhkCalled        bool
	budgetCalled     bool
	locationCalled   bool
	statusCalled     bool
	furnishingCalled bool
	filters          core.FilterSet
}

func (m *testMonitor) Start(query string) {
	m.startCalled = true
}

func (m *testMonitor) AfterParse(filters core.FilterSet) {
	m.filters = filters
}

func (m *testMonitor) AfterPriceFilter(remaining int) {}

func (m *testMonitor) AfterBHKFilter(remaining int) {
	m.bhkCalled = true
}

func (m *testMonitor) AfterBudgetFilter(remaining int) {
	m.budgetCalled = true
}

func (m *testMonitor) AfterLocationFilter(remaining int) {
	m.locationCalled = true
}

func (m *testMonitor) AfterStatusFilter(remaining int) {
	m.statusCalled = true
}

func (m *testMonitor) AfterFurnishingFilter(remaining int) {
	m.furnishingCalled = true
}

func (m *testMonitor) AfterRank(rows []core.Row) {}

func (m *testMonitor) Finish(results []core.Row) {
	m.finishCalled = true
}
