package present

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gharkhoj/gharkhoj/core"
)

func TestBuildCard_Complete(t *testing.T) {
	row := core.Row{
		core.ColProjectName:   "Green Acres",
		core.ColSlug:          "green-acres",
		core.ColFullAddress:   "123 Baner Road, Baner, Pune",
		core.ColLandmark:      "Near Baner Hill",
		core.ColType:          "3",
		core.ColPrice:         "9500000",
		core.ColStatus:        "Ready To Move",
		core.ColCarpetArea:    "1250",
		core.ColFurnishedType: "FURNISHED",
		core.ColLift:          "true",
		core.ColBalcony:       "2",
		core.ColBathrooms:     "2",
	}

	card := BuildCard(row)

	assert.Equal(t, "Green Acres", card.ProjectName)
	assert.Equal(t, "Pune", card.City)
	assert.Equal(t, "Near Baner Hill", card.Locality)
	assert.Equal(t, "Pune, Near Baner Hill", card.Location)
	assert.Equal(t, "3BHK", card.BHK)
	assert.Equal(t, "₹95.00 Lakh", card.Price)
	assert.Equal(t, "Ready To Move", card.Status)
	assert.Equal(t, "1250 sq.ft", card.CarpetArea)
	assert.Equal(t, "FURNISHED", card.Furnishing)
	assert.Equal(t, []string{"Lift", "2 Balconies", "2 Bathrooms"}, card.Amenities)
	assert.Equal(t, "/project/green-acres", card.CTAURL)
}

func TestBuildCard_SentinelsNormalized(t *testing.T) {
	row := core.Row{
		core.ColProjectName:   "nan",
		core.ColLandmark:      "N/A",
		core.ColStatus:        "none",
		core.ColFurnishedType: "unknown",
		core.ColCarpetArea:    "N/A",
	}

	card := BuildCard(row)

	assert.Equal(t, "Untitled Project", card.ProjectName)
	assert.Equal(t, NotMentioned, card.City)
	assert.Equal(t, NotMentioned, card.Locality)
	assert.Equal(t, "Location details coming soon", card.Location)
	assert.Equal(t, "N/A", card.BHK)
	assert.Equal(t, "Price on request", card.Price)
	assert.Equal(t, "Available", card.Status)
	assert.Equal(t, "N/A", card.CarpetArea)
	assert.Equal(t, NotMentioned, card.Furnishing)
	assert.Equal(t, []string{"Modern Amenities", "Security", "Parking"}, card.Amenities)
	assert.Equal(t, "/project/untitled-project", card.CTAURL)
}

func TestBuildCard_CustomLabelBeatsNumericType(t *testing.T) {
	row := core.Row{
		core.ColProjectName: "Lake Villa",
		core.ColCustomBHK:   "4 BHK Duplex",
		core.ColType:        "4",
	}

	assert.Equal(t, "4 BHK Duplex", BuildCard(row).BHK)
}

func TestBuildCard_LocalityFallsBackToAddress(t *testing.T) {
	row := core.Row{
		core.ColProjectName: "Metro Residency",
		core.ColFullAddress: "Sector 9, Chembur, Mumbai",
	}

	card := BuildCard(row)

	assert.Equal(t, "Mumbai", card.City)
	assert.Equal(t, "Sector 9, Chembur, Mumbai", card.Locality)
	assert.Equal(t, "Mumbai, Sector 9, Chembur, Mumbai", card.Location)
}

func TestBuildCard_LongLocalityTruncated(t *testing.T) {
	landmark := "Opposite the Grand Central Mall on Old Airport Road"
	row := core.Row{
		core.ColProjectName: "Skyline Court",
		core.ColFullAddress: "Plot 7, Hinjewadi Phase 2",
		core.ColLandmark:    landmark,
	}

	card := BuildCard(row)

	require.Len(t, card.Locality, maxLocalityLen)
	assert.Equal(t, landmark[:37]+"...", card.Locality)
	// The combined location line keeps the untruncated value.
	assert.Equal(t, "Pune, "+landmark, card.Location)
}

func TestBuildCard_Amenities(t *testing.T) {
	t.Run("singular counts", func(t *testing.T) {
		row := core.Row{
			core.ColLift:      "TRUE",
			core.ColBalcony:   "1",
			core.ColBathrooms: "1",
		}
		assert.Equal(t, []string{"Lift", "1 Balcony", "1 Bathroom"}, BuildCard(row).Amenities)
	})

	t.Run("zero balconies omitted", func(t *testing.T) {
		row := core.Row{
			core.ColBalcony:   "0",
			core.ColBathrooms: "1",
		}
		assert.Equal(t, []string{"1 Bathroom"}, BuildCard(row).Amenities)
	})

	t.Run("unparseable counts omitted", func(t *testing.T) {
		row := core.Row{
			core.ColLift:      "true",
			core.ColBalcony:   "two",
			core.ColBathrooms: "many",
		}
		assert.Equal(t, []string{"Lift"}, BuildCard(row).Amenities)
	})

	t.Run("float counts truncate", func(t *testing.T) {
		row := core.Row{
			core.ColBathrooms: "2.0",
		}
		assert.Equal(t, []string{"2 Bathrooms"}, BuildCard(row).Amenities)
	})
}

func TestCityOf(t *testing.T) {
	t.Run("explicit city column wins", func(t *testing.T) {
		row := core.Row{
			core.ColCity:        "Navi Mumbai",
			core.ColFullAddress: "somewhere in Pune",
		}
		assert.Equal(t, "Navi Mumbai", CityOf(row))
	})

	t.Run("keyword scan of address", func(t *testing.T) {
		row := core.Row{core.ColFullAddress: "Plot 7, Hinjewadi Phase 2"}
		assert.Equal(t, "Pune", CityOf(row))
	})

	t.Run("unknown city falls back to last address part", func(t *testing.T) {
		row := core.Row{core.ColFullAddress: "12 MG Road, indore"}
		assert.Equal(t, "Indore", CityOf(row))
	})

	t.Run("trailing empty parts skipped", func(t *testing.T) {
		row := core.Row{core.ColFullAddress: "12 MG Road, indore, "}
		assert.Equal(t, "Indore", CityOf(row))
	})

	t.Run("sentinel address", func(t *testing.T) {
		row := core.Row{core.ColFullAddress: "nan"}
		assert.Equal(t, NotMentioned, CityOf(row))
	})

	t.Run("no address at all", func(t *testing.T) {
		assert.Equal(t, NotMentioned, CityOf(core.Row{}))
	})
}

func TestCards_PreservesOrder(t *testing.T) {
	rows := []core.Row{
		{core.ColProjectName: "First", core.ColPrice: "6000000"},
		{core.ColProjectName: "Second", core.ColPrice: "7000000"},
	}

	cards := Cards(rows)

	require.Len(t, cards, 2)
	assert.Equal(t, "First", cards[0].ProjectName)
	assert.Equal(t, "Second", cards[1].ProjectName)
}
