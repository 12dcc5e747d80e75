package iobuild

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailplan/traildb/pkg/schema"
)

func TestAssemble(t *testing.T) {
	trails := []schema.Trail{
		{
			WTAURL:          "https://www.wta.org/z-mt-si",
			Name:            "Mount Si",
			DistanceMiles:   sql.NullFloat64{Float64: 8, Valid: true},
			ElevationGainFt: sql.NullInt64{Int64: 3150, Valid: true},
		},
		{
			WTAURL: "https://www.wta.org/a-ledge",
			Name:   "Rattlesnake Ledge",
		},
	}
	// Pre-sorted the way the builder queries them: newest first per
	// trail.
	reports := []schema.TripReport{
		{
			TrailURL:   "https://www.wta.org/z-mt-si",
			ReportDate: "2026-02-12",
			Author:     "hiker42",
			Conditions: "snowy",
		},
		{
			TrailURL:   "https://www.wta.org/z-mt-si",
			ReportDate: "2026-01-03",
			Author:     "hiker7",
			Conditions: "icy",
		},
	}
	entries := []schema.ScheduleEntry{
		{Date: "2026-03-01", TrailURL: "https://www.wta.org/a-ledge",
			Season: "spring"},
		{Date: "2026-07-04", TrailURL: "https://www.wta.org/z-mt-si",
			Season: "summer"},
		{Date: "2026-07-18", TrailURL: "https://www.wta.org/a-ledge",
			Season: "summer"},
	}

	page := assemble("Hike Planner", trails, reports, entries)

	// Cards sort by name, not store order.
	require.Len(t, page.Trails, 2)
	assert.Equal(t, "Mount Si", page.Trails[0].Name)
	assert.Equal(t, "Rattlesnake Ledge", page.Trails[1].Name)
	assert.Equal(t, "8 mi", page.Trails[0].Distance)
	assert.Equal(t, "3,150 ft", page.Trails[0].Elevation)
	assert.Empty(t, page.Trails[1].Distance)

	// Each card carries only the latest report.
	require.NotNil(t, page.Trails[0].LatestReport)
	assert.Equal(t, "2026-02-12", page.Trails[0].LatestReport.Date)
	assert.Equal(t, "snowy", page.Trails[0].LatestReport.Conditions)
	assert.Nil(t, page.Trails[1].LatestReport)

	// Seasons ordered by their earliest entry, entries joined to
	// trail data.
	require.Len(t, page.Seasons, 2)
	assert.Equal(t, "spring", page.Seasons[0].Name)
	assert.Equal(t, "summer", page.Seasons[1].Name)
	require.Len(t, page.Seasons[1].Entries, 2)
	assert.Equal(t, "Mount Si", page.Seasons[1].Entries[0].TrailName)
	assert.Equal(t, "8 mi", page.Seasons[1].Entries[0].Distance)
}
