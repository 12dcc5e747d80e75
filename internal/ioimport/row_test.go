package ioimport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalDate(t *testing.T) {
	tests := []struct {
		msg, in, out string
	}{
		{"iso", "2026-02-12", "2026-02-12"},
		{"long month", "February 12, 2026", "2026-02-12"},
		{"abbreviated", "Feb. 12, 2026", "2026-02-12"},
		{"abbreviated no dot", "Feb 12, 2026", "2026-02-12"},
		{"padded", "  2026-02-12 ", "2026-02-12"},
	}
	for _, v := range tests {
		got, err := canonicalDate(v.in)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.out, got, v.msg)
	}

	_, err := canonicalDate("12/02/2026")
	require.Error(t, err)
	_, err = canonicalDate("")
	require.Error(t, err)
}

func TestCanonicalValue(t *testing.T) {
	tests := []struct {
		msg  string
		ct   colType
		in   string
		out  string
		fail bool
	}{
		{msg: "string passes through", ct: colString, in: "Moderate", out: "Moderate"},
		{msg: "float canonical", ct: colFloat, in: "4.0", out: "4"},
		{msg: "float invalid", ct: colFloat, in: "four", fail: true},
		{msg: "int with thousands sep", ct: colInt, in: "1,160", out: "1160"},
		{msg: "int invalid", ct: colInt, in: "2.5", fail: true},
		{msg: "bool yes", ct: colBool, in: "True", out: "true"},
		{msg: "bool invalid", ct: colBool, in: "maybe", fail: true},
		{msg: "date normalized", ct: colDate, in: "Feb. 12, 2026", out: "2026-02-12"},
	}
	for _, v := range tests {
		got, err := canonicalValue("col", v.ct, v.in)
		if v.fail {
			assert.Error(t, err, v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.out, got, v.msg)
	}
}

func TestParseRow(t *testing.T) {
	header := []string{
		"wta_url", "trail_name", "distance_miles", "dogs_allowed",
		"parking_note", "source", "scraped_at",
	}
	fields := []string{
		"https://www.wta.org/go-hiking/hikes/mt-si", "Mount Si",
		"8.0", "true", "arrive early", "wta",
		"2026-02-15T08:30:00Z",
	}

	rec, err := parseRow(&hikesSpec, header, fields)
	require.NoError(t, err)

	assert.Equal(t, "hikes", rec.Kind)
	assert.Equal(t, "https://www.wta.org/go-hiking/hikes/mt-si", rec.Key)
	assert.Equal(t, "wta", rec.Source)
	assert.Equal(t,
		time.Date(2026, 2, 15, 8, 30, 0, 0, time.UTC), rec.ScrapedAt)
	assert.Equal(t, "8", rec.Values["distance_miles"])
	// Unknown column preserved verbatim.
	assert.Equal(t, "arrive early", rec.Values["parking_note"])
	// source and scraped_at are provenance, not merge fields.
	assert.NotContains(t, rec.Values, "source")
	assert.NotContains(t, rec.Values, "scraped_at")
}

func TestParseRow_Rejects(t *testing.T) {
	header := []string{"wta_url", "trail_name", "source", "scraped_at"}
	tests := []struct {
		msg    string
		fields []string
	}{
		{"column count mismatch",
			[]string{"url", "name", "wta"}},
		{"missing required trail_name",
			[]string{"url", "", "wta", "2026-02-15T08:30:00Z"}},
		{"missing source",
			[]string{"url", "name", "", "2026-02-15T08:30:00Z"}},
		{"bad scraped_at",
			[]string{"url", "name", "wta", "yesterday"}},
	}
	for _, v := range tests {
		_, err := parseRow(&hikesSpec, header, v.fields)
		assert.Error(t, err, v.msg)
	}
}

func TestParseRow_CompositeKey(t *testing.T) {
	header := []string{
		"trail_url", "report_date", "author", "source", "scraped_at",
	}
	fields := []string{
		"https://www.wta.org/go-hiking/hikes/mt-si",
		"Feb. 12, 2026", "hiker42", "wta", "2026-02-15T08:30:00Z",
	}

	rec, err := parseRow(&reportsSpec, header, fields)
	require.NoError(t, err)
	assert.Equal(t,
		"https://www.wta.org/go-hiking/hikes/mt-si|2026-02-12|hiker42",
		rec.Key)
}

func TestMissingColumns(t *testing.T) {
	missing := missingColumns(&hikesSpec,
		[]string{"wta_url", "trail_name", "source"})
	assert.Equal(t, []string{"scraped_at"}, missing)

	missing = missingColumns(&scheduleSpec,
		[]string{"date", "trail_url", "season", "source", "scraped_at"})
	assert.Empty(t, missing)
}
