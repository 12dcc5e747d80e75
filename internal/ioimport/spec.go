package ioimport

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/trailplan/traildb/pkg/schema"
)

// colType declares how a CSV column is validated and canonicalized.
type colType int

const (
	colString colType = iota
	colFloat
	colInt
	colBool
	colDate
)

// rowSpec is the declared, versioned schema of one entity kind.
// Unknown columns are preserved as opaque extra data; they never
// redefine the schema at runtime.
type rowSpec struct {
	kind string

	// identityColumns determine the identity key, joined by "|".
	identityColumns []string

	// required columns must be present in the header and non-empty in
	// every row. source and scraped_at are implicitly required.
	required []string

	// types maps declared columns to their validation type.
	// Columns absent from this map are extras.
	types map[string]colType

	// referenceColumn names the column that must match an existing
	// trail identity, empty for kinds without a dependency.
	referenceColumn string
}

var hikesSpec = rowSpec{
	kind:            "hikes",
	identityColumns: []string{"wta_url"},
	required:        []string{"wta_url", "trail_name"},
	types: map[string]colType{
		"trail_name":        colString,
		"location":          colString,
		"distance_miles":    colFloat,
		"elevation_gain_ft": colInt,
		"highest_point_ft":  colInt,
		"drive_time_min":    colInt,
		"difficulty":        colString,
		"trail_type":        colString,
		"required_pass":     colString,
		"dogs_allowed":      colBool,
		"kid_friendly":      colBool,
		"season_window":     colString,
		"highlight":         colString,
		"wta_url":           colString,
	},
}

var reportsSpec = rowSpec{
	kind:            "reports",
	identityColumns: []string{"trail_url", "report_date", "author"},
	required:        []string{"trail_url", "report_date", "author"},
	types: map[string]colType{
		"trail_url":    colString,
		"report_date":  colDate,
		"author":       colString,
		"conditions":   colString,
		"snow_level":   colString,
		"text_summary": colString,
	},
	referenceColumn: "trail_url",
}

var scheduleSpec = rowSpec{
	kind:            "schedule",
	identityColumns: []string{"date"},
	required:        []string{"date", "trail_url", "season"},
	types: map[string]colType{
		"date":      colDate,
		"trail_url": colString,
		"season":    colString,
	},
	referenceColumn: "trail_url",
}

// specFor returns the declared schema for an entity kind.
func specFor(kind schema.Kind) (*rowSpec, error) {
	switch kind {
	case schema.KindHikes:
		return &hikesSpec, nil
	case schema.KindReports:
		return &reportsSpec, nil
	case schema.KindSchedule:
		return &scheduleSpec, nil
	}
	return nil, fmt.Errorf("no schema declared for kind %q", kind)
}

// dateLayouts are the report/schedule date forms the scrapers emit,
// e.g. "Feb. 12, 2026" from WTA report titles.
var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan. 2, 2006",
	"Jan 2, 2006",
}

// canonicalDate normalizes an accepted date form to ISO (2006-01-02).
func canonicalDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date: %q", s)
}

// canonicalValue validates a raw CSV value against its declared type
// and returns its canonical string form.
func canonicalValue(col string, ct colType, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	switch ct {
	case colString:
		return raw, nil
	case colFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", fmt.Errorf("column %s: non-numeric value %q", col, raw)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case colInt:
		i, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return "", fmt.Errorf("column %s: non-integer value %q", col, raw)
		}
		return strconv.Itoa(i), nil
	case colBool:
		b, err := strconv.ParseBool(strings.ToLower(raw))
		if err != nil {
			return "", fmt.Errorf("column %s: non-boolean value %q", col, raw)
		}
		return strconv.FormatBool(b), nil
	case colDate:
		iso, err := canonicalDate(raw)
		if err != nil {
			return "", fmt.Errorf("column %s: %w", col, err)
		}
		return iso, nil
	}
	return raw, nil
}
