package ioimport

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/trailplan/traildb/pkg/merge"
	"github.com/trailplan/traildb/pkg/schema"
	"gorm.io/datatypes"
)

// The functions here convert between stored gorm models and the
// normalized records the resolver works on. Canonical string forms
// round-trip exactly, so converting a stored record and back is
// lossless.

func extrasOf(spec *rowSpec, vals map[string]string) datatypes.JSONMap {
	var res datatypes.JSONMap
	for k, v := range vals {
		if _, declared := spec.types[k]; declared {
			continue
		}
		if res == nil {
			res = datatypes.JSONMap{}
		}
		res[k] = v
	}
	return res
}

func mergeExtras(vals map[string]string, extras datatypes.JSONMap) {
	for k, v := range extras {
		if s, ok := v.(string); ok && s != "" {
			vals[k] = s
		}
	}
}

func trailToRecord(t *schema.Trail) merge.Record {
	vals := map[string]string{
		"wta_url":       t.WTAURL,
		"trail_name":    t.Name,
		"location":      t.Location,
		"difficulty":    t.Difficulty,
		"trail_type":    t.TrailType,
		"required_pass": t.RequiredPass,
		"season_window": t.SeasonWindow,
		"highlight":     t.Highlight,
	}
	if t.DistanceMiles.Valid {
		vals["distance_miles"] = strconv.FormatFloat(
			t.DistanceMiles.Float64, 'f', -1, 64)
	}
	if t.ElevationGainFt.Valid {
		vals["elevation_gain_ft"] = strconv.FormatInt(
			t.ElevationGainFt.Int64, 10)
	}
	if t.HighestPointFt.Valid {
		vals["highest_point_ft"] = strconv.FormatInt(
			t.HighestPointFt.Int64, 10)
	}
	if t.DriveTimeMin.Valid {
		vals["drive_time_min"] = strconv.FormatInt(
			t.DriveTimeMin.Int64, 10)
	}
	if t.DogsAllowed.Valid {
		vals["dogs_allowed"] = strconv.FormatBool(t.DogsAllowed.Bool)
	}
	if t.KidFriendly.Valid {
		vals["kid_friendly"] = strconv.FormatBool(t.KidFriendly.Bool)
	}
	mergeExtras(vals, t.Extras)
	dropEmpty(vals)

	return merge.Record{
		Kind:      hikesSpec.kind,
		Key:       t.WTAURL,
		Source:    t.Source,
		ScrapedAt: t.ScrapedAt,
		Values:    vals,
	}
}

func trailFromRecord(rec merge.Record) (*schema.Trail, error) {
	t := &schema.Trail{
		WTAURL:       rec.Values["wta_url"],
		Name:         rec.Values["trail_name"],
		Location:     rec.Values["location"],
		Difficulty:   rec.Values["difficulty"],
		TrailType:    rec.Values["trail_type"],
		RequiredPass: rec.Values["required_pass"],
		SeasonWindow: rec.Values["season_window"],
		Highlight:    rec.Values["highlight"],
		Extras:       extrasOf(&hikesSpec, rec.Values),
		Source:       rec.Source,
		ScrapedAt:    rec.ScrapedAt,
	}

	if v, ok := rec.Values["distance_miles"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		t.DistanceMiles = sql.NullFloat64{Float64: f, Valid: true}
	}
	for col, dst := range map[string]*sql.NullInt64{
		"elevation_gain_ft": &t.ElevationGainFt,
		"highest_point_ft":  &t.HighestPointFt,
		"drive_time_min":    &t.DriveTimeMin,
	} {
		if v, ok := rec.Values[col]; ok {
			i, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, err
			}
			*dst = sql.NullInt64{Int64: i, Valid: true}
		}
	}
	for col, dst := range map[string]*sql.NullBool{
		"dogs_allowed": &t.DogsAllowed,
		"kid_friendly": &t.KidFriendly,
	} {
		if v, ok := rec.Values[col]; ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, err
			}
			*dst = sql.NullBool{Bool: b, Valid: true}
		}
	}

	return t, nil
}

func reportToRecord(r *schema.TripReport) merge.Record {
	vals := map[string]string{
		"trail_url":    r.TrailURL,
		"report_date":  r.ReportDate,
		"author":       r.Author,
		"conditions":   r.Conditions,
		"snow_level":   r.SnowLevel,
		"text_summary": r.Summary,
	}
	mergeExtras(vals, r.Extras)
	dropEmpty(vals)

	return merge.Record{
		Kind: reportsSpec.kind,
		Key: strings.Join(
			[]string{r.TrailURL, r.ReportDate, r.Author}, "|"),
		Source:    r.Source,
		ScrapedAt: r.ScrapedAt,
		Values:    vals,
	}
}

func reportFromRecord(rec merge.Record) (*schema.TripReport, error) {
	return &schema.TripReport{
		TrailURL:   rec.Values["trail_url"],
		ReportDate: rec.Values["report_date"],
		Author:     rec.Values["author"],
		Conditions: rec.Values["conditions"],
		SnowLevel:  rec.Values["snow_level"],
		Summary:    rec.Values["text_summary"],
		Extras:     extrasOf(&reportsSpec, rec.Values),
		Source:     rec.Source,
		ScrapedAt:  rec.ScrapedAt,
	}, nil
}

func scheduleToRecord(e *schema.ScheduleEntry) merge.Record {
	vals := map[string]string{
		"date":      e.Date,
		"trail_url": e.TrailURL,
		"season":    e.Season,
	}
	mergeExtras(vals, e.Extras)
	dropEmpty(vals)

	return merge.Record{
		Kind:      scheduleSpec.kind,
		Key:       e.Date,
		Source:    e.Source,
		ScrapedAt: e.ScrapedAt,
		Values:    vals,
	}
}

func scheduleFromRecord(rec merge.Record) (*schema.ScheduleEntry, error) {
	return &schema.ScheduleEntry{
		Date:      rec.Values["date"],
		TrailURL:  rec.Values["trail_url"],
		Season:    rec.Values["season"],
		Extras:    extrasOf(&scheduleSpec, rec.Values),
		Source:    rec.Source,
		ScrapedAt: rec.ScrapedAt,
	}, nil
}

func dropEmpty(vals map[string]string) {
	for k, v := range vals {
		if v == "" {
			delete(vals, k)
		}
	}
}
