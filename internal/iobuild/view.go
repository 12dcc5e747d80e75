package iobuild

import (
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/trailplan/traildb/pkg/schema"
)

// Page is the root of the template data.
type Page struct {
	Title   string
	Seasons []SeasonView
	Trails  []TrailCard
}

// SeasonView groups schedule entries under one season label.
type SeasonView struct {
	Name    string
	Entries []EntryView
}

// EntryView is one scheduled hike, joined to its trail.
type EntryView struct {
	Date      string
	TrailName string
	TrailURL  string
	Distance  string
	Elevation string
}

// TrailCard is one trail with its latest report.
type TrailCard struct {
	Name         string
	URL          string
	Location     string
	Difficulty   string
	RequiredPass string
	SeasonWindow string
	Highlight    string

	// Display strings plus raw sort keys for the client-side sorter.
	Distance     string
	DistanceVal  string
	Elevation    string
	ElevationVal string
	DriveTime    string
	DriveTimeVal string

	LatestReport *ReportView
}

// ReportView is the most recent trip report of a trail.
type ReportView struct {
	Date       string
	Author     string
	Conditions string
	SnowLevel  string
	Summary    string
}

// assemble joins the three datasets into the page view. Every slice
// is sorted explicitly so rendering stays deterministic.
func assemble(
	title string,
	trails []schema.Trail,
	reports []schema.TripReport,
	entries []schema.ScheduleEntry,
) *Page {
	byURL := make(map[string]*schema.Trail, len(trails))
	for i := range trails {
		byURL[trails[i].WTAURL] = &trails[i]
	}

	// Reports arrive sorted by trail, then report date desc, then
	// scraped_at desc: the first report seen per trail is the latest.
	latest := make(map[string]*schema.TripReport, len(trails))
	for i := range reports {
		r := &reports[i]
		if _, ok := latest[r.TrailURL]; !ok {
			latest[r.TrailURL] = r
		}
	}

	page := &Page{Title: title}

	for i := range trails {
		t := &trails[i]
		card := TrailCard{
			Name:         t.Name,
			URL:          t.WTAURL,
			Location:     t.Location,
			Difficulty:   t.Difficulty,
			RequiredPass: t.RequiredPass,
			SeasonWindow: t.SeasonWindow,
			Highlight:    t.Highlight,
		}
		if t.DistanceMiles.Valid {
			card.DistanceVal = strconv.FormatFloat(
				t.DistanceMiles.Float64, 'f', -1, 64)
			card.Distance = card.DistanceVal + " mi"
		}
		if t.ElevationGainFt.Valid {
			card.ElevationVal = strconv.FormatInt(
				t.ElevationGainFt.Int64, 10)
			card.Elevation = humanize.Comma(
				t.ElevationGainFt.Int64) + " ft"
		}
		if t.DriveTimeMin.Valid {
			card.DriveTimeVal = strconv.FormatInt(
				t.DriveTimeMin.Int64, 10)
			card.DriveTime = card.DriveTimeVal + " min"
		}
		if r, ok := latest[t.WTAURL]; ok {
			card.LatestReport = &ReportView{
				Date:       r.ReportDate,
				Author:     r.Author,
				Conditions: r.Conditions,
				SnowLevel:  r.SnowLevel,
				Summary:    r.Summary,
			}
		}
		page.Trails = append(page.Trails, card)
	}
	sort.Slice(page.Trails, func(i, j int) bool {
		a, b := page.Trails[i], page.Trails[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.URL < b.URL
	})

	// Seasons keep their label; ordering follows the earliest entry
	// date, so the page reads chronologically. Entries arrive sorted
	// by date already.
	seasonIdx := make(map[string]int)
	for i := range entries {
		e := &entries[i]
		idx, ok := seasonIdx[e.Season]
		if !ok {
			idx = len(page.Seasons)
			seasonIdx[e.Season] = idx
			page.Seasons = append(page.Seasons, SeasonView{Name: e.Season})
		}

		view := EntryView{
			Date:     e.Date,
			TrailURL: e.TrailURL,
		}
		if t, ok := byURL[e.TrailURL]; ok {
			view.TrailName = t.Name
			if t.DistanceMiles.Valid {
				view.Distance = strconv.FormatFloat(
					t.DistanceMiles.Float64, 'f', -1, 64) + " mi"
			}
			if t.ElevationGainFt.Valid {
				view.Elevation = humanize.Comma(
					t.ElevationGainFt.Int64) + " ft"
			}
		}
		page.Seasons[idx].Entries = append(page.Seasons[idx].Entries, view)
	}

	return page
}
