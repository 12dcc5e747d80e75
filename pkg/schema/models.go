// Package schema provides database schema models for traildb.
// Models map one-to-one to the CSV rows produced by the WTA scrapers.
package schema

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

// Trail is the current observation of a single hike.
// One row per identity; field-level history is not retained, only the
// last winning value per field.
type Trail struct {
	// WTAURL is the canonical trail page URL and the identity key.
	WTAURL string `gorm:"column:wta_url;primaryKey" db:"wta_url"`

	// Name is the trail name as shown on the source page.
	Name string `gorm:"column:name" db:"name"`

	// Location is the region the trail belongs to.
	Location string `gorm:"column:location" db:"location"`

	// DistanceMiles is the roundtrip distance.
	DistanceMiles sql.NullFloat64 `gorm:"column:distance_miles" db:"distance_miles"`

	// ElevationGainFt is the total elevation gain.
	ElevationGainFt sql.NullInt64 `gorm:"column:elevation_gain_ft" db:"elevation_gain_ft"`

	// HighestPointFt is the elevation of the highest point.
	HighestPointFt sql.NullInt64 `gorm:"column:highest_point_ft" db:"highest_point_ft"`

	// DriveTimeMin is the drive time from home in minutes.
	// Not produced by the scrapers; imports from an optional column.
	DriveTimeMin sql.NullInt64 `gorm:"column:drive_time_min" db:"drive_time_min"`

	// Difficulty is the source's difficulty label.
	Difficulty string `gorm:"column:difficulty" db:"difficulty"`

	// TrailType is out-and-back, loop, etc.
	TrailType string `gorm:"column:trail_type" db:"trail_type"`

	// RequiredPass names the pass or permit needed at the trailhead.
	RequiredPass string `gorm:"column:required_pass" db:"required_pass"`

	// DogsAllowed is true when leashed dogs are permitted.
	DogsAllowed sql.NullBool `gorm:"column:dogs_allowed" db:"dogs_allowed"`

	// KidFriendly is true when the source tags the hike as kid friendly.
	KidFriendly sql.NullBool `gorm:"column:kid_friendly" db:"kid_friendly"`

	// SeasonWindow is the seasonal access window, free text.
	SeasonWindow string `gorm:"column:season_window" db:"season_window"`

	// Highlight is a one-sentence teaser for the trail.
	Highlight string `gorm:"column:highlight" db:"highlight"`

	// Extras holds unknown CSV columns as opaque data. They take part
	// in merges but never redefine the declared schema.
	Extras datatypes.JSONMap `gorm:"column:extras" db:"extras"`

	// Source labels the scraper that produced the winning observation.
	Source string `gorm:"column:source" db:"source"`

	// ScrapedAt is when the winning observation was captured.
	ScrapedAt time.Time `gorm:"column:scraped_at" db:"scraped_at"`

	// UpdatedAt is when the stored record last changed.
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime:false" db:"updated_at"`
}

// TripReport is a single trip report for a trail.
type TripReport struct {
	// TrailURL references the Trail identity key.
	TrailURL string `gorm:"column:trail_url;primaryKey" db:"trail_url"`

	// ReportDate is the report date in ISO form (2006-01-02).
	ReportDate string `gorm:"column:report_date;primaryKey" db:"report_date"`

	// Author is the report author's display name.
	Author string `gorm:"column:author;primaryKey" db:"author"`

	// Conditions is the "Beware of" text from the report listing.
	Conditions string `gorm:"column:conditions" db:"conditions"`

	// SnowLevel is free text; empty for sources without a snow field.
	SnowLevel string `gorm:"column:snow_level" db:"snow_level"`

	// Summary is the report body text or excerpt.
	Summary string `gorm:"column:summary" db:"summary"`

	Extras datatypes.JSONMap `gorm:"column:extras" db:"extras"`

	Source    string    `gorm:"column:source" db:"source"`
	ScrapedAt time.Time `gorm:"column:scraped_at" db:"scraped_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime:false" db:"updated_at"`
}

// ScheduleEntry assigns a trail to a date of the planned range.
// Exactly one entry per date.
type ScheduleEntry struct {
	// Date is the planned hike date in ISO form and the identity key.
	Date string `gorm:"column:date;primaryKey" db:"date"`

	// TrailURL references the Trail identity key.
	TrailURL string `gorm:"column:trail_url" db:"trail_url"`

	// Season is the season label the entry is grouped under.
	Season string `gorm:"column:season" db:"season"`

	Extras datatypes.JSONMap `gorm:"column:extras" db:"extras"`

	Source    string    `gorm:"column:source" db:"source"`
	ScrapedAt time.Time `gorm:"column:scraped_at" db:"scraped_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime:false" db:"updated_at"`
}

// SchemaMigration records one applied migration.
// The schema version is the highest applied id; it only grows.
type SchemaMigration struct {
	ID        int       `gorm:"column:id;primaryKey" db:"id"`
	Name      string    `gorm:"column:name" db:"name"`
	AppliedAt time.Time `gorm:"column:applied_at" db:"applied_at"`
}

// TableName overrides the gorm pluralization for the migrations table.
func (SchemaMigration) TableName() string {
	return "schema_migrations"
}
