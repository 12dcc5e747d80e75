package iomigrate

import (
	"github.com/trailplan/traildb/pkg/schema"
	"gorm.io/gorm"
)

// registry returns the full ordered migration set for the trail
// store. New migrations append to the end with the next id; published
// ids never change.
func registry() []Migration {
	return []Migration{
		{
			ID:   1,
			Name: "create_trails",
			Up: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&schema.Trail{})
			},
		},
		{
			ID:   2,
			Name: "create_trip_reports",
			Up: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&schema.TripReport{})
			},
		},
		{
			ID:   3,
			Name: "create_schedule_entries",
			Up: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&schema.ScheduleEntry{})
			},
		},
		{
			ID:   4,
			Name: "index_reports_and_schedule_by_trail",
			Up: func(tx *gorm.DB) error {
				err := tx.Exec(
					"CREATE INDEX idx_trip_reports_trail_url " +
						"ON trip_reports (trail_url)").Error
				if err != nil {
					return err
				}
				return tx.Exec(
					"CREATE INDEX idx_schedule_entries_trail_url " +
						"ON schedule_entries (trail_url)").Error
			},
		},
	}
}
