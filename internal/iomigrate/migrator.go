// Package iomigrate implements the Migrator contract over the SQLite
// store. Migrations are an ordered, uniquely numbered set; each one
// runs in its own transaction and its id is recorded only after the
// action commits, so a failure never advances the version.
package iomigrate

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/trailplan/traildb/pkg/db"
	"github.com/trailplan/traildb/pkg/lifecycle"
	"github.com/trailplan/traildb/pkg/schema"
	"gorm.io/gorm"
)

// Migration is one versioned forward action over the store.
type Migration struct {
	// ID is the migration version, strictly increasing without gaps.
	ID int

	// Name describes the migration in snake_case.
	Name string

	// Up applies the migration inside the given transaction.
	Up func(tx *gorm.DB) error
}

// migrator implements lifecycle.Migrator.
type migrator struct {
	operator   db.Operator
	migrations []Migration
	now        func() time.Time
}

// New creates a Migrator over the built-in migration set.
func New(op db.Operator) lifecycle.Migrator {
	return &migrator{
		operator:   op,
		migrations: registry(),
		now:        time.Now,
	}
}

// NewWithMigrations creates a Migrator over an explicit migration
// set. Used by tests to exercise gaps and failures.
func NewWithMigrations(op db.Operator, ms []Migration) lifecycle.Migrator {
	return &migrator{operator: op, migrations: ms, now: time.Now}
}

// Run applies all pending migrations in ascending id order and
// returns the resulting schema version. Re-running with nothing
// pending is a no-op.
func (m *migrator) Run(ctx context.Context) (int, error) {
	gdb := m.operator.DB()
	if gdb == nil {
		return 0, NotConnectedError()
	}
	gdb = gdb.WithContext(ctx)

	ms := make([]Migration, len(m.migrations))
	copy(ms, m.migrations)
	sort.Slice(ms, func(i, j int) bool { return ms[i].ID < ms[j].ID })

	// The sequence must be contiguous starting at 1. A gap means a
	// migration file went missing; nothing is applied in that case.
	for i, mig := range ms {
		if mig.ID != i+1 {
			if i > 0 && mig.ID == ms[i-1].ID {
				return 0, DuplicateError(mig.ID)
			}
			return 0, GapError(i+1, mig.ID)
		}
	}

	// The migrations table itself is bootstrapped outside the
	// versioned sequence.
	if err := gdb.AutoMigrate(&schema.SchemaMigration{}); err != nil {
		return 0, VersionError(err)
	}

	version, err := m.version(gdb)
	if err != nil {
		return 0, err
	}

	for _, mig := range ms {
		if mig.ID <= version {
			continue
		}

		slog.Info("Applying migration",
			"id", mig.ID, "name", mig.Name)

		err := gdb.Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return err
			}
			rec := schema.SchemaMigration{
				ID:        mig.ID,
				Name:      mig.Name,
				AppliedAt: m.now().UTC(),
			}
			return tx.Create(&rec).Error
		})
		if err != nil {
			// Version stays at the last fully-applied migration.
			return version, FailedError(mig.ID, mig.Name, err)
		}

		version = mig.ID
	}

	return version, nil
}

// Version returns the highest applied migration id, 0 for a fresh
// store.
func (m *migrator) Version(ctx context.Context) (int, error) {
	gdb := m.operator.DB()
	if gdb == nil {
		return 0, NotConnectedError()
	}
	gdb = gdb.WithContext(ctx)

	if !gdb.Migrator().HasTable(&schema.SchemaMigration{}) {
		return 0, nil
	}
	return m.version(gdb)
}

func (m *migrator) version(gdb *gorm.DB) (int, error) {
	var version int
	err := gdb.Model(&schema.SchemaMigration{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&version).Error
	if err != nil {
		return 0, VersionError(err)
	}
	return version, nil
}
