// Package ioreport implements the read-only StatusReporter contract:
// schema version plus per-table row counts and freshness, taken in a
// single snapshot.
package ioreport

import (
	"context"
	"database/sql"

	"github.com/trailplan/traildb/pkg/db"
	"github.com/trailplan/traildb/pkg/lifecycle"
	"github.com/trailplan/traildb/pkg/schema"
	"gorm.io/gorm"
)

// reporter implements lifecycle.StatusReporter.
type reporter struct {
	operator db.Operator
}

// New creates a StatusReporter.
func New(op db.Operator) lifecycle.StatusReporter {
	return &reporter{operator: op}
}

// entityTables lists reported tables in a fixed display order.
var entityTables = []string{"trails", "trip_reports", "schedule_entries"}

// Status returns a consistent snapshot of the store. All reads happen
// inside one transaction, never interleaved with an import.
func (r *reporter) Status(ctx context.Context) (*lifecycle.Status, error) {
	gdb := r.operator.DB()
	if gdb == nil {
		return nil, NotConnectedError()
	}
	gdb = gdb.WithContext(ctx)

	var res lifecycle.Status
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if tx.Migrator().HasTable(&schema.SchemaMigration{}) {
			err := tx.Model(&schema.SchemaMigration{}).
				Select("COALESCE(MAX(id), 0)").
				Scan(&res.SchemaVersion).Error
			if err != nil {
				return QueryError("schema_migrations", err)
			}
		}

		for _, table := range entityTables {
			if !tx.Migrator().HasTable(table) {
				continue
			}

			ts := lifecycle.TableStatus{Name: table}

			if err := tx.Table(table).Count(&ts.Rows).Error; err != nil {
				return QueryError(table, err)
			}

			var last sql.NullTime
			err := tx.Table(table).
				Select("MAX(updated_at)").
				Scan(&last).Error
			if err != nil {
				return QueryError(table, err)
			}
			if last.Valid {
				t := last.Time.UTC()
				ts.LastUpdated = &t
			}

			res.Tables = append(res.Tables, ts)
		}
		return nil
	}, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}

	return &res, nil
}
