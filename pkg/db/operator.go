// Package db defines the contract for access to the local SQLite
// store. The store exclusively owns all entity rows; every component
// reaches it through an Operator.
package db

import (
	"context"

	"github.com/trailplan/traildb/pkg/config"
	"gorm.io/gorm"
)

// Operator manages the store connection lifecycle.
type Operator interface {
	// Connect opens (and creates if missing) the SQLite database file.
	Connect(ctx context.Context, cfg *config.DatabaseConfig) error

	// Close releases the underlying database handle.
	Close() error

	// DB returns the gorm handle, nil before Connect.
	DB() *gorm.DB

	// TableExists checks if a table exists in the store.
	TableExists(ctx context.Context, tableName string) (bool, error)
}
