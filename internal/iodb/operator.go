// Package iodb implements store access using gorm over a local SQLite
// file. This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"os"
	"path/filepath"

	"github.com/trailplan/traildb/pkg/config"
	"github.com/trailplan/traildb/pkg/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqliteOperator implements db.Operator over a SQLite file.
type sqliteOperator struct {
	db *gorm.DB
}

// NewSQLiteOperator creates a new store operator
// (without connecting).
func NewSQLiteOperator() db.Operator {
	return &sqliteOperator{}
}

// Connect opens the SQLite database file, creating parent directories
// as needed. The pipeline is single-writer, so the connection pool is
// capped at one open connection.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	if cfg.Path == "" {
		return ConnectionError(cfg.Path,
			os.ErrNotExist)
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ConnectionError(cfg.Path, err)
	}

	gormDB, err := gorm.Open(
		sqlite.Open(cfg.Path),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	if err != nil {
		return ConnectionError(cfg.Path, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return ConnectionError(cfg.Path, err)
	}
	// Single-operator workflow: one writer, no pool.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return ConnectionError(cfg.Path, err)
	}

	s.db = gormDB
	return nil
}

// Close releases the database handle.
func (s *sqliteOperator) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB returns the underlying gorm handle, nil before Connect.
func (s *sqliteOperator) DB() *gorm.DB {
	return s.db
}

// TableExists checks if a table exists in the store.
func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	exists := s.db.WithContext(ctx).Migrator().HasTable(tableName)
	return exists, nil
}
