package iomigrate_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailplan/traildb/internal/iodb"
	"github.com/trailplan/traildb/internal/iomigrate"
	"github.com/trailplan/traildb/pkg/config"
	"github.com/trailplan/traildb/pkg/db"
	"gorm.io/gorm"
)

func testOperator(t *testing.T) db.Operator {
	t.Helper()
	op := iodb.NewSQLiteOperator()
	cfg := config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "traildb.sqlite"),
	}
	err := op.Connect(context.Background(), &cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = op.Close() })
	return op
}

func TestRun_FreshStore(t *testing.T) {
	ctx := context.Background()
	op := testOperator(t)
	m := iomigrate.New(op)

	before, err := m.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, before)

	version, err := m.Run(ctx)
	require.NoError(t, err)
	assert.Greater(t, version, 0)

	for _, table := range []string{
		"schema_migrations", "trails", "trip_reports", "schedule_entries",
	} {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, "table %s", table)
	}

	after, err := m.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, version, after)
}

func TestRun_Rerun(t *testing.T) {
	ctx := context.Background()
	op := testOperator(t)
	m := iomigrate.New(op)

	v1, err := m.Run(ctx)
	require.NoError(t, err)
	v2, err := m.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

func TestRun_GapAppliesNothing(t *testing.T) {
	ctx := context.Background()
	op := testOperator(t)
	m := iomigrate.NewWithMigrations(op, []iomigrate.Migration{
		{ID: 1, Name: "create_trails", Up: createTable("trails")},
		{ID: 3, Name: "create_trip_reports", Up: createTable("trip_reports")},
	})

	_, err := m.Run(ctx)
	require.Error(t, err)

	// The gap is detected before any migration runs.
	exists, err := op.TableExists(ctx, "trails")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRun_DuplicateID(t *testing.T) {
	ctx := context.Background()
	op := testOperator(t)
	m := iomigrate.NewWithMigrations(op, []iomigrate.Migration{
		{ID: 1, Name: "one", Up: createTable("trails")},
		{ID: 1, Name: "one_again", Up: createTable("trip_reports")},
	})

	_, err := m.Run(ctx)
	require.Error(t, err)
}

func TestRun_FailureKeepsVersion(t *testing.T) {
	ctx := context.Background()
	op := testOperator(t)
	boom := func(tx *gorm.DB) error {
		return tx.Exec("THIS IS NOT SQL").Error
	}
	m := iomigrate.NewWithMigrations(op, []iomigrate.Migration{
		{ID: 1, Name: "create_trails", Up: createTable("trails")},
		{ID: 2, Name: "broken", Up: boom},
	})

	version, err := m.Run(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, version)

	// The failed migration left no record behind.
	recorded, err := m.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recorded)

	exists, err := op.TableExists(ctx, "trails")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestVersion_NotConnected(t *testing.T) {
	m := iomigrate.New(iodb.NewSQLiteOperator())
	_, err := m.Version(context.Background())
	require.Error(t, err)
}

func createTable(name string) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		return tx.Exec(
			"CREATE TABLE " + name + " (id INTEGER PRIMARY KEY)").Error
	}
}
