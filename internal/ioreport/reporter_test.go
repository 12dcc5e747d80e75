package ioreport_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailplan/traildb/internal/iodb"
	"github.com/trailplan/traildb/internal/iomigrate"
	"github.com/trailplan/traildb/internal/ioreport"
	"github.com/trailplan/traildb/pkg/config"
	"github.com/trailplan/traildb/pkg/db"
	"github.com/trailplan/traildb/pkg/schema"
)

func testOperator(t *testing.T) db.Operator {
	t.Helper()
	op := iodb.NewSQLiteOperator()
	cfg := config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "traildb.sqlite"),
	}
	require.NoError(t, op.Connect(context.Background(), &cfg))
	t.Cleanup(func() { _ = op.Close() })
	return op
}

func TestStatus_FreshStore(t *testing.T) {
	ctx := context.Background()
	op := testOperator(t)

	status, err := ioreport.New(op).Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, status.SchemaVersion)
	assert.Empty(t, status.Tables)
}

func TestStatus_Migrated(t *testing.T) {
	ctx := context.Background()
	op := testOperator(t)

	version, err := iomigrate.New(op).Run(ctx)
	require.NoError(t, err)

	status, err := ioreport.New(op).Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, version, status.SchemaVersion)

	require.Len(t, status.Tables, 3)
	names := []string{
		status.Tables[0].Name, status.Tables[1].Name,
		status.Tables[2].Name,
	}
	assert.Equal(t,
		[]string{"trails", "trip_reports", "schedule_entries"}, names)
	for _, ts := range status.Tables {
		assert.Zero(t, ts.Rows)
		assert.Nil(t, ts.LastUpdated)
	}
}

func TestStatus_WithData(t *testing.T) {
	ctx := context.Background()
	op := testOperator(t)

	_, err := iomigrate.New(op).Run(ctx)
	require.NoError(t, err)

	updated := time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)
	trail := schema.Trail{
		WTAURL:        "https://www.wta.org/go-hiking/hikes/mt-si",
		Name:          "Mount Si",
		DistanceMiles: sql.NullFloat64{Float64: 8, Valid: true},
		Source:        "wta",
		ScrapedAt:     updated,
		UpdatedAt:     updated,
	}
	require.NoError(t, op.DB().Create(&trail).Error)

	status, err := ioreport.New(op).Status(ctx)
	require.NoError(t, err)

	require.Len(t, status.Tables, 3)
	trails := status.Tables[0]
	assert.Equal(t, int64(1), trails.Rows)
	require.NotNil(t, trails.LastUpdated)
	assert.Equal(t, updated, trails.LastUpdated.UTC())

	assert.Zero(t, status.Tables[1].Rows)
	assert.Nil(t, status.Tables[1].LastUpdated)
}

func TestStatus_NotConnected(t *testing.T) {
	_, err := ioreport.New(iodb.NewSQLiteOperator()).
		Status(context.Background())
	require.Error(t, err)
}
