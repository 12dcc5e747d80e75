package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/trailplan/traildb/internal/iodb"
	"github.com/trailplan/traildb/internal/ioreport"
)

func getStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Shows schema version and per-table counts",
		Long: `Shows the current schema version and, for each entity table, the
row count and the most recent update time. Read-only: the command
never modifies the database.`,
		RunE: runStatus,
	}
	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	op := iodb.NewSQLiteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	reporter := ioreport.New(op)
	status, err := reporter.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Database:       %s\n", cfg.Database.Path)
	fmt.Printf("Schema version: %d\n", status.SchemaVersion)
	for _, t := range status.Tables {
		last := "never"
		if t.LastUpdated != nil {
			last = humanize.Time(*t.LastUpdated)
		}
		fmt.Printf("  %-18s %8s rows  (updated %s)\n",
			t.Name, humanize.Comma(t.Rows), last)
	}
	return nil
}
