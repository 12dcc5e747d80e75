package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trailplan/traildb/internal/iodb"
	"github.com/trailplan/traildb/internal/iomigrate"
)

func getMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Applies database migrations",
		Long: `Applies all pending schema migrations to bring the trail database
to the latest version. Already-applied migrations are skipped, so the
command is safe to re-run.`,
		RunE: runMigrate,
	}
	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	op := iodb.NewSQLiteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	fmt.Printf("Using database: %s\n", cfg.Database.Path)

	migrator := iomigrate.New(op)

	before, err := migrator.Version(ctx)
	if err != nil {
		return err
	}

	version, err := migrator.Run(ctx)
	if err != nil {
		return err
	}

	if version == before {
		fmt.Printf("Schema already up to date at version %d\n", version)
	} else {
		fmt.Printf("\n✓ Schema migrated from version %d to %d\n",
			before, version)
	}
	return nil
}
