package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trailplan/traildb/internal/iobuild"
	"github.com/trailplan/traildb/internal/iodb"
	"github.com/trailplan/traildb/pkg/config"
)

var buildOutDir string

func getBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Renders the static planning site",
		Long: `Renders the static planning site from the current database: the
hiking schedule grouped by season plus one card per trail with its
latest trip report. The output is deterministic - rebuilding an
unchanged database produces byte-identical files.`,
		RunE: runBuild,
	}

	cmd.Flags().StringVarP(&buildOutDir, "out", "o", "",
		"output directory (default from config)")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	if buildOutDir != "" {
		cfg.Update([]config.Option{config.OptBuildOutputDir(buildOutDir)})
	}

	op := iodb.NewSQLiteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	builder := iobuild.New(cfg, op)
	path, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\n✓ Site written to %s\n", path)
	return nil
}
