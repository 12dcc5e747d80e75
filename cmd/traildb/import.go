package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/trailplan/traildb/internal/iodb"
	"github.com/trailplan/traildb/internal/ioimport"
	"github.com/trailplan/traildb/pkg/config"
	"github.com/trailplan/traildb/pkg/lifecycle"
	"github.com/trailplan/traildb/pkg/schema"
)

var importKind string

func getImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Imports a scraped CSV file into the database",
		Long: `Imports one CSV file produced by the scrapers into the trail
database. Each row is merged against any existing record of the same
identity; the value with the later scraped_at timestamp wins per
field. Rejected rows are listed in the import summary and never abort
the batch.

Examples:
  traildb import --kind hikes data/raw/wta_hikes_20260215.csv
  traildb import --kind reports data/raw/wta_reports_20260215.csv
  traildb import --kind schedule data/schedule_2026.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().StringVarP(&importKind, "kind", "k", "",
		"entity kind of the file: hikes, reports or schedule")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	cfg.Update([]config.Option{config.OptImportKind(importKind)})
	kind, err := schema.ParseKind(cfg.Import.Kind)
	if err != nil {
		return err
	}

	op := iodb.NewSQLiteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	imp := ioimport.New(cfg, op)
	summary, err := imp.Import(ctx, kind, args[0])
	if summary != nil {
		printSummary(summary)
	}
	if err != nil {
		return err
	}
	return nil
}

// printSummary prints the outcome of the run. Every run gets one,
// even a failed one: silent partial success is a defect.
func printSummary(s *lifecycle.ImportSummary) {
	fmt.Printf("\nImport %s (%s, %s)\n", s.RunID, s.Kind, s.File)
	fmt.Printf("  inserted: %s\n", humanize.Comma(int64(s.Inserted)))
	fmt.Printf("  updated:  %s\n", humanize.Comma(int64(s.Updated)))
	fmt.Printf("  rejected: %s\n", humanize.Comma(int64(s.Rejected)))
	for _, r := range s.Rejections {
		fmt.Printf("    line %d [%s]: %s\n", r.Line, r.Reason, r.Detail)
	}
}
