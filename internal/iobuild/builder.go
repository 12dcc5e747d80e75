// Package iobuild implements the SiteBuilder contract: it renders the
// merged store into one static, self-contained HTML page. The builder
// is deterministic - rebuilding an unchanged store produces
// byte-identical output, which is how rendering parity is verified.
package iobuild

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/trailplan/traildb/pkg/config"
	"github.com/trailplan/traildb/pkg/db"
	"github.com/trailplan/traildb/pkg/lifecycle"
	"github.com/trailplan/traildb/pkg/schema"
	"golang.org/x/sync/errgroup"
)

// builder implements lifecycle.SiteBuilder.
type builder struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a SiteBuilder.
func New(cfg *config.Config, op db.Operator) lifecycle.SiteBuilder {
	return &builder{cfg: cfg, operator: op}
}

// Build reads the current store and writes index.html under the
// configured output directory, returning the file path.
func (b *builder) Build(ctx context.Context) (string, error) {
	gdb := b.operator.DB()
	if gdb == nil {
		return "", NotConnectedError()
	}
	gdb = gdb.WithContext(ctx)

	var (
		trails  []schema.Trail
		reports []schema.TripReport
		entries []schema.ScheduleEntry
	)

	// Read-only loads, safe to run concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := gdb.WithContext(gctx).
			Order("wta_url").Find(&trails).Error
		if err != nil {
			return QueryError("trails", err)
		}
		return nil
	})
	g.Go(func() error {
		err := gdb.WithContext(gctx).
			Order("trail_url, report_date DESC, scraped_at DESC, author").
			Find(&reports).Error
		if err != nil {
			return QueryError("trip_reports", err)
		}
		return nil
	})
	g.Go(func() error {
		err := gdb.WithContext(gctx).
			Order("date").Find(&entries).Error
		if err != nil {
			return QueryError("schedule_entries", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	page := assemble(b.cfg.Build.SiteTitle, trails, reports, entries)

	var buf bytes.Buffer
	if err := siteTmpl.Execute(&buf, page); err != nil {
		return "", TemplateError(err)
	}

	outDir := b.cfg.Build.OutputDir
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", OutputError(outDir, err)
	}
	outPath := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return "", OutputError(outPath, err)
	}

	slog.Info("Site built",
		"path", outPath,
		"trails", len(trails),
		"schedule_entries", len(entries),
		"bytes", buf.Len(),
	)

	return outPath, nil
}
