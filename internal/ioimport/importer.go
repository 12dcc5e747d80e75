// Package ioimport implements the Importer contract: it streams CSV
// rows produced by the scrapers into the SQLite store, resolving
// conflicts per field through pkg/merge. This is an impure I/O
// package.
package ioimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"github.com/trailplan/traildb/pkg/config"
	"github.com/trailplan/traildb/pkg/db"
	"github.com/trailplan/traildb/pkg/lifecycle"
	"github.com/trailplan/traildb/pkg/merge"
	"github.com/trailplan/traildb/pkg/schema"
	"gorm.io/gorm"
)

// importer implements lifecycle.Importer.
type importer struct {
	cfg      *config.Config
	operator db.Operator
	policy   *merge.Policy
	now      func() time.Time
}

// New creates an Importer with the default resolution policy:
// per field the later scraped_at wins, except the trail highlight
// where the longer text wins regardless of timestamps.
func New(cfg *config.Config, op db.Operator) lifecycle.Importer {
	policy := merge.NewPolicy()
	policy.Register("hikes", "highlight", merge.PreferLonger)

	return &importer{
		cfg:      cfg,
		operator: op,
		policy:   policy,
		now:      time.Now,
	}
}

// Import processes every row of the CSV file. Row-level failures are
// collected into the summary; the batch aborts only on unreadable
// input or a store failure. Each accepted row commits on its own, so
// an aborted run leaves prior rows fully applied.
func (im *importer) Import(
	ctx context.Context,
	kind schema.Kind,
	path string,
) (*lifecycle.ImportSummary, error) {
	gdb := im.operator.DB()
	if gdb == nil {
		return nil, WriteError(0, errors.New("not connected to store"))
	}
	gdb = gdb.WithContext(ctx)

	spec, err := specFor(kind)
	if err != nil {
		return nil, KindError(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, FileError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, FileError(path, err)
	}

	bar := pb.Full.Start64(info.Size())
	bar.SetWriter(os.Stderr)
	defer bar.Finish()

	r := csv.NewReader(bar.NewProxyReader(f))
	r.FieldsPerRecord = -1 // column count checked per row

	header, err := r.Read()
	if err != nil {
		return nil, FileError(path, err)
	}
	if missing := missingColumns(spec, header); len(missing) > 0 {
		return nil, HeaderError(path, missing)
	}

	summary := &lifecycle.ImportSummary{
		RunID: uuid.NewString(),
		Kind:  kind.String(),
		File:  path,
	}

	opTime := im.now().UTC()
	slog.Info("Starting import",
		"run_id", summary.RunID, "kind", summary.Kind, "file", path)

	trailCache := make(map[string]bool)
	line := 1 // header line

	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		line++

		select {
		case <-ctx.Done():
			return summary, CancelledError(ctx.Err())
		default:
		}

		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				im.reject(summary, line, lifecycle.RejectValidation,
					"inconsistent column count")
				continue
			}
			return summary, FileError(path, err)
		}

		rec, err := parseRow(spec, header, fields)
		if err != nil {
			im.reject(summary, line, lifecycle.RejectValidation,
				err.Error())
			continue
		}

		if spec.referenceColumn != "" {
			trailURL := rec.Values[spec.referenceColumn]
			ok, err := im.trailExists(gdb, trailURL, trailCache)
			if err != nil {
				return summary, WriteError(line, err)
			}
			if !ok {
				im.reject(summary, line, lifecycle.RejectReference,
					fmt.Sprintf("unknown trail: %s", trailURL))
				continue
			}
		}

		inserted, err := im.applyRow(gdb, kind, rec, opTime)
		if err != nil {
			return summary, WriteError(line, err)
		}
		if inserted {
			summary.Inserted++
		} else {
			summary.Updated++
		}

		rows := summary.Inserted + summary.Updated
		if bs := im.cfg.Database.BatchSize; bs > 0 && rows%bs == 0 {
			slog.Info("Import progress",
				"run_id", summary.RunID, "rows", rows)
		}
	}

	slog.Info("Import finished",
		"run_id", summary.RunID,
		"inserted", summary.Inserted,
		"updated", summary.Updated,
		"rejected", summary.Rejected,
	)

	return summary, nil
}

func (im *importer) reject(
	s *lifecycle.ImportSummary,
	line int,
	reason lifecycle.RejectReason,
	detail string,
) {
	s.Rejected++
	s.Rejections = append(s.Rejections, lifecycle.Rejection{
		Line:   line,
		Reason: reason,
		Detail: detail,
	})
	slog.Debug("Rejected row",
		"line", line, "reason", reason, "detail", detail)
}

// missingColumns returns required columns absent from the header.
func missingColumns(spec *rowSpec, header []string) []string {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	var missing []string
	required := append([]string{}, spec.required...)
	required = append(required, "source", "scraped_at")
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// trailExists checks the dependency table, caching lookups for the
// batch. The trails table does not change during a reports or
// schedule import, so the cache cannot go stale mid-run.
func (im *importer) trailExists(
	gdb *gorm.DB,
	trailURL string,
	cache map[string]bool,
) (bool, error) {
	if ok, cached := cache[trailURL]; cached {
		return ok, nil
	}

	var n int64
	err := gdb.Model(&schema.Trail{}).
		Where("wta_url = ?", trailURL).
		Count(&n).Error
	if err != nil {
		return false, err
	}

	cache[trailURL] = n > 0
	return n > 0, nil
}

// applyRow inserts a fresh identity or merges into an existing one.
// Every mutation is a single-row write, atomic on its own.
func (im *importer) applyRow(
	gdb *gorm.DB,
	kind schema.Kind,
	rec merge.Record,
	opTime time.Time,
) (bool, error) {
	switch kind {
	case schema.KindHikes:
		return im.applyHike(gdb, rec, opTime)
	case schema.KindReports:
		return im.applyReport(gdb, rec, opTime)
	case schema.KindSchedule:
		return im.applySchedule(gdb, rec, opTime)
	}
	return false, fmt.Errorf("no writer for kind %q", kind)
}

func (im *importer) applyHike(
	gdb *gorm.DB,
	rec merge.Record,
	opTime time.Time,
) (bool, error) {
	var existing schema.Trail
	err := gdb.Where("wta_url = ?", rec.Key).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		model, err := trailFromRecord(rec)
		if err != nil {
			return false, err
		}
		model.UpdatedAt = opTime
		return true, gdb.Create(model).Error
	}
	if err != nil {
		return false, err
	}

	merged, err := merge.Merge(im.policy, trailToRecord(&existing), rec)
	if err != nil {
		return false, err
	}
	model, err := trailFromRecord(merged)
	if err != nil {
		return false, err
	}
	model.UpdatedAt = opTime
	return false, gdb.Save(model).Error
}

func (im *importer) applyReport(
	gdb *gorm.DB,
	rec merge.Record,
	opTime time.Time,
) (bool, error) {
	var existing schema.TripReport
	err := gdb.Where(
		"trail_url = ? AND report_date = ? AND author = ?",
		rec.Values["trail_url"],
		rec.Values["report_date"],
		rec.Values["author"],
	).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		model, err := reportFromRecord(rec)
		if err != nil {
			return false, err
		}
		model.UpdatedAt = opTime
		return true, gdb.Create(model).Error
	}
	if err != nil {
		return false, err
	}

	merged, err := merge.Merge(im.policy, reportToRecord(&existing), rec)
	if err != nil {
		return false, err
	}
	model, err := reportFromRecord(merged)
	if err != nil {
		return false, err
	}
	model.UpdatedAt = opTime
	return false, gdb.Save(model).Error
}

func (im *importer) applySchedule(
	gdb *gorm.DB,
	rec merge.Record,
	opTime time.Time,
) (bool, error) {
	var existing schema.ScheduleEntry
	err := gdb.Where("date = ?", rec.Key).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		model, err := scheduleFromRecord(rec)
		if err != nil {
			return false, err
		}
		model.UpdatedAt = opTime
		return true, gdb.Create(model).Error
	}
	if err != nil {
		return false, err
	}

	merged, err := merge.Merge(im.policy, scheduleToRecord(&existing), rec)
	if err != nil {
		return false, err
	}
	model, err := scheduleFromRecord(merged)
	if err != nil {
		return false, err
	}
	model.UpdatedAt = opTime
	return false, gdb.Save(model).Error
}
