package ioimport

import (
	"fmt"
	"strings"
	"time"

	"github.com/trailplan/traildb/pkg/merge"
)

// parseRow validates one CSV row against the declared schema and
// returns its normalized record. The returned error is row-scoped:
// the caller collects it and moves on.
func parseRow(
	spec *rowSpec,
	header []string,
	fields []string,
) (merge.Record, error) {
	var zero merge.Record

	if len(fields) != len(header) {
		return zero, fmt.Errorf(
			"expected %d columns, got %d", len(header), len(fields))
	}

	rec := merge.Record{
		Kind:   spec.kind,
		Values: make(map[string]string),
	}

	for i, col := range header {
		raw := strings.TrimSpace(fields[i])
		if raw == "" {
			continue // absence is not information
		}

		switch col {
		case "source":
			rec.Source = raw
		case "scraped_at":
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return zero, fmt.Errorf(
					"column scraped_at: invalid timestamp %q", raw)
			}
			rec.ScrapedAt = t.UTC()
		default:
			ct, declared := spec.types[col]
			if !declared {
				// Unknown column: preserved verbatim as extra data.
				rec.Values[col] = raw
				continue
			}
			v, err := canonicalValue(col, ct, raw)
			if err != nil {
				return zero, err
			}
			rec.Values[col] = v
		}
	}

	if rec.Source == "" {
		return zero, fmt.Errorf("column source: missing value")
	}
	if rec.ScrapedAt.IsZero() {
		return zero, fmt.Errorf("column scraped_at: missing value")
	}
	for _, col := range spec.required {
		if rec.Values[col] == "" {
			return zero, fmt.Errorf("column %s: missing value", col)
		}
	}

	var keyParts []string
	for _, col := range spec.identityColumns {
		keyParts = append(keyParts, rec.Values[col])
	}
	rec.Key = strings.Join(keyParts, "|")

	return rec, nil
}
