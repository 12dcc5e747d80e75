// Package lifecycle defines the contracts for the phases of the
// traildb pipeline: migrate, import, status and build. Implementations
// live in internal/io* packages; this package stays free of I/O.
package lifecycle

import (
	"context"

	"github.com/trailplan/traildb/pkg/schema"
)

// Migrator applies versioned schema migrations in ascending id order.
// Concurrent runs are not supported; callers guarantee exclusive
// access to the store.
type Migrator interface {
	// Run applies every pending migration and returns the resulting
	// schema version. Already-applied ids are skipped, so re-running
	// with nothing pending is a no-op. A gap in the id sequence or a
	// failed action aborts the run without advancing the version.
	Run(ctx context.Context) (int, error)

	// Version returns the highest applied migration id, 0 for a fresh
	// store.
	Version(ctx context.Context) (int, error)
}

// Importer reads one CSV file of a declared entity kind into the
// store, merging each row against any existing record of the same
// identity.
type Importer interface {
	// Import processes every row of the file. Row-level failures are
	// collected into the summary and never abort the batch; the error
	// return is reserved for unreadable input and store failures.
	Import(ctx context.Context, kind schema.Kind, path string) (*ImportSummary, error)
}

// StatusReporter produces a read-only snapshot of the store.
type StatusReporter interface {
	Status(ctx context.Context) (*Status, error)
}

// SiteBuilder renders the static site from the current store.
// Building twice against an unchanged store produces byte-identical
// output.
type SiteBuilder interface {
	// Build writes the site and returns the path of the rendered page.
	Build(ctx context.Context) (string, error)
}
