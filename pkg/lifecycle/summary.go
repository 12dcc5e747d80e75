package lifecycle

import (
	"time"
)

// RejectReason classifies why a row was rejected.
type RejectReason string

const (
	// RejectValidation marks a missing or malformed required field.
	RejectValidation RejectReason = "validation"
	// RejectReference marks a row referencing an unknown trail.
	RejectReference RejectReason = "reference"
)

// Rejection describes one rejected row of an import batch.
type Rejection struct {
	// Line is the 1-based line number in the CSV file, header
	// included.
	Line int `json:"line"`

	// Reason classifies the failure.
	Reason RejectReason `json:"reason"`

	// Detail is a human-readable explanation.
	Detail string `json:"detail"`
}

// ImportSummary is the outcome of one import batch. Every run produces
// one; silent partial success is treated as a defect.
type ImportSummary struct {
	// RunID uniquely identifies the import operation.
	RunID string `json:"run_id"`

	// Kind is the entity kind name of the batch.
	Kind string `json:"kind"`

	// File is the path of the imported CSV file.
	File string `json:"file"`

	// Inserted counts rows that created a new record.
	Inserted int `json:"inserted"`

	// Updated counts rows merged into an existing record.
	Updated int `json:"updated"`

	// Rejected counts rows that failed validation or reference checks.
	Rejected int `json:"rejected"`

	// Rejections lists every rejected row with its reason.
	Rejections []Rejection `json:"rejections,omitempty"`
}

// TableStatus is the per-table part of a status report.
type TableStatus struct {
	// Name is the table name.
	Name string `json:"name"`

	// Rows is the current row count.
	Rows int64 `json:"rows"`

	// LastUpdated is the most recent updated_at across the table's
	// rows; nil for an empty table.
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// Status is a consistent snapshot of the store: schema version plus
// per-table counts, never taken mid-import.
type Status struct {
	// SchemaVersion is the highest applied migration id.
	SchemaVersion int `json:"schema_version"`

	// Tables lists entity tables in a fixed order.
	Tables []TableStatus `json:"tables"`
}
