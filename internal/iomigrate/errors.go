package iomigrate

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/trailplan/traildb/pkg/errcode"
)

// NotConnectedError creates an error for when migration is attempted
// without a store connection.
func NotConnectedError() error {
	msg := "Migration attempted without database connection"

	return &gn.Error{
		Code: errcode.StoreNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to store"),
	}
}

// GapError creates an error for a hole in the migration id sequence.
// Nothing is applied when the sequence has a gap.
func GapError(expected, got int) error {
	msg := `Migration sequence has a gap

<em>Expected id:</em> %d
<em>Found id:</em> %d

<em>How to fix:</em>
  1. Check that no migration was removed from the registry
  2. Renumber only migrations that were never published`

	vars := []any{expected, got}

	return &gn.Error{
		Code: errcode.MigrationGapError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("migration sequence gap: expected %d, got %d",
			expected, got),
	}
}

// DuplicateError creates an error for a repeated migration id.
func DuplicateError(id int) error {
	msg := `Migration id <em>%d</em> appears more than once`
	vars := []any{id}

	return &gn.Error{
		Code: errcode.MigrationDuplicateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("duplicate migration id %d", id),
	}
}

// FailedError creates an error for a migration whose action failed.
// The version is not advanced; the store keeps the last fully-applied
// state.
func FailedError(id int, name string, err error) error {
	msg := `Migration <em>%d (%s)</em> failed; schema version not advanced`
	vars := []any{id, name}

	return &gn.Error{
		Code: errcode.MigrationFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("migration %d (%s): %w", id, name, err),
	}
}

// VersionError creates an error for a failed read or write of the
// schema_migrations table.
func VersionError(err error) error {
	msg := "Cannot read schema version"

	return &gn.Error{
		Code: errcode.MigrationVersionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("schema version: %w", err),
	}
}
