package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/trailplan/traildb/pkg/errcode"
)

// ConnectionError creates an error for when the SQLite store cannot
// be opened. This is fatal to the whole operation.
func ConnectionError(path string, err error) error {
	msg := `Cannot open trail database

<em>Database file:</em> %s

<em>Possible causes:</em>
  - Parent directory is not writable
  - File is corrupted or not a SQLite database
  - Another process holds an exclusive lock

<em>How to fix:</em>
  1. Check the database path in config.yaml
  2. Check file and directory permissions`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open store at %s: %w", path, err),
	}
}

// NotConnectedError creates an error for when store access is
// attempted before Connect.
func NotConnectedError() error {
	msg := "Store operation attempted without database connection"

	return &gn.Error{
		Code: errcode.StoreNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to store"),
	}
}

// QueryError creates an error for a failed read query.
func QueryError(table string, err error) error {
	msg := `Query failed on table <em>%s</em>`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.StoreQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("query on %s: %w", table, err),
	}
}
