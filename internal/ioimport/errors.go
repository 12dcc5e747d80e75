package ioimport

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/trailplan/traildb/pkg/errcode"
)

// KindError creates an error for an entity kind without a declared
// schema.
func KindError(err error) error {
	msg := `Unknown entity kind

<em>Valid kinds:</em> hikes, reports, schedule`

	return &gn.Error{
		Code: errcode.ImportKindError,
		Msg:  msg,
		Vars: nil,
		Err:  err,
	}
}

// FileError creates an error for unreadable input. Fatal to the
// batch, unlike row-level failures.
func FileError(path string, err error) error {
	msg := `Cannot read CSV file

<em>File path:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Permission denied
  - Malformed CSV (unterminated quote, bad encoding)

<em>How to fix:</em>
  1. Check the path and file permissions
  2. Re-run the scraper to produce a fresh file`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ImportFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read CSV %s: %w", path, err),
	}
}

// HeaderError creates an error for a header missing required columns.
// Every row would fail without them, so the batch aborts up front.
func HeaderError(path string, missing []string) error {
	msg := `CSV header is missing required columns

<em>File path:</em> %s
<em>Missing columns:</em> %s`

	vars := []any{path, strings.Join(missing, ", ")}

	return &gn.Error{
		Code: errcode.ImportHeaderError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("header of %s lacks columns: %s",
			path, strings.Join(missing, ", ")),
	}
}

// WriteError creates an error for a failed store mutation. Rows
// applied before the failure stay applied; the failed row is fully
// absent.
func WriteError(line int, err error) error {
	msg := `Cannot write row <em>%d</em> to the store`
	vars := []any{line}

	return &gn.Error{
		Code: errcode.ImportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("store write for row %d: %w", line, err),
	}
}

// CancelledError creates an error for an import interrupted by
// context cancellation. Every row processed so far is fully applied.
func CancelledError(err error) error {
	msg := "Import cancelled; previously processed rows remain applied"

	return &gn.Error{
		Code: errcode.ImportCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("import cancelled: %w", err),
	}
}
