package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/trailplan/traildb/pkg/errcode"
)

// CreateLogFileError creates an error for when the log file cannot be
// created.
func CreateLogFileError(path string, err error) error {
	msg := "Cannot create log file at <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create log file: %w", err),
	}
}
