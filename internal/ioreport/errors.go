package ioreport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/trailplan/traildb/pkg/errcode"
)

// NotConnectedError creates an error for when status is requested
// without a store connection.
func NotConnectedError() error {
	msg := "Status requested without database connection"

	return &gn.Error{
		Code: errcode.StoreNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to store"),
	}
}

// QueryError creates an error for a failed status query.
func QueryError(table string, err error) error {
	msg := `Status query failed on table <em>%s</em>`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.StatusQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("status query on %s: %w", table, err),
	}
}
