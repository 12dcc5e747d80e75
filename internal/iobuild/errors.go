package iobuild

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/trailplan/traildb/pkg/errcode"
)

// NotConnectedError creates an error for when a build is attempted
// without a store connection.
func NotConnectedError() error {
	msg := "Build attempted without database connection"

	return &gn.Error{
		Code: errcode.StoreNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to store"),
	}
}

// QueryError creates an error for a failed read of one dataset.
func QueryError(table string, err error) error {
	msg := `Cannot read table <em>%s</em> for the site build`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.BuildQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("build query on %s: %w", table, err),
	}
}

// TemplateError creates an error for a failed template render.
func TemplateError(err error) error {
	msg := "Cannot render the site template"

	return &gn.Error{
		Code: errcode.BuildTemplateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("render site: %w", err),
	}
}

// OutputError creates an error for a failed write of the rendered
// site.
func OutputError(path string, err error) error {
	msg := `Cannot write site output to <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.BuildOutputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("write site output %s: %w", path, err),
	}
}
