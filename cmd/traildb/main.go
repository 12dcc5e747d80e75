// Package main provides the traildb CLI application.
// traildb manages the lifecycle of a local hiking-trail database:
// schema migration, CSV import, status reporting and site building.
package main

import (
	"os"

	"github.com/gnames/gn"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		gn.PrintErrorMessage(err)
		os.Exit(1)
	}
}
