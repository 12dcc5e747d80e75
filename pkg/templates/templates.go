// Package templates provides embedded configuration templates.
package templates

import _ "embed"

// ConfigYAML contains the default config.yaml template for
// application configuration.
//
//go:embed config.yaml
var ConfigYAML string
