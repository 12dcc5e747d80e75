package iobuild

import (
	_ "embed"
	"html/template"
)

//go:embed site.gohtml
var siteSrc string

var siteTmpl = template.Must(template.New("site").Parse(siteSrc))
