// Package views embeds the HTML templates.
package views

import (
	"embed"
	"html/template"
)

//go:embed *.html
var FS embed.FS

// Load parses the layout together with the named page templates.
func Load(pages ...string) (*template.Template, error) {
	patterns := append([]string{"layout.html"}, pages...)
	return template.ParseFS(FS, patterns...)
}
