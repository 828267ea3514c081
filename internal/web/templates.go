// Package web holds the HTML templates and gin middleware for the listing
// server. Templates are baked into the binary with go:embed so the deployed
// binary carries no filesystem dependencies.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Templates parses the embedded page templates. Template names are the file
// base names, e.g. "listing.tmpl".
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))
}
