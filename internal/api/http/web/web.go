// Package web holds the prebuilt admin/validator pages and the linkpage
// template, embedded into the binary.
package web

import (
	"embed"
	"html/template"
)

//go:embed pages linkpage.html
var assets embed.FS

// Linkpage renders the short-link landing page for linkpage QRs.
var Linkpage = template.Must(template.ParseFS(assets, "linkpage.html"))

// Page returns the named prebuilt page from the embedded filesystem.
func Page(name string) ([]byte, error) {
	return assets.ReadFile("pages/" + name)
}
