package assets

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed index.html.tmpl static
var FS embed.FS

// Page parses the game page template.
func Page() (*template.Template, error) {
	return template.ParseFS(FS, "index.html.tmpl")
}

// Static returns the stylesheet/script tree rooted at static/.
func Static() (fs.FS, error) {
	return fs.Sub(FS, "static")
}
