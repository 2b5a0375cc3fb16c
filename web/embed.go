// Package web carries the page templates and static assets compiled into the
// server binary.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var Templates embed.FS

//go:embed static
var static embed.FS

// Static serves the contents of the static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
