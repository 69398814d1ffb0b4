package http

import (
	"embed"
	"io/fs"
	"net/http"
)

const (
	staticPrefix = "/static/"
	staticIndex  = staticPrefix + "index.html"
)

//go:embed static
var staticFiles embed.FS

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return http.StripPrefix(staticPrefix, http.FileServer(http.FS(sub)))
}
