package http

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*.js
var staticFiles embed.FS

// staticHandler serves the embedded client assets under /static/.
func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory exists
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
