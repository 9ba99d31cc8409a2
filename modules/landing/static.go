package landing

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*.svg
var staticFiles embed.FS

// StaticHandler serves the embedded images. Mount it with the prefix stripped.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}
