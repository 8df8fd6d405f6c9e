package server

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"time"
)

//go:embed static
var staticFS embed.FS

// builtinAssets holds the page and script of the remote renderer.
var builtinAssets, _ = fs.Sub(staticFS, "static")

// assetHandler serves files from dir, falling back to the built-in assets.
// The root and unknown directories serve index.html.
func assetHandler(dir string) http.Handler {
	var fsys fs.FS = builtinAssets
	if dir != "" {
		fsys = overlayFS{os.DirFS(dir), builtinAssets}
	}
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := path.Clean("/" + r.URL.Path); p == "/" || p == "/index.html" {
			serveIndex(w, r, fsys)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// serveIndex serves index.html without the redirect http.FileServer applies
// to paths ending in /index.html.
func serveIndex(w http.ResponseWriter, r *http.Request, fsys fs.FS) {
	f, err := fsys.Open("index.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()
	rs, ok := f.(io.ReadSeeker)
	if !ok {
		http.Error(w, "index.html is not seekable", http.StatusInternalServerError)
		return
	}
	var modtime time.Time
	if info, err := f.Stat(); err == nil {
		modtime = info.ModTime()
	}
	http.ServeContent(w, r, "index.html", modtime, rs)
}

// overlayFS serves files from top, and from bottom when top lacks them.
type overlayFS struct {
	top, bottom fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.top.Open(name)
	if err == nil {
		return f, nil
	}
	return o.bottom.Open(name)
}
