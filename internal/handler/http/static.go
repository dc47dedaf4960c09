package http

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
)

// static serves files of the configured directory below prefix.
// Directories answer with their index.html and are never listed.
func (h *Handler) static(prefix string) http.HandlerFunc {
	files := http.FileServer(indexOnlyFS{http.Dir(h.staticDir)})
	return http.StripPrefix(prefix, files).ServeHTTP
}

// indexOnlyFS hides directories that have no index.html.
type indexOnlyFS struct {
	fs http.FileSystem
}

func (i indexOnlyFS) Open(name string) (http.File, error) {
	f, err := i.fs.Open(name)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !stat.IsDir() {
		return f, nil
	}

	index, err := i.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		f.Close()
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fs.ErrNotExist
		}
		return nil, err
	}
	index.Close()

	return f, nil
}
