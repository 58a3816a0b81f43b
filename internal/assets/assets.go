// Package assets reads the front-end files served by the HTTP layer.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"nexus/internal/common/fsutil"
	"nexus/web"
)

// Names of the files the server exposes.
const (
	Index      = "index.html"
	Stylesheet = "style.css"
	Script     = "script.js"
)

// Required lists every asset the page needs to render.
var Required = []string{Index, Stylesheet, Script}

// NotFoundError reports a requested asset that is absent from the source.
type NotFoundError struct{ Name string }

func (e *NotFoundError) Error() string { return "asset not found: " + e.Name }

// StatusCode maps the error to 404 for the HTTP layer.
func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }

// Is lets callers test against fs.ErrNotExist.
func (e *NotFoundError) Is(target error) bool { return target == fs.ErrNotExist }

// IsNotFound reports whether err is a missing-asset error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Asset is one file read from the source.
type Asset struct {
	Name    string
	Data    []byte
	ModTime time.Time
}

// Source reads assets from an fs.FS. Files are read on every call, so
// changes on disk are visible without a restart.
type Source struct {
	fsys  fs.FS
	label string
}

// New wraps fsys. label describes the origin for logs.
func New(fsys fs.FS, label string) *Source {
	return &Source{fsys: fsys, label: label}
}

// Dir returns a source rooted at dir on the local filesystem.
func Dir(dir string) (*Source, error) {
	abs, err := fsutil.ResolveDir(dir)
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}
	return New(os.DirFS(abs), abs), nil
}

// Embedded returns a source backed by the assets compiled into the binary.
func Embedded() *Source {
	return New(web.Static(), "embedded")
}

// String describes where the assets come from.
func (s *Source) String() string { return s.label }

// Read returns the named asset or a *NotFoundError when it does not exist.
func (s *Source) Read(name string) (Asset, error) {
	if !fs.ValidPath(name) {
		return Asset{}, &NotFoundError{Name: name}
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Asset{}, &NotFoundError{Name: name}
		}
		return Asset{}, fmt.Errorf("read %s: %w", name, err)
	}
	a := Asset{Name: name, Data: data}
	if fi, err := fs.Stat(s.fsys, name); err == nil {
		a.ModTime = fi.ModTime()
	}
	return a, nil
}

// Missing returns the names from Required that cannot be found.
func (s *Source) Missing() []string {
	var out []string
	for _, name := range Required {
		if _, err := fs.Stat(s.fsys, name); err != nil {
			out = append(out, name)
		}
	}
	return out
}
