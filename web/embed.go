// Package web bundles the chat front-end so the server can run without an
// assets directory on disk.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static returns the bundled assets rooted at the static directory, so that
// "index.html" resolves to static/index.html.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
