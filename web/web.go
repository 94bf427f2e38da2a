// Package web embeds the templates, static assets and view documents served by
// the grocery store front end.
package web

import (
	"embed"
	"io/fs"

	"github.com/debemdeboas/grocery-store/internal/config"
)

//go:embed static templates views
var content embed.FS

func sub(dir string) fs.FS {
	f, err := fs.Sub(content, dir)
	if err != nil {
		// dir is a compile-time constant matching the embed directive.
		panic(err)
	}
	return f
}

// Static returns the files served under routes.StaticPrefix.
func Static() fs.FS { return sub(config.StaticLocalDir) }

// Templates returns the layout templates.
func Templates() fs.FS { return sub(config.TemplatesLocalDir) }

// Views returns the view documents.
func Views() fs.FS { return sub(config.ViewsLocalDir) }
