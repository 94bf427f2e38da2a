// Package navigation maps request paths to the views of the grocery store.
//
// The Table is built once at startup from a list of Routes and a view
// catalog, then shared read-only by every request. Matching is exact: there are
// no parameters, wildcards or prefix matches.
package navigation

import (
	"github.com/rs/zerolog"

	"github.com/debemdeboas/grocery-store/internal/view"
)

var navLogger = zerolog.Nop()

func SetLogger(l zerolog.Logger) {
	navLogger = l
}

// Route associates a literal path with a unique name and the view it renders.
type Route struct {
	Path string
	Name string
	View view.ID
}

// Resolver reports whether a view can be rendered. *view.Catalog implements it.
type Resolver interface {
	Resolves(id view.ID) bool
}
