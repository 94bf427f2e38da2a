package navigation

import (
	"fmt"
	"strings"

	"github.com/debemdeboas/grocery-store/internal/routes"
)

// Table is an immutable, indexed route list.
type Table struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
}

// New validates routes against catalog and indexes them. Duplicate paths or
// names and malformed paths fail first; unresolved views are collected and
// reported together.
func New(routes []Route, catalog Resolver) (*Table, error) {
	t := &Table{
		routes: make([]Route, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
	}
	copy(t.routes, routes)

	var unresolved []Route
	for i, r := range t.routes {
		if !validPath(r.Path) {
			return nil, &InvalidPathError{Route: r}
		}
		if j, ok := t.byPath[r.Path]; ok {
			return nil, &DuplicatePathError{Path: r.Path, First: t.routes[j].Name, Next: r.Name}
		}
		if r.Name == "" {
			return nil, &InvalidNameError{Route: r}
		}
		if _, ok := t.byName[r.Name]; ok {
			return nil, &DuplicateNameError{Name: r.Name, Path: r.Path}
		}
		t.byPath[r.Path] = i
		t.byName[r.Name] = i

		if catalog == nil || !catalog.Resolves(r.View) {
			unresolved = append(unresolved, r)
		}
	}

	if len(unresolved) > 0 {
		return nil, &UnresolvedReferenceError{Routes: unresolved}
	}

	navLogger.Debug().Int("routes", len(t.routes)).Msg("Navigation table built")
	return t, nil
}

// Prune splits routes into those whose view resolves and those that do not,
// preserving order.
func Prune(routes []Route, catalog Resolver) (kept, unresolved []Route) {
	for _, r := range routes {
		if catalog != nil && catalog.Resolves(r.View) {
			kept = append(kept, r)
		} else {
			unresolved = append(unresolved, r)
		}
	}
	return kept, unresolved
}

func validPath(p string) bool {
	if !strings.HasPrefix(p, "/") || routes.Reserved(p) {
		return false
	}
	return !strings.ContainsAny(p, "{}*?# \t\n")
}

// Resolve returns the route whose path equals p exactly.
func (t *Table) Resolve(p string) (Route, error) {
	i, ok := t.byPath[p]
	if !ok {
		return Route{}, fmt.Errorf("path %q: %w", p, ErrNotFound)
	}
	return t.routes[i], nil
}

// Lookup returns the route registered under name.
func (t *Table) Lookup(name string) (Route, error) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, fmt.Errorf("name %q: %w", name, ErrNotFound)
	}
	return t.routes[i], nil
}

// PathOf returns the path of the named route. It backs the "route" template func.
func (t *Table) PathOf(name string) (string, error) {
	r, err := t.Lookup(name)
	if err != nil {
		return "", err
	}
	return r.Path, nil
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

func (t *Table) Len() int {
	return len(t.routes)
}
