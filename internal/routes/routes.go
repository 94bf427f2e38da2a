// Package routes defines the HTTP paths the server mounts besides the
// navigation table's views.
package routes

const (
	// Static and assets
	RobotsPath   = "/robots.txt"
	StaticPrefix = "/static/"
	ThemeToggle  = "/theme/toggle"

	// Root
	RootPath = "/"
)

// Reserved reports whether p is claimed by a non-view handler, and so cannot
// be used as a navigation path.
func Reserved(p string) bool {
	switch {
	case p == RobotsPath, p == ThemeToggle:
		return true
	case len(p) >= len(StaticPrefix) && p[:len(StaticPrefix)] == StaticPrefix:
		return true
	}
	return false
}
