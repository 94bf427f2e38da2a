// Package model defines the data passed to the page layout template.
package model

import "html/template"

type NavLink struct {
	Path   string
	Title  string
	Active bool
}

type PageData struct {
	SiteName string
	Tagline  string

	Title       string
	Description string
	Body        template.HTML

	PageURL string
	Nav     []NavLink

	Theme            string
	ThemeIcon        template.HTML
	AllowThemeSwitch bool
}

// IsActive reports whether path is the page being rendered.
func (pd *PageData) IsActive(path string) bool {
	return pd.PageURL == path
}
