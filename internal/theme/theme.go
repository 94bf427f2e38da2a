// Package theme handles the light/dark theme cookie.
package theme

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/debemdeboas/grocery-store/internal/config"
	"github.com/debemdeboas/grocery-store/internal/routes"
)

func valid(theme string) bool {
	return theme == config.LightTheme || theme == config.DarkTheme
}

// FromRequest returns the theme stored in the request cookie, or fallback when
// the cookie is missing or holds an unknown value.
func FromRequest(r *http.Request, fallback string) string {
	if cookie, err := r.Cookie(config.CookieTheme); err == nil && valid(cookie.Value) {
		return cookie.Value
	}
	return fallback
}

func Opposite(theme string) string {
	if theme == config.DarkTheme {
		return config.LightTheme
	}
	return config.DarkTheme
}

// Icon returns the icon of the theme a toggle would switch to.
func Icon(theme string) template.HTML {
	if theme == config.LightTheme {
		return template.HTML(config.DarkThemeIcon)
	}
	return template.HTML(config.LightThemeIcon)
}

// ToggleHandler flips the theme cookie and sends the browser back to the
// referring page on this host.
func ToggleHandler(fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodPost {
			w.Header().Set("Allow", "GET, POST")
			http.Error(w, config.HTTPErrMethodNotAllowed, http.StatusMethodNotAllowed)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     config.CookieTheme,
			Value:    Opposite(FromRequest(r, fallback)),
			Path:     routes.RootPath,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, backTo(r), http.StatusSeeOther)
	}
}

func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return routes.RootPath
	}
	if ref.Path[0] != '/' || (len(ref.Path) > 1 && ref.Path[1] == '/') {
		return routes.RootPath
	}
	return ref.Path
}
