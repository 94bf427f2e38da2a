package navigation

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/debemdeboas/grocery-store/internal/config"
	"github.com/debemdeboas/grocery-store/internal/model"
	"github.com/debemdeboas/grocery-store/internal/theme"
	"github.com/debemdeboas/grocery-store/internal/view"
)

type HandlerOptions struct {
	SiteName         string
	Tagline          string
	DefaultTheme     string
	AllowThemeSwitch bool
}

// Handler renders the view of the route matching the request path into the
// layout template. Unknown paths render view.NotFound with status 404.
type Handler struct {
	table   *Table
	catalog *view.Catalog
	layout  *template.Template
	opts    HandlerOptions
}

// ParseLayout parses the layout templates in fsys with the "route" func bound
// to table, so templates can link to routes by name.
func ParseLayout(fsys fs.FS, table *Table) (*template.Template, error) {
	return template.New(config.TemplateLayout).
		Funcs(template.FuncMap{"route": table.PathOf}).
		ParseFS(fsys, "*.html")
}

func NewHandler(table *Table, catalog *view.Catalog, layout *template.Template, opts HandlerOptions) *Handler {
	if opts.DefaultTheme == "" {
		opts.DefaultTheme = config.DarkTheme
	}
	return &Handler{table: table, catalog: catalog, layout: layout, opts: opts}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, config.HTTPErrMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	log := zerolog.Ctx(r.Context())

	status := http.StatusOK
	route, err := h.table.Resolve(r.URL.Path)
	if errors.Is(err, ErrNotFound) {
		status = http.StatusNotFound
		route = Route{Path: r.URL.Path, View: view.NotFound}
	}

	page, ok := h.catalog.Page(route.View)
	if !ok {
		if status == http.StatusNotFound {
			http.NotFound(w, r)
			return
		}
		// New guarantees every table view resolves.
		log.Error().Str("path", route.Path).Str("view", route.View.String()).Msg(config.ErrUnresolvedRoute)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	currentTheme := theme.FromRequest(r, h.opts.DefaultTheme)
	etag := `W/"` + page.Hash[:16] + "-" + currentTheme + `"`

	if status == http.StatusOK && etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.Header().Set(config.HETag, etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	data := &model.PageData{
		SiteName:         h.opts.SiteName,
		Tagline:          h.opts.Tagline,
		Title:            page.Title,
		Description:      page.Description,
		Body:             page.Body,
		PageURL:          r.URL.Path,
		Theme:            currentTheme,
		ThemeIcon:        theme.Icon(currentTheme),
		AllowThemeSwitch: h.opts.AllowThemeSwitch,
	}
	data.Nav = h.navLinks(data)

	var buf bytes.Buffer
	if err := h.layout.ExecuteTemplate(&buf, config.TemplateLayout, data); err != nil {
		log.Error().Err(err).Str("path", route.Path).Str("view", route.View.String()).Msg("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set(config.HCType, config.CTypeHTML)
	if status == http.StatusOK {
		w.Header().Set(config.HETag, etag)
	}
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	w.Write(buf.Bytes())
}

func (h *Handler) navLinks(data *model.PageData) []model.NavLink {
	links := make([]model.NavLink, 0, h.table.Len())
	for _, r := range h.table.routes {
		page, ok := h.catalog.Page(r.View)
		if !ok || page.Hidden {
			continue
		}
		links = append(links, model.NavLink{
			Path:   r.Path,
			Title:  page.Title,
			Active: data.IsActive(r.Path),
		})
	}
	return links
}

// etagMatches reports whether an If-None-Match value lists etag or "*", using
// weak comparison.
func etagMatches(ifNoneMatch, etag string) bool {
	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || (candidate != "" && strings.TrimPrefix(candidate, "W/") == want) {
			return true
		}
	}
	return false
}
