package view

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/debemdeboas/grocery-store/internal/render"
	"github.com/debemdeboas/grocery-store/internal/util"
)

// Page is a view with its document rendered to HTML.
type Page struct {
	ID          ID
	Title       string
	Description string
	Hidden      bool
	Body        template.HTML
	// Hash of the source document, used as a weak ETag component.
	Hash string
}

// Catalog holds the pages loaded at startup. It is read-only after Load.
type Catalog struct {
	pages map[ID]*Page
}

// Load reads and renders the documents for ids (every declared view when ids
// is empty). Views without a document are skipped, so the catalog simply does
// not resolve them; any other read or parse failure aborts the load.
func Load(ctx context.Context, src Source, ids ...ID) (*Catalog, error) {
	if len(ids) == 0 {
		ids = All()
	}

	pages := make(map[ID]*Page, len(ids))
	for _, id := range ids {
		if !id.Valid() {
			return nil, fmt.Errorf("unknown view %q", id)
		}

		doc, err := src.ReadView(ctx, id.File())
		if errors.Is(err, fs.ErrNotExist) {
			viewLogger.Debug().Str("view", id.String()).Str("file", id.File()).Msg("View document not found")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read view %s: %w", id, err)
		}

		page, err := NewPage(id, doc)
		if err != nil {
			return nil, err
		}
		pages[id] = page
	}

	viewLogger.Info().Int("views", len(pages)).Msg("View catalog loaded")
	return &Catalog{pages: pages}, nil
}

// NewPage renders a single view document. The title comes from front matter,
// then the first level-one heading, then the identifier.
func NewPage(id ID, doc []byte) (*Page, error) {
	page := &Page{ID: id, Hash: util.ContentHash(doc)}

	info, body, err := util.SplitFrontMatter(doc)
	switch {
	case errors.Is(err, util.ErrNoFrontMatter):
		body = doc
	case err != nil:
		return nil, fmt.Errorf("view %s: %w", id, err)
	default:
		if info.Title != "" {
			page.Title = info.Title
		}
		page.Description = info.Description
		page.Hidden = info.Hidden
	}

	if page.Title == "" {
		if h := render.Headings(body); len(h) > 0 && h[0] != "" {
			page.Title = h[0]
		} else {
			page.Title = id.String()
		}
	}

	page.Body = template.HTML(render.Markdown(body))
	return page, nil
}

// Page returns the rendered page for id.
func (c *Catalog) Page(id ID) (*Page, bool) {
	p, ok := c.pages[id]
	return p, ok
}

// Resolves reports whether id has a loaded document.
func (c *Catalog) Resolves(id ID) bool {
	_, ok := c.pages[id]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.pages)
}
