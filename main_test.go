package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"

	"github.com/debemdeboas/grocery-store/internal/config"
	"github.com/debemdeboas/grocery-store/internal/navigation"
	"github.com/debemdeboas/grocery-store/internal/routes"
	"github.com/debemdeboas/grocery-store/internal/view"
	"github.com/debemdeboas/grocery-store/web"
)

func lenientConfig() *config.Config {
	cfg := config.Default()
	cfg.Navigation.Strict = false
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	h, err := buildApp(context.Background(), cfg, view.NewFSSource(web.Views()), zerolog.Nop())
	if err != nil {
		t.Fatalf("buildApp failed: %v", err)
	}
	return h
}

func get(h http.Handler, path string, header map[string]string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Result()
}

func TestBuildApp_StrictRefusesUnresolvedViews(t *testing.T) {
	_, err := buildApp(context.Background(), config.Default(), view.NewFSSource(web.Views()), zerolog.Nop())
	if !errors.Is(err, navigation.ErrUnresolvedReference) {
		t.Fatalf("Expected ErrUnresolvedReference at bootstrap, got %v", err)
	}
	if !strings.Contains(err.Error(), "/ViewItemsOwner") {
		t.Errorf("Expected error to name /ViewItemsOwner, got %v", err)
	}
}

func TestBuildTable_LenientPrunes(t *testing.T) {
	catalog, err := view.Load(context.Background(), view.NewFSSource(web.Views()))
	if err != nil {
		t.Fatal(err)
	}

	table, err := buildTable(lenientConfig(), catalog, zerolog.Nop())
	if err != nil {
		t.Fatalf("Expected lenient table to build, got %v", err)
	}
	if table.Len() != len(navigation.Routes)-1 {
		t.Errorf("Expected %d routes, got %d", len(navigation.Routes)-1, table.Len())
	}
	if _, err := table.Resolve("/ViewItemsOwner"); !errors.Is(err, navigation.ErrNotFound) {
		t.Errorf("Expected pruned route to be absent, got %v", err)
	}
}

func TestApp_ServesEveryResolvedRoute(t *testing.T) {
	h := newTestApp(t, lenientConfig())

	for _, r := range navigation.Routes {
		if r.View == view.ViewItemsOwner {
			continue
		}
		t.Run(r.Name, func(t *testing.T) {
			res := get(h, r.Path, nil)
			defer res.Body.Close()

			if res.StatusCode != http.StatusOK {
				t.Fatalf("Expected 200 for %s, got %d", r.Path, res.StatusCode)
			}
			body, _ := io.ReadAll(res.Body)
			if !strings.Contains(string(body), "| Grocery Store</title>") {
				t.Errorf("Expected layout title for %s, got %s", r.Path, body)
			}
		})
	}
}

func TestApp_NotFound(t *testing.T) {
	h := newTestApp(t, lenientConfig())

	for _, path := range []string{"/not-a-real-path", "/ViewItemsOwner"} {
		res := get(h, path, nil)
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()

		if res.StatusCode != http.StatusNotFound {
			t.Errorf("Expected 404 for %s, got %d", path, res.StatusCode)
		}
		if !strings.Contains(string(body), "Page not found") {
			t.Errorf("Expected not found view for %s", path)
		}
	}
}

func TestApp_StaticAndRobots(t *testing.T) {
	h := newTestApp(t, lenientConfig())

	res := get(h, "/static/style.css", nil)
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 for stylesheet, got %d", res.StatusCode)
	}
	if etag := res.Header.Get(config.HETag); !strings.HasPrefix(etag, `W/"`) {
		t.Errorf("Expected weak ETag on static file, got %q", etag)
	}
	if res.Header.Get(config.HCacheControl) != "public, max-age=3600" {
		t.Errorf("Expected public caching, got %q", res.Header.Get(config.HCacheControl))
	}

	res = get(h, routes.RobotsPath, nil)
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if !strings.HasPrefix(string(body), "User-agent: *") {
		t.Errorf("Unexpected robots.txt %q", body)
	}
}

func TestApp_Middleware(t *testing.T) {
	h := newTestApp(t, lenientConfig())

	res := get(h, "/Login", map[string]string{"Accept-Encoding": "gzip"})
	defer res.Body.Close()

	if res.Header.Get("X-Frame-Options") != "deny" {
		t.Error("Expected secure headers")
	}
	if res.Header.Get(config.HRequestID) == "" {
		t.Error("Expected request id header")
	}
	if res.Header.Get("Content-Encoding") != "gzip" {
		t.Fatalf("Expected gzip response, got %q", res.Header.Get("Content-Encoding"))
	}

	zr, err := gzip.NewReader(res.Body)
	if err != nil {
		t.Fatalf("Failed to open gzip body: %v", err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if !strings.Contains(string(body), `<form id="login">`) {
		t.Error("Expected login form in decoded body")
	}

	etag := res.Header.Get(config.HETag)
	res = get(h, "/Login", map[string]string{"Accept-Encoding": "gzip", "If-None-Match": etag})
	res.Body.Close()
	if res.StatusCode != http.StatusNotModified {
		t.Errorf("Expected the ETag of a gzip response to revalidate, got %d", res.StatusCode)
	}
}

func TestApp_ThemeToggle(t *testing.T) {
	h := newTestApp(t, lenientConfig())

	res := get(h, routes.ThemeToggle, map[string]string{"Referer": "/CustomerMenu"})
	res.Body.Close()
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", res.StatusCode)
	}

	cfg := lenientConfig()
	cfg.Theme.AllowSwitching = false
	h = newTestApp(t, cfg)

	res = get(h, routes.ThemeToggle, nil)
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("Expected toggle to be unrouted when switching is disabled, got %d", res.StatusCode)
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	if envOr(config.EnvConfigPath, "config.yaml") != "config.yaml" {
		t.Error("Expected fallback")
	}
	t.Setenv(config.EnvConfigPath, "/etc/grocery.yaml")
	if envOr(config.EnvConfigPath, "config.yaml") != "/etc/grocery.yaml" {
		t.Error("Expected env value")
	}
}
