package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/debemdeboas/grocery-store/internal/cache"
	"github.com/debemdeboas/grocery-store/internal/config"
	"github.com/debemdeboas/grocery-store/internal/logger"
	"github.com/debemdeboas/grocery-store/internal/middleware"
	"github.com/debemdeboas/grocery-store/internal/navigation"
	"github.com/debemdeboas/grocery-store/internal/routes"
	"github.com/debemdeboas/grocery-store/internal/theme"
	"github.com/debemdeboas/grocery-store/internal/view"
	"github.com/debemdeboas/grocery-store/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}

	configPath := flag.String("config", envOr(config.EnvConfigPath, config.DefaultConfigPath), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf(config.ErrLoadConfigFmt, err)
	}

	l := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	setLoggers(l)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := viewSource(ctx, cfg)
	if err != nil {
		l.Fatal().Err(err).Msg(config.ErrLoadViews)
	}

	handler, err := buildApp(ctx, cfg, src, l)
	if err != nil {
		l.Fatal().Err(err).Msg(config.ErrBuildTable)
	}

	if err := serve(ctx, cfg, handler, l); err != nil {
		l.Fatal().Err(err).Msg(config.ErrServer)
	}
}

func setLoggers(l zerolog.Logger) {
	config.SetLogger(l.With().Str("component", "config").Logger())
	view.SetLogger(l.With().Str("component", "view").Logger())
	navigation.SetLogger(l.With().Str("component", "navigation").Logger())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func viewSource(ctx context.Context, cfg *config.Config) (view.Source, error) {
	switch cfg.Views.Source {
	case config.ViewSourceS3:
		return view.NewS3Source(ctx, view.S3Options{
			Bucket:          cfg.Views.Bucket,
			Prefix:          cfg.Views.Prefix,
			Endpoint:        cfg.Views.Endpoint,
			Region:          cfg.Views.Region,
			AccessKeyID:     os.Getenv(config.EnvS3AccessKeyID),
			SecretAccessKey: os.Getenv(config.EnvS3SecretAccessKey),
		})
	default:
		return view.NewFSSource(web.Views()), nil
	}
}

// buildTable constructs the route table. In strict mode any unresolved view
// fails the build; otherwise those routes are dropped and logged.
func buildTable(cfg *config.Config, catalog *view.Catalog, l zerolog.Logger) (*navigation.Table, error) {
	if cfg.Navigation.Strict {
		return navigation.New(navigation.Routes, catalog)
	}

	kept, unresolved := navigation.Prune(navigation.Routes, catalog)
	for _, r := range unresolved {
		l.Error().
			Str("path", r.Path).
			Str("name", r.Name).
			Str("view", r.View.String()).
			Msg(config.ErrUnresolvedRoute)
	}
	return navigation.New(kept, catalog)
}

func buildApp(ctx context.Context, cfg *config.Config, src view.Source, l zerolog.Logger) (http.Handler, error) {
	catalog, err := view.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}

	table, err := buildTable(cfg, catalog, l)
	if err != nil {
		return nil, err
	}

	layout, err := navigation.ParseLayout(web.Templates(), table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrParseTemplates, err)
	}

	hashes, err := cache.HashStatic(web.Static(), routes.StaticPrefix)
	if err != nil {
		return nil, err
	}

	pages := navigation.NewHandler(table, catalog, layout, navigation.HandlerOptions{
		SiteName:         cfg.Site.Name,
		Tagline:          cfg.Site.Tagline,
		DefaultTheme:     cfg.Theme.Default,
		AllowThemeSwitch: cfg.Theme.AllowSwitching,
	})

	mux := http.NewServeMux()
	mux.HandleFunc(routes.RobotsPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(config.HCType, config.CTypePlain)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("User-agent: *\nDisallow:"))
	})
	mux.Handle(routes.StaticPrefix, http.StripPrefix(routes.StaticPrefix, http.FileServer(http.FS(web.Static()))))
	if cfg.Theme.AllowSwitching {
		mux.HandleFunc(routes.ThemeToggle, theme.ToggleHandler(cfg.Theme.Default))
	}
	mux.Handle(routes.RootPath, pages)

	mws := []middleware.Middleware{
		middleware.Logging(l),
		middleware.RequestID(),
		middleware.SecureHeaders(),
		middleware.CacheHeaders(hashes),
	}
	if cfg.Compression.Enabled {
		compress, err := middleware.Compress(cfg.Compression.MinSize)
		if err != nil {
			return nil, err
		}
		mws = append(mws, compress)
	}

	l.Info().
		Int("routes", table.Len()).
		Int("views", catalog.Len()).
		Str("views_source", cfg.Views.Source).
		Msg("Navigation table ready")

	return middleware.Chain(mux, mws...), nil
}

func serve(ctx context.Context, cfg *config.Config, handler http.Handler, l zerolog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("Listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	l.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
