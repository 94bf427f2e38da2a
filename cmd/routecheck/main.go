// Command routecheck validates the declared navigation table against the
// configured view source and prints a report.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/joho/godotenv"

	"github.com/debemdeboas/grocery-store/internal/config"
	"github.com/debemdeboas/grocery-store/internal/logger"
	"github.com/debemdeboas/grocery-store/internal/navigation"
	"github.com/debemdeboas/grocery-store/internal/view"
	"github.com/debemdeboas/grocery-store/web"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	okStyle     = cellStyle.Foreground(lipgloss.Color("10"))
	failStyle   = cellStyle.Foreground(lipgloss.Color("9")).Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

const (
	statusOK      = "ok"
	statusMissing = "missing view"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", config.DefaultConfigPath, "path to the YAML config file")
	timeout := flag.Duration("timeout", 30*time.Second, "time allowed for loading views")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, config.ErrLoadConfigFmt+"\n", err)
		os.Exit(1)
	}

	l := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	view.SetLogger(l)
	navigation.SetLogger(l)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	src, err := source(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.ErrLoadViews, err)
		os.Exit(1)
	}

	catalog, err := view.Load(ctx, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.ErrLoadViews, err)
		os.Exit(1)
	}

	if err := report(os.Stdout, navigation.Routes, catalog); err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func source(ctx context.Context, cfg *config.Config) (view.Source, error) {
	if cfg.Views.Source != config.ViewSourceS3 {
		return view.NewFSSource(web.Views()), nil
	}
	return view.NewS3Source(ctx, view.S3Options{
		Bucket:          cfg.Views.Bucket,
		Prefix:          cfg.Views.Prefix,
		Endpoint:        cfg.Views.Endpoint,
		Region:          cfg.Views.Region,
		AccessKeyID:     os.Getenv(config.EnvS3AccessKeyID),
		SecretAccessKey: os.Getenv(config.EnvS3SecretAccessKey),
	})
}

// report renders one row per route and returns the table construction error,
// if any.
func report(w io.Writer, routes []navigation.Route, catalog navigation.Resolver) error {
	rows := make([][]string, 0, len(routes))
	for _, r := range routes {
		status := statusOK
		if catalog == nil || !catalog.Resolves(r.View) {
			status = statusMissing
		}
		rows = append(rows, []string{r.Path, r.Name, r.View.String(), status})
	}

	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("PATH", "NAME", "VIEW", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return headerStyle
			}
			if col == 3 {
				if rows[row][3] == statusOK {
					return okStyle
				}
				return failStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Navigation table: %d routes", len(routes))))
	fmt.Fprintln(w, t.Render())

	_, err := navigation.New(routes, catalog)
	if err == nil {
		fmt.Fprintln(w, okStyle.Render("All routes resolve"))
	}
	return err
}
