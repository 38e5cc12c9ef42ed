// Command lookup prints the weather for one city to the terminal. It reads
// the same configuration as the page server and shares its cache when
// CACHE_BACKEND is sqlite.
//
// Usage:
//
//	go run ./cmd/lookup -city "São Paulo" -locale pt-BR
//	go run ./cmd/lookup -json Lisboa
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/clima/internal/app"
	"github.com/couchcryptid/clima/internal/config"
	"github.com/couchcryptid/clima/internal/domain"
	"github.com/couchcryptid/clima/internal/observability"
	"github.com/couchcryptid/clima/internal/render"
)

func main() {
	city := flag.String("city", "", "city name to look up (or pass it as arguments)")
	locale := flag.String("locale", "", "BCP 47 display locale (default DISPLAY_LOCALE)")
	asJSON := flag.Bool("json", false, "print the display model as JSON")
	flag.Parse()

	name := *city
	if name == "" {
		name = strings.Join(flag.Args(), " ")
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, name, *locale, *asJSON, os.Stdout, os.Stderr))
}

func run(ctx context.Context, city, locale string, asJSON bool, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	if locale != "" {
		cfg.DisplayLocale = locale
	}

	// Logs go to stderr so stdout carries only the result.
	logger := observability.NewLoggerTo(stderr, cfg.LogLevel, "text")
	a, err := app.New(cfg, logger, nil)
	if err != nil {
		fmt.Fprintf(stderr, "init: %v\n", err)
		return 1
	}
	defer a.Close()

	result, err := a.Weather.FetchWeather(ctx, city)
	if err != nil {
		fmt.Fprintln(stderr, render.LabelsFor(cfg.DisplayLocale).ErrorMessage(err))
		if errors.Is(err, domain.ErrInvalidInput) {
			return 2
		}
		return 1
	}

	theme := domain.PresentationState{}.ResolveTheme(result.Current.IsDay)
	model := render.Render(result, theme, cfg.DisplayLocale)

	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(model); err != nil {
			fmt.Fprintf(stderr, "encode: %v\n", err)
			return 1
		}
		return 0
	}
	if err := render.Text(stdout, model); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}
