// Package app wires configuration, the model catalog and the asset source
// into a running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"nexus/internal/assets"
	"nexus/internal/catalog"
	"nexus/internal/config"
	"nexus/internal/httpapi"
)

// App owns the HTTP server and its dependencies.
type App struct {
	cfg     config.Config
	log     zerolog.Logger
	catalog *catalog.Catalog
	assets  *assets.Source
	srv     *http.Server
}

// New validates cfg and builds the server. Missing assets are logged but do
// not prevent startup; they are answered with 404 until they appear.
func New(cfg config.Config, log zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var src *assets.Source
	if cfg.EmbeddedAssets {
		src = assets.Embedded()
	} else {
		var err error
		if src, err = assets.Dir(cfg.AssetsDir); err != nil {
			return nil, err
		}
	}
	for _, name := range src.Missing() {
		log.Warn().Str("asset", name).Str("source", src.String()).Msg("asset missing")
	}

	cat := catalog.Default()

	httpapi.SetLogger(log)
	httpapi.SetDefaultLogLevel(cfg.AccessLog)
	httpapi.SetMetricsEnabled(cfg.MetricsEnabled)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins, cfg.CORSAllowedMethods, cfg.CORSAllowedHeaders)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(cat, src),
		ReadHeaderTimeout: seconds(cfg.ReadTimeoutSeconds),
		ReadTimeout:       seconds(cfg.ReadTimeoutSeconds),
		WriteTimeout:      seconds(cfg.WriteTimeoutSeconds),
		IdleTimeout:       seconds(cfg.IdleTimeoutSeconds),
	}

	return &App{cfg: cfg, log: log, catalog: cat, assets: src, srv: srv}, nil
}

// Run listens on the configured address and serves until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.cfg.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled or the server fails, then shuts
// down gracefully within the configured timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info().
			Str("addr", ln.Addr().String()).
			Str("assets", a.assets.String()).
			Int("models", a.catalog.Len()).
			Msg("nexus listening")
		if err := a.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), seconds(a.cfg.ShutdownTimeoutSeconds))
		defer cancel()
		a.log.Info().Msg("shutting down")
		if err := a.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler { return a.srv.Handler }

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }
