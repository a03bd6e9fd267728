// Package app wires configuration, stores and hosts into runnable
// applications.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/folio/internal/config"
	"github.com/MrSnakeDoc/folio/internal/httpserver"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/scheduler"
	"github.com/MrSnakeDoc/folio/internal/version"
)

// Server publishes the content root and the theme endpoint.
type Server struct {
	cfg     *config.Config
	logger  logger.Logger
	server  *httpserver.Server
	themes  *themeBackend
	sweeper *scheduler.ThemeSweeper
}

// NewServer builds the serve application. It fails fast when the
// configured theme store is unreachable.
func NewServer(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (*Server, error) {
	if _, err := os.Stat(cfg.ContentDir); err != nil {
		return nil, fmt.Errorf("failed to open content root: %w", err)
	}

	themes, err := openThemes(ctx, cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	var sweeper *scheduler.ThemeSweeper
	if themes.memory != nil {
		sweeper = scheduler.NewThemeSweeper(themes.memory, loggerClient, cfg.ThemeSweepEvery, cfg.ThemeIdleTTL)
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Build:        version.Get(),
		ContentDir:   cfg.ContentDir,
		Themes:       themes.prefs,
		ThemeBackend: themes.name,
		Ping:         themes.ping,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		ThemeBurst:   cfg.ThemeRateBurst,
		ThemePerMin:  cfg.ThemeRatePerMin,
	}

	return &Server{
		cfg:     cfg,
		logger:  loggerClient,
		server:  httpserver.New(cfg, loggerClient, d),
		themes:  themes,
		sweeper: sweeper,
	}, nil
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (a *Server) Run(ctx context.Context) error {
	build := version.Get()
	a.logger.Infof("🚀 Starting folio %s on %s", build.Version, a.cfg.ListenPort)
	a.logger.Info(build.String(),
		logger.String("content", a.cfg.ContentDir),
		logger.String("themes", a.themes.name))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.sweeper != nil {
		if err := a.sweeper.Start(ctx); err != nil {
			return fmt.Errorf("failed to start theme sweeper: %w", err)
		}
		a.logger.Info("theme sweeper started",
			logger.Duration("interval", a.cfg.ThemeSweepEvery))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.stopBackground()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	err := a.server.Stop(shutdownCtx)

	// The store stays open until in-flight theme requests are done.
	a.stopBackground()
	if err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ folio stopped cleanly")
	return nil
}

func (a *Server) stopBackground() {
	if a.sweeper != nil {
		a.sweeper.Stop()
	}
	a.themes.close(a.logger)
}
