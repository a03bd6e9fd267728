package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MrSnakeDoc/folio/internal/browser"
	"github.com/MrSnakeDoc/folio/internal/config"
	"github.com/MrSnakeDoc/folio/internal/index"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/render"
	"github.com/MrSnakeDoc/folio/internal/router"
	"github.com/MrSnakeDoc/folio/internal/scheduler"
	"github.com/MrSnakeDoc/folio/internal/sources/content"
	"github.com/MrSnakeDoc/folio/internal/sources/profile"
	"github.com/MrSnakeDoc/folio/internal/terminal"
	"github.com/MrSnakeDoc/folio/internal/theme"
	"github.com/MrSnakeDoc/folio/internal/view"
)

// Browser is the interactive terminal client.
type Browser struct {
	cfg       *config.Config
	logger    logger.Logger
	profile   profile.Profile
	session   *browser.Session
	themes    *themeBackend
	refresher *scheduler.ContentRefresher
	refreshCh chan struct{}
	out       io.Writer
}

// NewFetcher returns an HTTP fetcher when a content URL is configured,
// and a directory fetcher otherwise.
func NewFetcher(cfg *config.Config) (content.Fetcher, error) {
	if cfg.ContentURL != "" {
		f, err := content.NewHTTPFetcher(cfg.ContentURL, cfg.FetchTimeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create content fetcher: %w", err)
		}
		return f, nil
	}
	if _, err := os.Stat(cfg.ContentDir); err != nil {
		return nil, fmt.Errorf("failed to open content root: %w", err)
	}
	return content.NewDirFetcher(cfg.ContentDir), nil
}

// NewBrowser builds the browse application writing to out.
func NewBrowser(ctx context.Context, cfg *config.Config, loggerClient logger.Logger, out io.Writer) (*Browser, error) {
	prof, err := profile.NewLoader(cfg.ProfileFile).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	fetcher, err := NewFetcher(cfg)
	if err != nil {
		return nil, err
	}

	themes, err := openThemes(ctx, cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	page := view.NewPage()
	store := index.NewContentStore()
	renderer := render.New(render.Options{
		HighlightAuthor: prof.HighlightAuthor,
		CodeStyle:       prof.CodeStyle,
	})
	loader := content.NewLoader(fetcher, store, renderer, page, loggerClient.With(logger.String("component", "content")))
	r := router.New(page, store, loader, renderer, loggerClient.With(logger.String("component", "router")))

	term := terminal.New(terminal.Responses{
		Skills:  prof.Terminal.Skills,
		Contact: prof.Terminal.Contact,
		Pubs:    prof.Terminal.Pubs,
		Coffee:  prof.Terminal.Coffee,
	}, page)

	b := &Browser{
		cfg:     cfg,
		logger:  loggerClient,
		profile: prof,
		session: browser.NewSession(r, page, term, themes.prefs, theme.DefaultClient, out, loggerClient),
		themes:  themes,
		out:     out,
	}

	if cfg.RefreshInterval > 0 {
		b.refreshCh = make(chan struct{}, 1)
		b.refresher = scheduler.NewContentRefresher(r, loggerClient, cfg.RefreshInterval, b.refreshCh)
	}

	return b, nil
}

// Run starts at fragment and reads commands until the user quits.
// SIGHUP triggers a content refresh when periodic refresh is enabled.
func (a *Browser) Run(ctx context.Context, fragment string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()
	defer a.themes.close(a.logger)

	if a.profile.Owner != "" {
		_, _ = fmt.Fprintf(a.out, "%s\n", a.profile.Owner)
	}
	a.session.Start(ctx, fragment)

	if a.refresher != nil {
		if err := a.refresher.Start(ctx); err != nil {
			return fmt.Errorf("failed to start content refresher: %w", err)
		}
		defer a.refresher.Stop()
		a.logger.Debug("content refresher started",
			logger.Duration("interval", a.cfg.RefreshInterval))

		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)
		go a.forwardHangups(ctx, hup)
	}

	return a.session.Run(ctx, a.cfg.HistoryFile)
}

func (a *Browser) forwardHangups(ctx context.Context, hup <-chan os.Signal) {
	for {
		select {
		case <-hup:
			select {
			case a.refreshCh <- struct{}{}:
			default: // a refresh is already pending
			}
		case <-ctx.Done():
			return
		}
	}
}
