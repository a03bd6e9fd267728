package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/folio/internal/logger"
)

const (
	// DefaultThemeIdleTTL is how long an unused theme preference is kept
	DefaultThemeIdleTTL = 30 * 24 * time.Hour // 30 days
)

// Sweeper drops entries not seen since cutoff.
type Sweeper interface {
	Sweep(cutoff time.Time) int
}

// ThemeSweeper removes theme preferences of clients that have not been
// seen for a while. Only the in-memory store needs it; keys in Redis
// carry their own expiry.
type ThemeSweeper struct {
	store    Sweeper
	logger   logger.Logger
	interval time.Duration
	idleTTL  time.Duration
	now      func() time.Time
	stopCh   chan struct{}
}

// NewThemeSweeper creates a new theme sweeper
func NewThemeSweeper(
	store Sweeper,
	log logger.Logger,
	interval time.Duration,
	idleTTL time.Duration,
) *ThemeSweeper {
	if idleTTL == 0 {
		idleTTL = DefaultThemeIdleTTL
	}

	return &ThemeSweeper{
		store:    store,
		logger:   log,
		interval: interval,
		idleTTL:  idleTTL,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep
func (ts *ThemeSweeper) Start(ctx context.Context) error {
	if ts.interval <= 0 {
		return ErrNoInterval
	}

	ticker := time.NewTicker(ts.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ts.Sweep()
			case <-ts.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the sweeper
func (ts *ThemeSweeper) Stop() {
	close(ts.stopCh)
}

// Sweep removes idle preferences once and returns how many went away.
func (ts *ThemeSweeper) Sweep() int {
	removed := ts.store.Sweep(ts.now().Add(-ts.idleTTL))
	if removed > 0 {
		ts.logger.Info("swept idle theme preferences",
			logger.Int("removed", removed),
			logger.Duration("idle_ttl", ts.idleTTL))
	} else {
		ts.logger.Debug("no theme preferences to sweep")
	}
	return removed
}
