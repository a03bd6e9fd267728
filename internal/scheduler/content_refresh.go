package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/MrSnakeDoc/folio/internal/logger"
)

var ErrNoInterval = errors.New("refresh interval must be positive")

// Reloader fetches the content collections again.
type Reloader interface {
	Reload(ctx context.Context)
}

// ContentRefresher periodically reloads the content collections so a
// long-lived session picks up published changes.
type ContentRefresher struct {
	reloader      Reloader
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewContentRefresher creates a refresher. manualTrigger may be nil.
func NewContentRefresher(
	reloader Reloader,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *ContentRefresher {
	return &ContentRefresher{
		reloader:      reloader,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic refresh. The initial load belongs to the
// router's start-up sequence, so the first refresh happens after one
// interval.
func (cr *ContentRefresher) Start(ctx context.Context) error {
	if cr.interval <= 0 {
		return ErrNoInterval
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cr.Refresh(ctx)
			case <-cr.manualTrigger:
				cr.logger.Info("manual content refresh triggered")
				cr.Refresh(ctx)
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the refresher
func (cr *ContentRefresher) Stop() {
	close(cr.stopCh)
}

// Refresh reloads the collections once.
func (cr *ContentRefresher) Refresh(ctx context.Context) {
	start := time.Now()
	cr.reloader.Reload(ctx)
	cr.logger.Debug("content refreshed",
		logger.Duration("took", time.Since(start)))
}
