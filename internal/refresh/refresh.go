package refresh

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lottolab/scratchoff-data/internal/model"
)

// Target is the refreshable surface: a session that can re-run its
// fetch-and-transform pass with its current filter.
type Target interface {
	Refresh(ctx context.Context, f model.Filter)
	Filter() model.Filter
}

// Config holds refresher configuration.
type Config struct {
	Interval time.Duration // Refresh interval (default: 15m)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{Interval: 15 * time.Minute}
}

// Refresher periodically re-runs the session's fetch pass so the cached
// tables track the backing store between requests.
type Refresher struct {
	cfg    Config
	target Target
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Refresher.
func New(cfg Config, target Target, logger *slog.Logger) *Refresher {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		cfg:    cfg,
		target: target,
		logger: logger,
	}
}

// Start begins the refresh loop.
func (r *Refresher) Start(ctx context.Context) error {
	r.ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go r.run()

	r.logger.Info("session refresher started", "interval", r.cfg.Interval)
	return nil
}

// Stop gracefully shuts down the refresher.
func (r *Refresher) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("session refresher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main refresh loop. The session already refreshed itself on
// open, so the first pass waits a full interval.
func (r *Refresher) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.refreshOnce()
		}
	}
}

func (r *Refresher) refreshOnce() {
	start := time.Now()
	r.target.Refresh(r.ctx, r.target.Filter())
	r.logger.Debug("refresh cycle complete", "duration", time.Since(start))
}
