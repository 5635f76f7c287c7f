package workers

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper is the part of the in-process page cache the janitor needs.
type Sweeper interface {
	Sweep() int
}

// Janitor periodically evicts expired entries from the in-process page
// cache. Expiry itself is enforced on the read path; the janitor only keeps
// an idle process from holding dead bodies. The redis backend expires keys
// server-side and runs no janitor.
type Janitor struct {
	Cache    Sweeper
	Interval time.Duration
	Logger   *zap.Logger
}

func NewJanitor(cache Sweeper, interval time.Duration, logger *zap.Logger) *Janitor {
	return &Janitor{
		Cache:    cache,
		Interval: interval,
		Logger:   logger,
	}
}

// Run sweeps until the context is cancelled.
func (j *Janitor) Run(ctx context.Context) {
	j.Logger.Info("cache janitor started", zap.Duration("interval", j.Interval))
	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			j.Logger.Info("cache janitor stopped")
			return
		case <-ticker.C:
			if removed := j.Cache.Sweep(); removed > 0 {
				j.Logger.Debug("swept expired cache entries", zap.Int("removed", removed))
			}
		}
	}
}
