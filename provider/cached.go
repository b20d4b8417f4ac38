package provider

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrymomot/experiments/feature"
)

// CachedConfig holds the refresh behavior of a Cached provider. Fields can
// be populated from environment variables via github.com/caarlos0/env.
type CachedConfig struct {
	RefreshInterval time.Duration `env:"EXPERIMENTS_REFRESH_INTERVAL" envDefault:"30s"`      // RefreshInterval is the delay between background snapshot refreshes.
	RetryAttempts   uint64        `env:"EXPERIMENTS_REFRESH_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of retries for one refresh.
	RetryInterval   time.Duration `env:"EXPERIMENTS_REFRESH_RETRY_INTERVAL" envDefault:"2s"` // RetryInterval is the constant backoff between retries.
}

// Cached wraps a provider with a refreshed in-memory snapshot. Evaluations
// read the snapshot without touching the inner provider; a background loop
// (or explicit Refresh calls) fetches new snapshots with retry/backoff and
// publishes them via an atomic pointer swap. A failed refresh keeps the
// previous snapshot serving.
type Cached struct {
	inner    feature.Provider
	cfg      CachedConfig
	log      *slog.Logger
	snapshot atomic.Pointer[[]feature.Feature]

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

// CachedOption configures a Cached provider.
type CachedOption func(*Cached)

// WithCachedConfig replaces the default refresh configuration.
func WithCachedConfig(cfg CachedConfig) CachedOption {
	return func(c *Cached) { c.cfg = cfg }
}

// WithCachedLogger sets the logger for refresh diagnostics.
func WithCachedLogger(log *slog.Logger) CachedOption {
	return func(c *Cached) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCached wraps the inner provider.
func NewCached(inner feature.Provider, opts ...CachedOption) *Cached {
	c := &Cached{
		inner: inner,
		cfg: CachedConfig{
			RefreshInterval: 30 * time.Second,
			RetryAttempts:   3,
			RetryInterval:   2 * time.Second,
		},
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements feature.Provider.
func (c *Cached) Name() string { return c.inner.Name() }

// Refresh fetches a fresh snapshot from the inner provider, retrying with
// constant backoff, and publishes it on success.
func (c *Cached) Refresh(ctx context.Context) error {
	backoff := retry.WithMaxRetries(c.cfg.RetryAttempts, retry.NewConstant(c.cfg.RetryInterval))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		features, err := c.inner.GetFeatures(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		c.snapshot.Store(&features)
		return nil
	})
}

// Start performs an initial refresh and launches the background refresh
// loop. The loop stops when ctx is canceled or Close is called. Start is
// idempotent; only the first call has effect.
func (c *Cached) Start(ctx context.Context) error {
	if err := c.Refresh(ctx); err != nil {
		return err
	}
	c.startOnce.Do(func() {
		go c.loop(ctx)
	})
	return nil
}

// Close stops the background refresh loop.
func (c *Cached) Close() error {
	c.stopOnce.Do(func() { close(c.done) })
	return nil
}

func (c *Cached) loop(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				c.log.Warn("feature snapshot refresh failed; keeping previous snapshot",
					slog.String("provider", c.inner.Name()),
					slog.Any("error", err))
			}
		}
	}
}

// GetFeatures implements feature.Provider. Without a published snapshot
// yet, it refreshes synchronously once.
func (c *Cached) GetFeatures(ctx context.Context) ([]feature.Feature, error) {
	if snap := c.snapshot.Load(); snap != nil {
		return *snap, nil
	}
	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}
	return *c.snapshot.Load(), nil
}
