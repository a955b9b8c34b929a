package monitor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/iJaack/chain-guru/internal/chain"
	"github.com/iJaack/chain-guru/internal/metrics"
	"github.com/iJaack/chain-guru/internal/stats"
	"github.com/iJaack/chain-guru/internal/view"
)

// DefaultInterval is the reference refresh period.
const DefaultInterval = 5 * time.Minute

// ErrClosed is returned by operations invoked after Close.
var ErrClosed = errors.New("engine closed")

// Fetcher reads a full chain snapshot from the upstream API.
type Fetcher interface {
	FetchChains(ctx context.Context) ([]chain.Record, error)
}

// Engine owns the snapshot lifecycle: it fetches on start, refreshes on
// a fixed interval, keeps the last good snapshot through failed
// refreshes, and derives the dashboard, graveyard and stats views on
// demand. All derivations are pure over the held subsets; the engine
// only serializes access.
type Engine struct {
	fetcher  Fetcher
	logger   *slog.Logger
	interval time.Duration

	mu          sync.RWMutex
	live        []chain.Annotated
	dead        []chain.Annotated
	pricing     stats.Pricing
	state       view.State
	loaded      bool
	lastErr     error
	lastRefresh time.Time
	closed      bool

	refreshReq chan chan error
	done       chan struct{}
	closeOnce  sync.Once
	cancel     context.CancelFunc
}

// NewEngine builds an engine around a fetcher. Interval <= 0 falls back
// to DefaultInterval.
func NewEngine(f Fetcher, logger *slog.Logger, interval time.Duration) *Engine {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Engine{
		fetcher:    f,
		logger:     logger,
		interval:   interval,
		pricing:    stats.DefaultPricing(),
		state:      view.DefaultState(),
		refreshReq: make(chan chan error),
		done:       make(chan struct{}),
	}
}

// Run performs the initial fetch and then refreshes on the configured
// interval until the context is canceled or Close is called. Refreshes
// are serialized: on-demand requests go through the same loop, so a new
// one starts only after the previous has settled.
func (e *Engine) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	e.cancel = cancel
	e.mu.Unlock()
	defer close(e.done)
	defer cancel()

	e.refresh(ctx)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.refresh(ctx)
		case ack := <-e.refreshReq:
			ack <- e.refresh(ctx)
		}
	}
}

// Close stops the refresh loop and prevents any further mutation of the
// shared snapshot. Safe to call more than once.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.mu.Lock()
		e.closed = true
		cancel := e.cancel
		e.mu.Unlock()
		if cancel != nil {
			cancel()
		}
	})
}

// RefreshNow requests an immediate refresh through the run loop and
// waits for it to settle.
func (e *Engine) RefreshNow(ctx context.Context) error {
	ack := make(chan error, 1)
	select {
	case e.refreshReq <- ack:
	case <-e.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-ack:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) refresh(ctx context.Context) error {
	start := time.Now()
	records, err := e.fetcher.FetchChains(ctx)
	metrics.RefreshDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.RefreshTotal.WithLabelValues("error").Inc()
		e.mu.Lock()
		if !e.closed {
			e.lastErr = err
		}
		stale := e.loaded
		e.mu.Unlock()
		e.logger.Error("refresh failed", "error", err, "stale_snapshot_retained", stale)
		return err
	}

	annotated := chain.AnnotateAll(records)
	live, dead := chain.Partition(annotated)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	e.live = live
	e.dead = dead
	e.loaded = true
	e.lastErr = nil
	e.lastRefresh = time.Now()
	pricing := e.pricing
	e.mu.Unlock()

	snap := stats.Aggregate(live, pricing)
	metrics.RefreshTotal.WithLabelValues("success").Inc()
	metrics.RefreshLastSuccess.SetToCurrentTime()
	metrics.ChainsTracked.WithLabelValues("live").Set(float64(len(live)))
	metrics.ChainsTracked.WithLabelValues("dead").Set(float64(len(dead)))
	metrics.SegmentTPS.WithLabelValues(string(chain.EVM)).Set(snap.EVM.TPS)
	metrics.SegmentTPS.WithLabelValues(string(chain.NonEVM)).Set(snap.NonEVM.TPS)
	metrics.ProjectedRevenue.Set(snap.TotalRevenue)

	e.logger.Info("snapshot refreshed",
		"live", len(live),
		"dead", len(dead),
		"took", time.Since(start).String(),
	)
	return nil
}

// Dashboard derives the filtered, ordered live view.
func (e *Engine) Dashboard() []chain.Annotated {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := e.state
	s.Mode = view.ModeDashboard
	return view.Visible(e.live, e.dead, s)
}

// Graveyard derives the dead-chain view, clean name ascending.
func (e *Engine) Graveyard() []chain.Annotated {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := e.state
	s.Mode = view.ModeGraveyard
	return view.Visible(e.live, e.dead, s)
}

// Stats recomputes the aggregate snapshot from the live subset and the
// current pricing.
func (e *Engine) Stats() stats.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return stats.Aggregate(e.live, e.pricing)
}

// State returns the current view state.
func (e *Engine) State() view.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Pricing returns the current pricing model.
func (e *Engine) Pricing() stats.Pricing {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pricing
}

// SetFilter restricts the dashboard to one environment.
func (e *Engine) SetFilter(f view.Filter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Filter = f
}

// SetSort applies the toggle rule for the given key.
func (e *Engine) SetSort(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.ToggleSort(key)
}

// SetMode selects the presentation mode.
func (e *Engine) SetMode(m view.Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Mode = m
}

// SetPricing updates one pricing field for one ecosystem type.
func (e *Engine) SetPricing(t chain.EcosystemType, field string, value float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pricing.Set(t, field, value)
}

// Status reports the load state of the snapshot. The consumer can
// distinguish still-loading, failed-before-first-load (terminal until an
// explicit retry) and data-available, possibly stale.
type Status struct {
	State       string    `json:"state"` // loading | failed | ready
	Stale       bool      `json:"stale"`
	LastError   string    `json:"last_error,omitempty"`
	LastRefresh time.Time `json:"last_refresh,omitempty"`
	LiveCount   int       `json:"live_count"`
	DeadCount   int       `json:"dead_count"`
}

// Status returns the current load state.
func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()

	st := Status{
		LiveCount:   len(e.live),
		DeadCount:   len(e.dead),
		LastRefresh: e.lastRefresh,
	}
	switch {
	case e.loaded:
		st.State = "ready"
		st.Stale = e.lastErr != nil
	case e.lastErr != nil:
		st.State = "failed"
	default:
		st.State = "loading"
	}
	if e.lastErr != nil {
		st.LastError = e.lastErr.Error()
	}
	return st
}

// Loaded reports whether a snapshot has ever been derived.
func (e *Engine) Loaded() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loaded
}
