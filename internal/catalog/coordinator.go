package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/angelmondragon/shopfront/pkg/logger"
	"github.com/angelmondragon/shopfront/pkg/metrics"
	"github.com/google/uuid"
)

// FetchState is the lifecycle of a screen's catalog fetch.
type FetchState string

const (
	FetchStateLoading FetchState = "loading"
	FetchStateReady   FetchState = "ready"
	FetchStateFailed  FetchState = "failed"
)

// Snapshot is a point-in-time copy of a coordinator's state.
type Snapshot struct {
	State      FetchState
	Records    []ProductRecord
	Generation uint64
	Err        error
}

// Loading reports whether the latest fetch is still in flight.
func (s Snapshot) Loading() bool {
	return s.State == FetchStateLoading
}

// CoordinatorParams groups dependencies for a Coordinator.
type CoordinatorParams struct {
	Source   ProductSource
	Logger   *logger.Logger
	Metrics  *metrics.CatalogFetchMetrics
	Screen   string
	OnChange func(Snapshot)
}

// Coordinator owns one screen session's product collection. Every Fetch
// issues exactly one request; a response is applied only when it belongs to
// the most recently issued fetch and the coordinator is still live.
type Coordinator struct {
	source   ProductSource
	logg     *logger.Logger
	metrics  *metrics.CatalogFetchMetrics
	screen   string
	onChange func(Snapshot)

	mu         sync.Mutex
	state      FetchState
	records    []ProductRecord
	generation uint64
	err        error
	disposed   bool
}

// NewCoordinator builds a coordinator in the loading state.
func NewCoordinator(params CoordinatorParams) (*Coordinator, error) {
	if params.Source == nil {
		return nil, fmt.Errorf("product source required")
	}
	return &Coordinator{
		source:   params.Source,
		logg:     params.Logger,
		metrics:  params.Metrics,
		screen:   params.Screen,
		onChange: params.OnChange,
		state:    FetchStateLoading,
	}, nil
}

// Fetch runs one catalog request and returns the resulting snapshot. When a
// newer Fetch was issued meanwhile, or the coordinator was disposed, the
// response is dropped and the current snapshot is returned unchanged.
func (c *Coordinator) Fetch(ctx context.Context) Snapshot {
	c.mu.Lock()
	if c.disposed {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap
	}
	c.generation++
	generation := c.generation
	c.state = FetchStateLoading
	c.err = nil
	loading := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(loading)

	ctx = c.logContext(ctx, generation)
	start := time.Now()
	records, err := c.source.ListProducts(ctx)
	c.metrics.ObserveDuration(c.screen, time.Since(start))

	return c.apply(ctx, generation, records, err)
}

// Snapshot returns the current state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Dispose detaches the coordinator from its screen. Responses that arrive
// afterwards are discarded and OnChange is no longer called.
func (c *Coordinator) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
}

// Disposed reports whether Dispose was called.
func (c *Coordinator) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

func (c *Coordinator) apply(ctx context.Context, generation uint64, records []ProductRecord, err error) Snapshot {
	c.mu.Lock()
	switch {
	case c.disposed:
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.metrics.IncOutcome(c.screen, metrics.OutcomeDisposed)
		if c.logg != nil {
			c.logg.Debug(ctx, "catalog.fetch.disposed")
		}
		return snap
	case generation != c.generation:
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.metrics.IncOutcome(c.screen, metrics.OutcomeStale)
		if c.logg != nil {
			c.logg.Warn(c.logg.WithField(ctx, "latest_generation", snap.Generation), "catalog.fetch.stale")
		}
		return snap
	}

	if err != nil {
		c.state = FetchStateFailed
		c.err = err
	} else {
		c.state = FetchStateReady
		c.err = nil
		c.records = append(make([]ProductRecord, 0, len(records)), records...)
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if err != nil {
		c.metrics.IncOutcome(c.screen, metrics.OutcomeFailed)
		if c.logg != nil {
			c.logg.Error(ctx, "catalog.fetch.failed", err)
		}
	} else {
		c.metrics.IncOutcome(c.screen, metrics.OutcomeReady)
		if c.logg != nil {
			c.logg.Info(c.logg.WithField(ctx, "products", len(snap.Records)), "catalog.fetch.ready")
		}
	}
	c.notify(snap)
	return snap
}

func (c *Coordinator) snapshotLocked() Snapshot {
	return Snapshot{
		State:      c.state,
		Records:    append([]ProductRecord(nil), c.records...),
		Generation: c.generation,
		Err:        c.err,
	}
}

func (c *Coordinator) notify(snap Snapshot) {
	if c.onChange == nil {
		return
	}
	c.mu.Lock()
	disposed := c.disposed
	c.mu.Unlock()
	if !disposed {
		c.onChange(snap)
	}
}

func (c *Coordinator) logContext(ctx context.Context, generation uint64) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.logg == nil {
		return ctx
	}
	ctx = c.logg.WithRequestID(ctx, uuid.NewString())
	ctx = c.logg.WithScreen(ctx, c.screen)
	return c.logg.WithGeneration(ctx, generation)
}
