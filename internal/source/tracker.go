package source

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"feeTierScope/internal/model"
)

// Tracker runs a Source per token pair, coalescing concurrent requests for
// the same pair and exposing the in-flight state.
type Tracker struct {
	src    Source
	logger *zap.Logger
	group  singleflight.Group

	mu       sync.RWMutex
	inFlight map[string]int
}

func NewTracker(src Source, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		src:      src,
		logger:   logger,
		inFlight: make(map[string]int),
	}
}

// Status reports whether a fetch for pair is currently running.
// Both orderings of a pair share one status.
func (t *Tracker) Status(pair model.TokenPair) Status {
	if !pair.Complete() {
		return StatusNotRequested
	}
	t.mu.RLock()
	n := t.inFlight[pair.Canonical().Key()]
	t.mu.RUnlock()
	if n > 0 {
		return StatusInFlight
	}
	return StatusNotRequested
}

// Resolve fetches records for pair. Failures are logged and reported as
// StatusFailed; they are never returned as errors.
//
// Concurrent resolves for either ordering of a pair share one fetch. The
// shared fetch does not inherit any caller's cancellation; a caller whose
// ctx ends stops waiting without failing the others.
func (t *Tracker) Resolve(ctx context.Context, pair model.TokenPair) Result {
	if !pair.Complete() {
		return Result{Status: StatusNotRequested}
	}
	pairKey := pair.Canonical().Key()
	key := string(t.src.Kind()) + ":" + pairKey

	t.track(pairKey, 1)
	defer t.track(pairKey, -1)

	fetchCtx := context.WithoutCancel(ctx)
	ch := t.group.DoChan(key, func() (interface{}, error) {
		return t.src.Records(fetchCtx, pair)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		t.logger.Debug("fee tier query abandoned",
			zap.String("source", string(t.src.Kind())),
			zap.String("pair", pair.Key()),
			zap.Error(ctx.Err()),
		)
		return Result{Status: StatusFailed, Err: ctx.Err()}
	}

	if res.Err != nil {
		t.logger.Warn("fee tier query failed",
			zap.String("source", string(t.src.Kind())),
			zap.String("pair", pair.Key()),
			zap.Error(res.Err),
		)
		return Result{Status: StatusFailed, Err: res.Err}
	}

	records, _ := res.Val.([]model.LiquidityRecord)
	t.logger.Debug("fee tier query resolved",
		zap.String("source", string(t.src.Kind())),
		zap.String("pair", pair.Key()),
		zap.Int("records", len(records)),
		zap.Bool("shared", res.Shared),
	)
	return Result{Status: StatusSucceeded, Records: records}
}

func (t *Tracker) track(key string, delta int) {
	t.mu.Lock()
	t.inFlight[key] += delta
	if t.inFlight[key] <= 0 {
		delete(t.inFlight, key)
	}
	t.mu.Unlock()
}
