package source

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feeTierScope/internal/model"
)

type fakeSource struct {
	calls   atomic.Int32
	release chan struct{}
	records []model.LiquidityRecord
	err     error
}

func (f *fakeSource) Kind() Kind { return KindPositions }

func (f *fakeSource) Records(ctx context.Context, pair model.TokenPair) ([]model.LiquidityRecord, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return f.records, f.err
}

var pairAB = model.NewTokenPair("0xaaaa", "0xbbbb")

func TestTrackerNotRequested(t *testing.T) {
	src := &fakeSource{}
	tr := NewTracker(src, nil)

	res := tr.Resolve(context.Background(), model.NewTokenPair("0xaaaa", ""))
	assert.Equal(t, StatusNotRequested, res.Status)
	assert.Equal(t, int32(0), src.calls.Load())
}

func TestTrackerFailedIsNotAnError(t *testing.T) {
	src := &fakeSource{err: errors.New("backend down")}
	tr := NewTracker(src, nil)

	res := tr.Resolve(context.Background(), pairAB)
	assert.Equal(t, StatusFailed, res.Status)
	assert.EqualError(t, res.Err, "backend down")
	assert.Empty(t, res.Records)
}

func TestTrackerSucceededWithEmptyRecords(t *testing.T) {
	tr := NewTracker(&fakeSource{}, nil)
	res := tr.Resolve(context.Background(), pairAB)
	assert.Equal(t, StatusSucceeded, res.Status)
	assert.Empty(t, res.Records)
}

func TestTrackerCoalescesInFlight(t *testing.T) {
	src := &fakeSource{
		release: make(chan struct{}),
		records: []model.LiquidityRecord{model.PositionRecord(model.FeeTierLow, decimal.NewFromInt(1))},
	}
	tr := NewTracker(src, nil)

	var wg sync.WaitGroup
	results := make([]Result, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pair := pairAB
			if i == 1 {
				pair = pairAB.Reversed()
			}
			results[i] = tr.Resolve(context.Background(), pair)
		}(i)
	}

	require.Eventually(t, func() bool {
		tr.mu.RLock()
		defer tr.mu.RUnlock()
		return tr.inFlight[pairAB.Canonical().Key()] == 2
	}, time.Second, time.Millisecond)
	assert.Equal(t, StatusInFlight, tr.Status(pairAB))
	assert.Equal(t, StatusInFlight, tr.Status(pairAB.Reversed()))

	time.Sleep(20 * time.Millisecond)
	close(src.release)
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	for _, res := range results {
		assert.Equal(t, StatusSucceeded, res.Status)
		assert.Len(t, res.Records, 1)
	}
	assert.Equal(t, StatusNotRequested, tr.Status(pairAB))
}

func TestTrackerCallerCancelDoesNotFailOthers(t *testing.T) {
	src := &fakeSource{
		release: make(chan struct{}),
		records: []model.LiquidityRecord{model.PositionRecord(model.FeeTierMedium, decimal.NewFromInt(3))},
	}
	tr := NewTracker(src, nil)

	cancelCtx, cancel := context.WithCancel(context.Background())
	cancelled := make(chan Result, 1)
	waiting := make(chan Result, 1)
	go func() { cancelled <- tr.Resolve(cancelCtx, pairAB) }()
	go func() { waiting <- tr.Resolve(context.Background(), pairAB) }()

	require.Eventually(t, func() bool {
		tr.mu.RLock()
		defer tr.mu.RUnlock()
		return tr.inFlight[pairAB.Canonical().Key()] == 2
	}, time.Second, time.Millisecond)

	cancel()
	res := <-cancelled
	assert.Equal(t, StatusFailed, res.Status)
	assert.ErrorIs(t, res.Err, context.Canceled)

	time.Sleep(20 * time.Millisecond)
	close(src.release)
	res = <-waiting
	assert.Equal(t, StatusSucceeded, res.Status)
	assert.Len(t, res.Records, 1)
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestBothOrderingsUnion(t *testing.T) {
	var seen []model.TokenPair
	fetch := func(ctx context.Context, token0, token1 string) ([]model.LiquidityRecord, error) {
		seen = append(seen, model.TokenPair{Token0: token0, Token1: token1})
		return []model.LiquidityRecord{model.PositionRecord(model.FeeTierMedium, decimal.NewFromInt(2))}, nil
	}

	records, err := BothOrderings(context.Background(), pairAB, fetch)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, []model.TokenPair{pairAB, pairAB.Reversed()}, seen)
}

func TestBothOrderingsPropagatesError(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context, token0, token1 string) ([]model.LiquidityRecord, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("boom")
		}
		return nil, nil
	}

	_, err := BothOrderings(context.Background(), pairAB, fetch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0xbbbb/0xaaaa")
}
