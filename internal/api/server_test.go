package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feeTierScope/internal/depth"
	"feeTierScope/internal/model"
	"feeTierScope/internal/source"
)

type fakeResolver struct {
	result source.Result
	pairs  []model.TokenPair
}

func (f *fakeResolver) Resolve(ctx context.Context, pair model.TokenPair) source.Result {
	f.pairs = append(f.pairs, pair)
	if !pair.Complete() {
		return source.Result{Status: source.StatusNotRequested}
	}
	return f.result
}

type fakeDepth struct {
	tier *model.FeeTier
}

func (f *fakeDepth) Depth(ctx context.Context, pair model.TokenPair, tier *model.FeeTier) depth.Result {
	f.tier = tier
	if tier == nil {
		return depth.Result{Status: source.StatusNotRequested}
	}
	return depth.Result{
		Status: source.StatusSucceeded,
		Window: &model.TickWindow{Lower: -2000, Upper: 4000},
		Ticks:  []model.Tick{{TickIdx: 100, LiquidityNet: "5"}},
	}
}

func get(t *testing.T, s *Server, path string) (int, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.Handler().ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func TestFeeTiersRecommends(t *testing.T) {
	resolver := &fakeResolver{result: source.Result{
		Status: source.StatusSucceeded,
		Records: []model.LiquidityRecord{
			model.PositionRecord(model.FeeTierLow, decimal.NewFromInt(10)),
			model.PositionRecord(model.FeeTierMedium, decimal.NewFromInt(30)),
		},
	}}
	s := NewServer(":0", resolver, &fakeDepth{}, nil)

	code, body := get(t, s, "/v1/fee-tiers?token0=0xAAAA&token1=0xBBBB")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "succeeded", body["status"])
	assert.Equal(t, "3000", body["recommended"])
	assert.Equal(t, false, body["show_manual"])
	dist := body["distribution"].(map[string]interface{})
	assert.Equal(t, 0.25, dist["500"])
	assert.Equal(t, 0.75, dist["3000"])
	assert.Equal(t, model.NewTokenPair("0xaaaa", "0xbbbb"), resolver.pairs[0])
}

func TestFeeTiersFailureIsManualChoice(t *testing.T) {
	s := NewServer(":0", &fakeResolver{result: source.Result{Status: source.StatusFailed}}, &fakeDepth{}, nil)

	code, body := get(t, s, "/v1/fee-tiers?token0=0xaaaa&token1=0xbbbb")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "failed", body["status"])
	assert.Nil(t, body["recommended"])
	assert.Equal(t, true, body["show_manual"])
}

func TestFeeTiersIncompletePair(t *testing.T) {
	s := NewServer(":0", &fakeResolver{}, &fakeDepth{}, nil)

	code, body := get(t, s, "/v1/fee-tiers?token0=0xaaaa")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "not_requested", body["status"])
}

func TestDepth(t *testing.T) {
	fd := &fakeDepth{}
	s := NewServer(":0", &fakeResolver{}, fd, nil)

	code, body := get(t, s, "/v1/depth?token0=0xaaaa&token1=0xbbbb&fee=500")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "succeeded", body["status"])
	require.NotNil(t, fd.tier)
	assert.Equal(t, model.FeeTierLow, *fd.tier)
	window := body["window"].(map[string]interface{})
	assert.Equal(t, float64(-2000), window["lower"])

	code, body = get(t, s, "/v1/depth?token0=0xaaaa&token1=0xbbbb")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "not_requested", body["status"])

	code, _ = get(t, s, "/v1/depth?token0=0xaaaa&token1=0xbbbb&fee=2500")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHealthz(t *testing.T) {
	s := NewServer(":0", &fakeResolver{}, &fakeDepth{}, nil)
	code, body := get(t, s, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}
