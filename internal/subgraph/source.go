package subgraph

import (
	"context"

	"feeTierScope/internal/model"
	"feeTierScope/internal/source"
)

// PositionSource weighs fee tiers by position liquidity.
type PositionSource struct {
	Client *Client
}

func (s PositionSource) Kind() source.Kind { return source.KindPositions }

func (s PositionSource) Records(ctx context.Context, pair model.TokenPair) ([]model.LiquidityRecord, error) {
	return s.Client.PositionRecords(ctx, pair)
}

// PoolSource weighs fee tiers by two-sided pool TVL.
type PoolSource struct {
	Client *Client
}

func (s PoolSource) Kind() source.Kind { return source.KindPools }

func (s PoolSource) Records(ctx context.Context, pair model.TokenPair) ([]model.LiquidityRecord, error) {
	return s.Client.PoolRecords(ctx, pair)
}

var (
	_ source.Source = PositionSource{}
	_ source.Source = PoolSource{}
)
