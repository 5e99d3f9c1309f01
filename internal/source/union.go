package source

import (
	"context"
	"fmt"

	"feeTierScope/internal/model"
)

// FetchFunc fetches records for one ordering of a pair.
type FetchFunc func(ctx context.Context, token0, token1 string) ([]model.LiquidityRecord, error)

// BothOrderings runs fetch for (token0, token1) and (token1, token0) and
// returns the union. A pair of identical tokens is queried once.
func BothOrderings(ctx context.Context, pair model.TokenPair, fetch FetchFunc) ([]model.LiquidityRecord, error) {
	asToken0, err := fetch(ctx, pair.Token0, pair.Token1)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pair.Key(), err)
	}
	if pair.Token0 == pair.Token1 {
		return asToken0, nil
	}

	reversed := pair.Reversed()
	asToken1, err := fetch(ctx, reversed.Token0, reversed.Token1)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", reversed.Key(), err)
	}

	out := make([]model.LiquidityRecord, 0, len(asToken0)+len(asToken1))
	out = append(out, asToken0...)
	out = append(out, asToken1...)
	return out, nil
}
