package model

import "github.com/shopspring/decimal"

// LiquidityRecord is a weight tagged with the fee tier it was recorded under.
// Position liquidity uses Token0Weight only; pool TVL fills both sides.
type LiquidityRecord struct {
	Tier         FeeTier
	Token0Weight decimal.Decimal
	Token1Weight decimal.Decimal
}

// PositionRecord builds a single-sided record from a position's liquidity.
func PositionRecord(tier FeeTier, liquidity decimal.Decimal) LiquidityRecord {
	return LiquidityRecord{Tier: tier, Token0Weight: liquidity, Token1Weight: decimal.Zero}
}

// TVLRecord builds a two-sided record from a pool's locked value.
func TVLRecord(tier FeeTier, tvl0, tvl1 decimal.Decimal) LiquidityRecord {
	return LiquidityRecord{Tier: tier, Token0Weight: tvl0, Token1Weight: tvl1}
}
