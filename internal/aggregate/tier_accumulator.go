package aggregate

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"feeTierScope/internal/model"
)

// ErrNegativeWeight is returned for records carrying a negative weight.
var ErrNegativeWeight = errors.New("negative weight")

// TierTotals holds the per-side sums for one fee tier.
type TierTotals struct {
	Token0 decimal.Decimal
	Token1 decimal.Decimal
}

// Combined returns both sides added together.
func (t TierTotals) Combined() decimal.Decimal {
	return t.Token0.Add(t.Token1)
}

// Accumulator sums record weights per fee tier.
type Accumulator struct {
	tiers   map[model.FeeTier]*TierTotals
	records int
}

func NewAccumulator() *Accumulator {
	tiers := make(map[model.FeeTier]*TierTotals)
	for _, tier := range model.FeeTiers() {
		tiers[tier] = &TierTotals{Token0: decimal.Zero, Token1: decimal.Zero}
	}
	return &Accumulator{tiers: tiers}
}

// Add folds a record into its tier. Invalid records leave the sums untouched.
func (a *Accumulator) Add(record model.LiquidityRecord) error {
	totals, ok := a.tiers[record.Tier]
	if !ok {
		return fmt.Errorf("%w: index %d", model.ErrUnknownFeeTier, uint8(record.Tier))
	}
	if record.Token0Weight.IsNegative() || record.Token1Weight.IsNegative() {
		return fmt.Errorf("%w: tier %s", ErrNegativeWeight, record.Tier)
	}

	totals.Token0 = totals.Token0.Add(record.Token0Weight)
	totals.Token1 = totals.Token1.Add(record.Token1Weight)
	a.records++
	return nil
}

// Totals returns a copy of the per-tier sums.
func (a *Accumulator) Totals() map[model.FeeTier]TierTotals {
	out := make(map[model.FeeTier]TierTotals, len(a.tiers))
	for tier, totals := range a.tiers {
		out[tier] = *totals
	}
	return out
}

// GrandTotals returns the token0 and token1 sums across all tiers.
func (a *Accumulator) GrandTotals() (decimal.Decimal, decimal.Decimal) {
	total0, total1 := decimal.Zero, decimal.Zero
	for _, tier := range model.FeeTiers() {
		total0 = total0.Add(a.tiers[tier].Token0)
		total1 = total1.Add(a.tiers[tier].Token1)
	}
	return total0, total1
}

// Records returns the number of accepted records.
func (a *Accumulator) Records() int {
	return a.records
}
