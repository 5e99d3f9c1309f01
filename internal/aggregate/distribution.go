package aggregate

import (
	"github.com/shopspring/decimal"

	"feeTierScope/internal/model"
)

// Aggregate reduces records to a per-tier distribution.
//
// Each tier's share is (tier token0 + tier token1) / (grand token0 + grand token1).
// An empty input or all-zero weights yields an all-zero distribution.
func Aggregate(records []model.LiquidityRecord) (model.Distribution, error) {
	acc := NewAccumulator()
	for _, record := range records {
		if err := acc.Add(record); err != nil {
			return model.Distribution{}, err
		}
	}
	return acc.Distribution(), nil
}

// Distribution normalises the accumulated sums.
func (a *Accumulator) Distribution() model.Distribution {
	total0, total1 := a.GrandTotals()
	denom := total0.Add(total1)

	var shares [3]float64
	for i, tier := range model.FeeTiers() {
		shares[i] = share(a.tiers[tier].Combined(), denom)
	}
	return model.NewDistribution(shares[0], shares[1], shares[2])
}

func share(value, denom decimal.Decimal) float64 {
	if denom.Sign() <= 0 || value.Sign() <= 0 {
		return 0
	}
	if value.Equal(denom) {
		return 1
	}
	return value.DivRound(denom, ratioScale).InexactFloat64()
}
