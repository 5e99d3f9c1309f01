package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feeTierScope/internal/model"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestAggregatePositions(t *testing.T) {
	records := []model.LiquidityRecord{
		model.PositionRecord(model.FeeTierLow, dec(10)),
		model.PositionRecord(model.FeeTierMedium, dec(30)),
		model.PositionRecord(model.FeeTierHigh, dec(0)),
	}

	dist, err := Aggregate(records)
	require.NoError(t, err)

	assert.Equal(t, 0.25, dist.Share(model.FeeTierLow))
	assert.Equal(t, 0.75, dist.Share(model.FeeTierMedium))
	assert.Equal(t, 0.0, dist.Share(model.FeeTierHigh))
}

func TestAggregateTwoSidedTVL(t *testing.T) {
	asToken0 := []model.LiquidityRecord{model.TVLRecord(model.FeeTierMedium, dec(100), dec(50))}
	asToken1 := []model.LiquidityRecord{model.TVLRecord(model.FeeTierLow, dec(10), dec(5))}

	acc := NewAccumulator()
	for _, record := range append(asToken0, asToken1...) {
		require.NoError(t, acc.Add(record))
	}

	total0, total1 := acc.GrandTotals()
	assert.True(t, total0.Equal(dec(110)), "token0 total %s", total0)
	assert.True(t, total1.Equal(dec(55)), "token1 total %s", total1)

	dist := acc.Distribution()
	assert.InDelta(t, 150.0/165.0, dist.Share(model.FeeTierMedium), 1e-12)
	assert.InDelta(t, 15.0/165.0, dist.Share(model.FeeTierLow), 1e-12)
	assert.Equal(t, 0.0, dist.Share(model.FeeTierHigh))
	assert.InDelta(t, 1.0, dist.Sum(), 1e-12)
}

func TestAggregateEmptyAndZero(t *testing.T) {
	dist, err := Aggregate(nil)
	require.NoError(t, err)
	assert.True(t, dist.IsZero())

	dist, err = Aggregate([]model.LiquidityRecord{
		model.PositionRecord(model.FeeTierLow, dec(0)),
		model.TVLRecord(model.FeeTierMedium, dec(0), dec(0)),
		model.PositionRecord(model.FeeTierHigh, dec(0)),
	})
	require.NoError(t, err)
	for _, tier := range model.FeeTiers() {
		assert.Equal(t, 0.0, dist.Share(tier))
	}
}

func TestAggregateSumsToOne(t *testing.T) {
	sets := [][]model.LiquidityRecord{
		{model.PositionRecord(model.FeeTierHigh, dec(7))},
		{
			model.PositionRecord(model.FeeTierLow, dec(1)),
			model.PositionRecord(model.FeeTierMedium, dec(1)),
			model.PositionRecord(model.FeeTierHigh, dec(1)),
		},
		{
			model.TVLRecord(model.FeeTierLow, decimal.RequireFromString("0.000001"), decimal.RequireFromString("123456789.5")),
			model.TVLRecord(model.FeeTierHigh, decimal.RequireFromString("98765.4321"), dec(3)),
		},
	}

	for _, records := range sets {
		dist, err := Aggregate(records)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, dist.Sum(), 1e-9)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	records := []model.LiquidityRecord{
		model.TVLRecord(model.FeeTierLow, decimal.RequireFromString("0.1"), decimal.RequireFromString("0.2")),
		model.TVLRecord(model.FeeTierMedium, decimal.RequireFromString("0.3"), dec(0)),
		model.TVLRecord(model.FeeTierLow, decimal.RequireFromString("0.7"), decimal.RequireFromString("1.1")),
	}
	reversed := []model.LiquidityRecord{records[2], records[1], records[0]}

	a, err := Aggregate(records)
	require.NoError(t, err)
	b, err := Aggregate(reversed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAggregateRejectsUnknownTier(t *testing.T) {
	acc := NewAccumulator()
	require.NoError(t, acc.Add(model.PositionRecord(model.FeeTierLow, dec(5))))

	err := acc.Add(model.PositionRecord(model.FeeTier(9), dec(100)))
	require.ErrorIs(t, err, model.ErrUnknownFeeTier)

	totals := acc.Totals()
	assert.True(t, totals[model.FeeTierLow].Token0.Equal(dec(5)))
	assert.True(t, totals[model.FeeTierMedium].Combined().IsZero())
	assert.True(t, totals[model.FeeTierHigh].Combined().IsZero())
	assert.Equal(t, 1, acc.Records())

	_, err = Aggregate([]model.LiquidityRecord{model.PositionRecord(model.FeeTier(3), dec(1))})
	require.ErrorIs(t, err, model.ErrUnknownFeeTier)
}

func TestAggregateRejectsNegativeWeight(t *testing.T) {
	_, err := Aggregate([]model.LiquidityRecord{model.PositionRecord(model.FeeTierLow, dec(-1))})
	require.ErrorIs(t, err, ErrNegativeWeight)
}

func TestParseWeight(t *testing.T) {
	w, err := ParseWeight("12345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567890", w.String())

	w, err = ParseWeight("")
	require.NoError(t, err)
	assert.True(t, w.IsZero())

	_, err = ParseWeight("not-a-number")
	require.Error(t, err)

	_, err = ParseWeight("-3")
	require.ErrorIs(t, err, ErrNegativeWeight)
}
