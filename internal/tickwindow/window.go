package tickwindow

import "feeTierScope/internal/model"

// DefaultSurroundingTicks is the number of spacings requested on each side.
const DefaultSurroundingTicks = 300

// Compute returns the window of surrounding spacings around currentTick.
// A surrounding count of 0 selects DefaultSurroundingTicks. The window is
// unavailable when the tick is unknown or the spacing is not positive.
// Bounds are not clamped to the protocol tick range.
func Compute(currentTick *int, tickSpacing int, surrounding int) (model.TickWindow, bool) {
	if currentTick == nil || tickSpacing <= 0 || surrounding < 0 {
		return model.TickWindow{}, false
	}
	if surrounding == 0 {
		surrounding = DefaultSurroundingTicks
	}

	offset := surrounding * tickSpacing
	return model.TickWindow{
		Lower: *currentTick - offset,
		Upper: *currentTick + offset,
	}, true
}

// ForTier looks up the spacing for tier. A nil tier means no fee tier is
// selected yet.
func ForTier(currentTick *int, tier *model.FeeTier, surrounding int) (model.TickWindow, bool) {
	if tier == nil || !tier.Valid() {
		return model.TickWindow{}, false
	}
	return Compute(currentTick, tier.TickSpacing(), surrounding)
}
