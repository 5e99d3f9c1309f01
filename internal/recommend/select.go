package recommend

import "feeTierScope/internal/model"

// Recommend picks the tier with the largest non-zero share.
// Ties go to the lowest-fee tier. It returns false when every share is zero.
func Recommend(dist model.Distribution) (model.FeeTier, bool) {
	var (
		best     model.FeeTier
		bestRate float64
		found    bool
	)
	for _, tier := range model.FeeTiers() {
		rate := dist.Share(tier)
		if rate == 0 {
			continue
		}
		if !found || rate > bestRate {
			best, bestRate, found = tier, rate, true
		}
	}
	return best, found
}
