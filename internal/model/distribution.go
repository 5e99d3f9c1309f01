package model

import (
	"encoding/json"
	"math"
	"strconv"
)

// Distribution holds the share of activity attributed to each fee tier.
type Distribution struct {
	shares [numFeeTiers]float64
}

// NewDistribution builds a distribution from shares in tier order.
func NewDistribution(low, medium, high float64) Distribution {
	return Distribution{shares: [numFeeTiers]float64{low, medium, high}}
}

func (d Distribution) Share(tier FeeTier) float64 {
	if !tier.Valid() {
		return 0
	}
	return d.shares[tier]
}

func (d Distribution) Sum() float64 {
	var sum float64
	for _, share := range d.shares {
		sum += share
	}
	return sum
}

// IsZero reports whether no tier has any recorded activity.
func (d Distribution) IsZero() bool {
	for _, share := range d.shares {
		if share != 0 {
			return false
		}
	}
	return true
}

// Percentages renders each share as a whole-number percentage keyed by fee amount.
func (d Distribution) Percentages() map[string]string {
	out := make(map[string]string, numFeeTiers)
	for _, tier := range FeeTiers() {
		out[tier.String()] = strconv.FormatFloat(math.Round(d.shares[tier]*100), 'f', 0, 64)
	}
	return out
}

// MarshalJSON encodes the distribution as {"500": x, "3000": y, "10000": z}.
func (d Distribution) MarshalJSON() ([]byte, error) {
	out := make(map[string]float64, numFeeTiers)
	for _, tier := range FeeTiers() {
		out[tier.String()] = d.shares[tier]
	}
	return json.Marshal(out)
}
