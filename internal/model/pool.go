package model

// Pool identifies a v3 pool for a token pair and fee tier.
type Pool struct {
	Address string  `json:"address"`
	Token0  string  `json:"token0"`
	Token1  string  `json:"token1"`
	Tier    FeeTier `json:"fee"`
	// CurrentTick is nil while the pool is not initialized or unknown.
	CurrentTick *int `json:"current_tick,omitempty"`
}
