package model

// Protocol-wide tick index limits.
const (
	MinTick = -887272
	MaxTick = 887272
)

// TickWindow is an inclusive range of tick indices.
type TickWindow struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

// Contains reports whether tick lies inside the window.
func (w TickWindow) Contains(tick int) bool {
	return w.Lower <= tick && tick <= w.Upper
}

// Tick is an initialized tick as returned by the subgraph.
type Tick struct {
	TickIdx        int    `json:"tick_idx"`
	LiquidityGross string `json:"liquidity_gross"`
	LiquidityNet   string `json:"liquidity_net"`
	Price0         string `json:"price0"`
	Price1         string `json:"price1"`
}
