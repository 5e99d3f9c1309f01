package subgraph

type positionRow struct {
	Pool struct {
		FeeTier string `json:"feeTier"`
	} `json:"pool"`
	Liquidity string `json:"liquidity"`
}

type positionsResponse struct {
	AsToken0 []positionRow `json:"asToken0"`
	AsToken1 []positionRow `json:"asToken1"`
}

type poolRow struct {
	FeeTier                string `json:"feeTier"`
	TotalValueLockedToken0 string `json:"totalValueLockedToken0"`
	TotalValueLockedToken1 string `json:"totalValueLockedToken1"`
}

type poolsResponse struct {
	AsToken0 []poolRow `json:"asToken0"`
	AsToken1 []poolRow `json:"asToken1"`
}

type tickRow struct {
	TickIdx        string `json:"tickIdx"`
	LiquidityGross string `json:"liquidityGross"`
	LiquidityNet   string `json:"liquidityNet"`
	Price0         string `json:"price0"`
	Price1         string `json:"price1"`
}

type ticksResponse struct {
	Ticks []tickRow `json:"ticks"`
}

type poolTickResponse struct {
	Pool *struct {
		Tick *string `json:"tick"`
	} `json:"pool"`
}
