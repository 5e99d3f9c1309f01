package subgraph

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"feeTierScope/internal/aggregate"
	"feeTierScope/internal/metrics"
	"feeTierScope/internal/model"
)

// DefaultURL is the public v3 testing subgraph.
const DefaultURL = "https://api.thegraph.com/subgraphs/name/ianlapham/uniswap-v3-testing"

// Config controls the subgraph client.
type Config struct {
	URL            string
	MaxRetries     int
	RetryBackoff   time.Duration
	RequestTimeout time.Duration
	// MaxTickPages bounds tick pagination; 0 means a single page.
	MaxTickPages int
	HTTPClient   *http.Client
}

// Client executes the fixed fee-tier and tick queries against a subgraph.
type Client struct {
	cfg    Config
	gql    *graphql.Client
	logger *zap.Logger
	group  singleflight.Group
}

func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("subgraph url is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxTickPages <= 0 {
		cfg.MaxTickPages = 1
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	gql := graphql.NewClient(cfg.URL, graphql.WithHTTPClient(httpClient))
	gql.Log = func(s string) { logger.Debug(s) }

	return &Client{cfg: cfg, gql: gql, logger: logger}, nil
}

func (c *Client) run(ctx context.Context, name string, req *graphql.Request, resp interface{}) error {
	start := time.Now()
	err := withRetry(ctx, c.cfg.MaxRetries, c.cfg.RetryBackoff, func(ctx context.Context, attempt int) error {
		err := c.gql.Run(ctx, req, resp)
		if err != nil {
			c.logger.Warn("subgraph query failed", zap.String("query", name), zap.Int("attempt", attempt), zap.Error(err))
		}
		return err
	})
	metrics.QueryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	metrics.QueriesTotal.WithLabelValues(name, metrics.Outcome(err)).Inc()
	if err != nil {
		return fmt.Errorf("query %s: %w", name, err)
	}
	return nil
}

// PositionRecords returns position liquidity for both orderings of pair.
func (c *Client) PositionRecords(ctx context.Context, pair model.TokenPair) ([]model.LiquidityRecord, error) {
	req := graphql.NewRequest(positionsQuery)
	req.Var("token0", pair.Token0)
	req.Var("token1", pair.Token1)

	var resp positionsResponse
	if err := c.run(ctx, "positions", req, &resp); err != nil {
		return nil, err
	}

	rows := append(resp.AsToken0, resp.AsToken1...)
	records := make([]model.LiquidityRecord, 0, len(rows))
	for _, row := range rows {
		tier, err := model.ParseFeeTier(row.Pool.FeeTier)
		if err != nil {
			c.dropRow("positions", "fee_tier", err)
			continue
		}
		liquidity, err := aggregate.ParseWeight(row.Liquidity)
		if err != nil {
			c.dropRow("positions", "amount", err)
			continue
		}
		records = append(records, model.PositionRecord(tier, liquidity))
	}
	return records, nil
}

// PoolRecords returns two-sided pool TVL for both orderings of pair.
func (c *Client) PoolRecords(ctx context.Context, pair model.TokenPair) ([]model.LiquidityRecord, error) {
	req := graphql.NewRequest(poolsQuery)
	req.Var("token0", pair.Token0)
	req.Var("token1", pair.Token1)

	var resp poolsResponse
	if err := c.run(ctx, "pools", req, &resp); err != nil {
		return nil, err
	}

	rows := append(resp.AsToken0, resp.AsToken1...)
	records := make([]model.LiquidityRecord, 0, len(rows))
	for _, row := range rows {
		tier, err := model.ParseFeeTier(row.FeeTier)
		if err != nil {
			c.dropRow("pools", "fee_tier", err)
			continue
		}
		tvl0, err := aggregate.ParseWeight(row.TotalValueLockedToken0)
		if err != nil {
			c.dropRow("pools", "amount", err)
			continue
		}
		tvl1, err := aggregate.ParseWeight(row.TotalValueLockedToken1)
		if err != nil {
			c.dropRow("pools", "amount", err)
			continue
		}
		records = append(records, model.TVLRecord(tier, tvl0, tvl1))
	}
	return records, nil
}

// SurroundingTicks returns the initialized ticks of a pool inside window.
// The window is clamped to the protocol tick range and fetched page by page.
// Concurrent calls for the same pool and window share one fetch.
func (c *Client) SurroundingTicks(ctx context.Context, poolAddress string, window model.TickWindow) ([]model.Tick, error) {
	clamped, err := ClampWindow(window)
	if err != nil {
		return nil, err
	}
	poolAddress = strings.ToLower(poolAddress)
	key := fmt.Sprintf("%s:%d:%d", poolAddress, clamped.Lower, clamped.Upper)

	value, err, _ := c.group.Do(key, func() (interface{}, error) {
		return c.fetchTicks(ctx, poolAddress, clamped)
	})
	if err != nil {
		return nil, err
	}
	ticks, _ := value.([]model.Tick)
	return ticks, nil
}

func (c *Client) fetchTicks(ctx context.Context, poolAddress string, window model.TickWindow) ([]model.Tick, error) {
	var out []model.Tick
	for page := 0; page < c.cfg.MaxTickPages; page++ {
		req := graphql.NewRequest(surroundingTicksQuery)
		req.Var("poolAddress", poolAddress)
		req.Var("tickIdxLowerBound", window.Lower)
		req.Var("tickIdxUpperBound", window.Upper)
		req.Var("skip", page*tickPageSize)

		var resp ticksResponse
		if err := c.run(ctx, "ticks", req, &resp); err != nil {
			return nil, err
		}

		for _, row := range resp.Ticks {
			idx, err := strconv.Atoi(strings.TrimSpace(row.TickIdx))
			if err != nil {
				c.dropRow("ticks", "tick_idx", err)
				continue
			}
			out = append(out, model.Tick{
				TickIdx:        idx,
				LiquidityGross: row.LiquidityGross,
				LiquidityNet:   row.LiquidityNet,
				Price0:         row.Price0,
				Price1:         row.Price1,
			})
		}

		if len(resp.Ticks) < tickPageSize {
			return out, nil
		}
	}

	c.logger.Warn("tick pagination limit reached",
		zap.String("pool", poolAddress),
		zap.Int("max_pages", c.cfg.MaxTickPages),
		zap.Int("ticks", len(out)),
	)
	return out, nil
}

// PoolTick returns the pool's current tick, or nil when the pool is unknown
// to the subgraph or not yet initialized.
func (c *Client) PoolTick(ctx context.Context, poolAddress string) (*int, error) {
	req := graphql.NewRequest(poolTickQuery)
	req.Var("id", strings.ToLower(poolAddress))

	var resp poolTickResponse
	if err := c.run(ctx, "pool_tick", req, &resp); err != nil {
		return nil, err
	}
	if resp.Pool == nil || resp.Pool.Tick == nil {
		return nil, nil
	}
	tick, err := strconv.Atoi(strings.TrimSpace(*resp.Pool.Tick))
	if err != nil {
		return nil, fmt.Errorf("parse pool tick: %w", err)
	}
	return &tick, nil
}

func (c *Client) dropRow(query, reason string, err error) {
	metrics.RecordsDropped.WithLabelValues(query, reason).Inc()
	c.logger.Warn("drop subgraph row", zap.String("query", query), zap.String("reason", reason), zap.Error(err))
}
