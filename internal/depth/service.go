package depth

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"feeTierScope/internal/dex"
	"feeTierScope/internal/model"
	"feeTierScope/internal/source"
	"feeTierScope/internal/tickwindow"
)

// TickReader returns a pool's current tick, or nil if it is not initialized.
type TickReader interface {
	CurrentTick(ctx context.Context, pool common.Address) (*int, error)
}

// TickFetcher loads initialized ticks of a pool inside a window.
type TickFetcher interface {
	SurroundingTicks(ctx context.Context, poolAddress string, window model.TickWindow) ([]model.Tick, error)
}

// Config controls the depth service.
type Config struct {
	Factory          common.Address
	SurroundingTicks int
}

// Result is the liquidity-depth view for a pool.
type Result struct {
	Status source.Status     `json:"status"`
	Pool   *model.Pool       `json:"pool,omitempty"`
	Window *model.TickWindow `json:"window,omitempty"`
	Ticks  []model.Tick      `json:"ticks,omitempty"`
	Err    error             `json:"-"`
}

// Service resolves a pool, its tick window and the ticks inside it.
type Service struct {
	cfg     Config
	reader  TickReader
	fetcher TickFetcher
	logger  *zap.Logger
}

func NewService(cfg Config, reader TickReader, fetcher TickFetcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Factory == (common.Address{}) {
		cfg.Factory = common.HexToAddress(dex.DefaultFactory)
	}
	return &Service{cfg: cfg, reader: reader, fetcher: fetcher, logger: logger}
}

// Depth fetches surrounding ticks for the pool of pair and tier. Incomplete
// inputs or an uninitialized pool yield StatusNotRequested and no tick query.
// Backend failures yield StatusFailed.
func (s *Service) Depth(ctx context.Context, pair model.TokenPair, tier *model.FeeTier) Result {
	if !pair.Complete() || tier == nil || !tier.Valid() {
		return Result{Status: source.StatusNotRequested}
	}

	tokenA, tokenB, err := dex.ParseTokenPair(pair)
	if err != nil {
		s.logger.Warn("invalid token pair", zap.String("pair", pair.Key()), zap.Error(err))
		return Result{Status: source.StatusFailed, Err: err}
	}
	token0, token1 := dex.SortTokens(tokenA, tokenB)
	address := dex.ComputePoolAddress(s.cfg.Factory, token0, token1, *tier)

	pool := &model.Pool{
		Address: address.Hex(),
		Token0:  token0.Hex(),
		Token1:  token1.Hex(),
		Tier:    *tier,
	}

	tick, err := s.reader.CurrentTick(ctx, address)
	if err != nil {
		s.logger.Warn("current tick unavailable", zap.String("pool", pool.Address), zap.Error(err))
		return Result{Status: source.StatusFailed, Pool: pool, Err: fmt.Errorf("current tick: %w", err)}
	}
	pool.CurrentTick = tick

	window, ok := tickwindow.ForTier(tick, tier, s.cfg.SurroundingTicks)
	if !ok {
		return Result{Status: source.StatusNotRequested, Pool: pool}
	}

	ticks, err := s.fetcher.SurroundingTicks(ctx, pool.Address, window)
	if err != nil {
		s.logger.Warn("surrounding ticks failed", zap.String("pool", pool.Address), zap.Error(err))
		return Result{Status: source.StatusFailed, Pool: pool, Window: &window, Err: err}
	}

	s.logger.Debug("surrounding ticks loaded",
		zap.String("pool", pool.Address),
		zap.Int("lower", window.Lower),
		zap.Int("upper", window.Upper),
		zap.Int("ticks", len(ticks)),
	)
	return Result{Status: source.StatusSucceeded, Pool: pool, Window: &window, Ticks: ticks}
}
