package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"feeTierScope/internal/chain"
	"feeTierScope/internal/config"
	"feeTierScope/internal/depth"
	"feeTierScope/internal/source"
	"feeTierScope/internal/storage/postgres"
	"feeTierScope/internal/subgraph"
)

// env bundles the loaded config, logger and lazily built backends.
type env struct {
	cfg     config.Config
	logger  *zap.Logger
	closers []func()
	gql     *subgraph.Client
}

func newEnv(cmd *cobra.Command) (*env, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger}, nil
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
	_ = e.logger.Sync()
}

func (e *env) subgraph() (*subgraph.Client, error) {
	if e.gql != nil {
		return e.gql, nil
	}
	client, err := subgraph.NewClient(subgraph.Config{
		URL:            e.cfg.SubgraphURL,
		MaxRetries:     e.cfg.MaxRetries,
		RetryBackoff:   e.cfg.RetryBackoff,
		RequestTimeout: e.cfg.RequestTimeout,
		MaxTickPages:   e.cfg.MaxTickPages,
	}, e.logger.Named("subgraph"))
	if err != nil {
		return nil, err
	}
	e.gql = client
	return client, nil
}

// recordSource builds the configured fee-tier record source.
func (e *env) recordSource(ctx context.Context) (source.Source, error) {
	switch e.cfg.Source {
	case source.KindPositions, source.KindPools:
		client, err := e.subgraph()
		if err != nil {
			return nil, err
		}
		if e.cfg.Source == source.KindPools {
			return subgraph.PoolSource{Client: client}, nil
		}
		return subgraph.PositionSource{Client: client}, nil
	case source.KindPostgres:
		store, err := postgres.NewStore(ctx, e.cfg.PGDSN, e.logger.Named("postgres"))
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		e.closers = append(e.closers, store.Close)
		e.logger.Info("postgres source ready", zap.String("pg_dsn", redactDSN(e.cfg.PGDSN)))
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported source: %q", e.cfg.Source)
	}
}

func (e *env) tracker(ctx context.Context) (*source.Tracker, error) {
	src, err := e.recordSource(ctx)
	if err != nil {
		return nil, err
	}
	return source.NewTracker(src, e.logger.Named("source")), nil
}

// depthService reads the current tick over RPC when configured, otherwise
// from the subgraph pool entity.
func (e *env) depthService(ctx context.Context) (*depth.Service, error) {
	client, err := e.subgraph()
	if err != nil {
		return nil, err
	}

	var reader depth.TickReader = depth.SubgraphTickReader{Client: client}
	if e.cfg.RPCURL != "" {
		chainClient, err := chain.NewClient(ctx, e.cfg.RPCURL)
		if err != nil {
			return nil, err
		}
		e.closers = append(e.closers, chainClient.Close)
		chainID, err := chainClient.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("get chain id: %w", err)
		}
		e.logger.Info("rpc connected", zap.String("chain_id", chainID.String()))
		reader = depth.ChainTickReader{Caller: chainClient, Logger: e.logger.Named("chain")}
	}

	return depth.NewService(depth.Config{
		Factory:          common.HexToAddress(e.cfg.Factory),
		SurroundingTicks: e.cfg.SurroundingTicks,
	}, reader, client, e.logger.Named("depth")), nil
}

func writeJSON(value interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
