package depth

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"feeTierScope/internal/dex"
	"feeTierScope/internal/subgraph"
)

// ChainTickReader reads the current tick from slot0 over RPC.
type ChainTickReader struct {
	Caller dex.ContractCaller
	Logger *zap.Logger
}

func (r ChainTickReader) CurrentTick(ctx context.Context, pool common.Address) (*int, error) {
	return dex.CurrentTick(ctx, r.Caller, pool, r.Logger)
}

// SubgraphTickReader reads the current tick from the indexed pool entity.
type SubgraphTickReader struct {
	Client *subgraph.Client
}

func (r SubgraphTickReader) CurrentTick(ctx context.Context, pool common.Address) (*int, error) {
	return r.Client.PoolTick(ctx, pool.Hex())
}
