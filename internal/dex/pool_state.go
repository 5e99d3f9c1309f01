package dex

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// ErrPoolNotDeployed is returned when the pool address has no code.
var ErrPoolNotDeployed = errors.New("pool not deployed")

// ContractCaller is the subset of the chain client used for pool reads.
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Slot0 holds the price fields of a pool's slot0.
type Slot0 struct {
	SqrtPriceX96 *big.Int
	Tick         int
}

// Initialized reports whether the pool price has been set.
func (s Slot0) Initialized() bool {
	return s.SqrtPriceX96 != nil && s.SqrtPriceX96.Sign() > 0
}

// CurrentTick reads slot0 and returns the tick, or nil when the pool is not
// deployed or not initialized.
func CurrentTick(ctx context.Context, caller ContractCaller, pool common.Address, logger *zap.Logger) (*int, error) {
	if caller == nil {
		return nil, fmt.Errorf("chain client is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	slot0, err := FetchSlot0(ctx, caller, pool)
	if errors.Is(err, ErrPoolNotDeployed) {
		return nil, nil
	}
	if err != nil {
		logger.Debug("slot0 call failed", zap.String("pool", pool.Hex()), zap.Error(err))
		return nil, err
	}
	if !slot0.Initialized() {
		return nil, nil
	}
	tick := slot0.Tick
	return &tick, nil
}

// FetchSlot0 loads slot0 at the latest block.
func FetchSlot0(ctx context.Context, caller ContractCaller, pool common.Address) (Slot0, error) {
	poolABI, err := V3PoolABI()
	if err != nil {
		return Slot0{}, fmt.Errorf("parse pool abi: %w", err)
	}

	values, err := callPoolMethod(ctx, caller, pool, poolABI, "slot0", nil)
	if err != nil {
		return Slot0{}, err
	}
	return decodeSlot0(values)
}

func decodeSlot0(values []interface{}) (Slot0, error) {
	if len(values) < 2 {
		return Slot0{}, fmt.Errorf("slot0 return size %d", len(values))
	}
	sqrt, err := asBigInt(values[0])
	if err != nil {
		return Slot0{}, fmt.Errorf("sqrt price: %w", err)
	}
	tickInt, err := asBigInt(values[1])
	if err != nil {
		return Slot0{}, fmt.Errorf("tick: %w", err)
	}
	tick, err := int24FromBig(tickInt)
	if err != nil {
		return Slot0{}, fmt.Errorf("tick: %w", err)
	}
	return Slot0{SqrtPriceX96: sqrt, Tick: int(tick)}, nil
}

func callPoolMethod(ctx context.Context, caller ContractCaller, pool common.Address, poolABI abi.ABI, method string, block *big.Int) ([]interface{}, error) {
	data, err := poolABI.Pack(method)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	msg := ethereum.CallMsg{To: &pool, Data: data}
	resp, err := caller.CallContract(ctx, msg, block)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	if len(resp) == 0 {
		return nil, fmt.Errorf("call %s: %w", method, ErrPoolNotDeployed)
	}
	values, err := poolABI.Unpack(method, resp)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	return values, nil
}

func asBigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	default:
		return nil, fmt.Errorf("unsupported int type %T", value)
	}
}

func int24FromBig(value *big.Int) (int32, error) {
	min := big.NewInt(-1 << 23)
	max := big.NewInt((1 << 23) - 1)
	if value.Cmp(min) < 0 || value.Cmp(max) > 0 {
		return 0, fmt.Errorf("int24 overflow: %s", value.String())
	}
	return int32(value.Int64()), nil
}
