package dex

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"feeTierScope/internal/model"
)

// DefaultFactory is the Uniswap v3 factory on Ethereum mainnet.
const DefaultFactory = "0x1F98431c8aD98523631AE4a59f267346ea31F984"

// PoolInitCodeHash is the keccak256 of the v3 pool creation code.
var PoolInitCodeHash = common.HexToHash("0xe34f199b19b2b4f47f68442619d555527d244f78a3297ea89325f843f87b8b54")

// SortTokens orders two tokens the way the factory does.
func SortTokens(tokenA, tokenB common.Address) (common.Address, common.Address) {
	if bytes.Compare(tokenA.Bytes(), tokenB.Bytes()) > 0 {
		return tokenB, tokenA
	}
	return tokenA, tokenB
}

// ComputePoolAddress derives the CREATE2 pool address for a pair and tier.
func ComputePoolAddress(factory, tokenA, tokenB common.Address, tier model.FeeTier) common.Address {
	token0, token1 := SortTokens(tokenA, tokenB)
	salt := crypto.Keccak256Hash(
		common.LeftPadBytes(token0.Bytes(), 32),
		common.LeftPadBytes(token1.Bytes(), 32),
		common.LeftPadBytes(new(big.Int).SetUint64(uint64(tier.Fee())).Bytes(), 32),
	)
	return crypto.CreateAddress2(factory, salt, PoolInitCodeHash.Bytes())
}
