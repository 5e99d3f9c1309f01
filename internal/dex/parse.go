package dex

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"feeTierScope/internal/model"
)

// ParseAddress converts a hex string into common.Address.
func ParseAddress(input string) (common.Address, error) {
	input = strings.TrimSpace(input)
	if !common.IsHexAddress(input) {
		return common.Address{}, fmt.Errorf("invalid address: %s", input)
	}
	return common.HexToAddress(input), nil
}

// ParseTokenPair validates both tokens of a pair as addresses.
func ParseTokenPair(pair model.TokenPair) (common.Address, common.Address, error) {
	tokenA, err := ParseAddress(pair.Token0)
	if err != nil {
		return common.Address{}, common.Address{}, fmt.Errorf("token0: %w", err)
	}
	tokenB, err := ParseAddress(pair.Token1)
	if err != nil {
		return common.Address{}, common.Address{}, fmt.Errorf("token1: %w", err)
	}
	if tokenA == tokenB {
		return common.Address{}, common.Address{}, fmt.Errorf("identical tokens: %s", tokenA.Hex())
	}
	return tokenA, tokenB, nil
}
