package model

import "strings"

// TokenPair is an unordered pair of token identifiers as supplied by a caller.
type TokenPair struct {
	Token0 string `json:"token0"`
	Token1 string `json:"token1"`
}

// NewTokenPair normalises both identifiers to trimmed lower-case.
func NewTokenPair(token0, token1 string) TokenPair {
	return TokenPair{
		Token0: strings.ToLower(strings.TrimSpace(token0)),
		Token1: strings.ToLower(strings.TrimSpace(token1)),
	}
}

// Complete reports whether both tokens are present.
func (p TokenPair) Complete() bool {
	return p.Token0 != "" && p.Token1 != ""
}

func (p TokenPair) Reversed() TokenPair {
	return TokenPair{Token0: p.Token1, Token1: p.Token0}
}

// Key identifies the pair for query coalescing.
func (p TokenPair) Key() string {
	return p.Token0 + "/" + p.Token1
}

// Canonical orders the tokens so both orderings of a pair compare equal.
func (p TokenPair) Canonical() TokenPair {
	if p.Token1 < p.Token0 {
		return p.Reversed()
	}
	return p
}

// SameAs reports whether p and other name the same pair in either order.
func (p TokenPair) SameAs(other TokenPair) bool {
	return p.Canonical() == other.Canonical()
}
