package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownFeeTier is returned for fee amounts outside the supported tiers.
var ErrUnknownFeeTier = errors.New("unknown fee tier")

// FeeTier is one of the three pool fee tiers.
type FeeTier uint8

const (
	FeeTierLow FeeTier = iota
	FeeTierMedium
	FeeTierHigh

	numFeeTiers = 3
)

type feeTierInfo struct {
	fee         uint32
	tickSpacing int
	label       string
	description string
}

var feeTierTable = [numFeeTiers]feeTierInfo{
	FeeTierLow:    {fee: 500, tickSpacing: 10, label: "0.05%", description: "Best for stable pairs."},
	FeeTierMedium: {fee: 3000, tickSpacing: 60, label: "0.3%", description: "Best for most pairs."},
	FeeTierHigh:   {fee: 10000, tickSpacing: 200, label: "1%", description: "Best for exotic pairs."},
}

// FeeTiers lists every tier in tie-break order (lowest fee first).
func FeeTiers() [numFeeTiers]FeeTier {
	return [numFeeTiers]FeeTier{FeeTierLow, FeeTierMedium, FeeTierHigh}
}

// FeeTierFromAmount maps a pool fee amount (hundredths of a bip) to its tier.
func FeeTierFromAmount(fee uint32) (FeeTier, error) {
	for _, tier := range FeeTiers() {
		if feeTierTable[tier].fee == fee {
			return tier, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownFeeTier, fee)
}

// ParseFeeTier parses a decimal fee amount such as "3000".
func ParseFeeTier(input string) (FeeTier, error) {
	fee, err := strconv.ParseUint(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFeeTier, input)
	}
	return FeeTierFromAmount(uint32(fee))
}

func (t FeeTier) Valid() bool {
	return t < numFeeTiers
}

// Fee returns the fee amount in hundredths of a bip.
func (t FeeTier) Fee() uint32 {
	if !t.Valid() {
		return 0
	}
	return feeTierTable[t].fee
}

func (t FeeTier) TickSpacing() int {
	if !t.Valid() {
		return 0
	}
	return feeTierTable[t].tickSpacing
}

func (t FeeTier) Label() string {
	if !t.Valid() {
		return ""
	}
	return feeTierTable[t].label
}

func (t FeeTier) Description() string {
	if !t.Valid() {
		return ""
	}
	return feeTierTable[t].description
}

func (t FeeTier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("FeeTier(%d)", uint8(t))
	}
	return strconv.FormatUint(uint64(feeTierTable[t].fee), 10)
}

func (t FeeTier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownFeeTier, uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *FeeTier) UnmarshalText(text []byte) error {
	parsed, err := ParseFeeTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
