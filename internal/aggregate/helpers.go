package aggregate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const ratioScale = 18

// ParseWeight parses a subgraph BigInt/BigDecimal string into a weight.
// Empty input is treated as zero.
func ParseWeight(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid weight: %s", value)
	}
	if parsed.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNegativeWeight, value)
	}
	return parsed, nil
}
