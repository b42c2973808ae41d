package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a required decimal field.
// decimal rejects NaN and infinities, so any success is a finite number.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, NewValidationError(field, "value is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, NewValidationError(field, fmt.Sprintf("%q is not a number", s))
	}
	return d, nil
}

// ParseOptionalAmount is like ParseAmount but an empty string yields def
func ParseOptionalAmount(field, s string, def decimal.Decimal) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return ParseAmount(field, s)
}
