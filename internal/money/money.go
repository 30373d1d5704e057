// Package money converts between the decimal amount strings used on the wire
// ("100.00") and the int64 minor units used everywhere else. Internal
// arithmetic is always integral.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Parse converts a decimal amount string into minor units. At most two
// fractional digits are accepted.
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if d.Exponent() < -2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	minor := d.Shift(2)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	return minor.IntPart(), nil
}

// Format renders minor units as a two-decimal string.
func Format(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
