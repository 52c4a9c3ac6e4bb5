package model

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// maxExponent bounds the decimal exponent of a parsed amount. decimal
// rescales to the widest exponent on every Add and format, so an input like
// "1e2000000000" would otherwise allocate a number billions of digits long.
const maxExponent = 18

// ParseAmount reads a money amount permissively: surrounding space is
// ignored, the longest leading number is used ("12.5kg" is 12.5), and
// anything unparseable, negative, or with an exponent beyond ±18 becomes zero.
func ParseAmount(s string) decimal.Decimal {
	m := numericPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	if !ExponentInRange(d) {
		return decimal.Zero
	}
	return d
}

// ExponentInRange reports whether d's exponent is within ±18. Check it
// before any arithmetic on an untrusted decimal.
func ExponentInRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp <= maxExponent && exp >= -maxExponent
}
