package insight

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Currency formats amounts with a leading symbol, e.g. "₹12,500.5".
type Currency string

// DefaultCurrency is the Indian Rupee sign.
const DefaultCurrency Currency = "₹"

// Format renders d with thousands separators and at most two decimals,
// trailing zeros trimmed. The digits are exact at any magnitude.
func (c Currency) Format(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}

	out := sign + string(c) + humanize.BigComma(r.BigInt())
	if _, frac, ok := strings.Cut(r.String(), "."); ok {
		out += "." + frac
	}
	return out
}
