// Package money provides deterministic 2-decimal money arithmetic and
// formatting for ledger amounts.
package money

import (
	"math"
	"strconv"
)

// epsilon is the machine epsilon for float64. Adding it before rounding
// nudges values off binary-float truncation boundaries, so e.g. 0.1+0.2
// rounds to 0.30 rather than 0.29999....
const epsilon = 2.220446049250313e-16

// Round2 rounds to 2 decimal places. Idempotent: Round2(Round2(x)) == Round2(x).
func Round2(n float64) float64 {
	return math.Round((n+epsilon)*100) / 100
}

// Format renders the amount with exactly two decimal digits, optionally
// prefixed with a currency symbol.
func Format(n float64, withSymbol bool) string {
	s := strconv.FormatFloat(Round2(n), 'f', 2, 64)
	if withSymbol {
		return "$" + s
	}
	return s
}

// FormatSigned renders the amount with an explicit +/- sign, except exact
// zero which renders unsigned. The sign precedes the currency symbol:
// "+$12.34", never "$+12.34".
func FormatSigned(n float64, withSymbol bool) string {
	v := Round2(n)
	if v == 0 {
		return Format(0, withSymbol)
	}
	sign := "+"
	if v < 0 {
		sign = "-"
	}
	return sign + Format(math.Abs(v), withSymbol)
}
