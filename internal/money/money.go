// Package money converts between human-written amount strings and exact
// integer minor-unit (cents) values. Bank exports are messy, so parsing is
// deliberately lenient: a malformed numeric segment reads as zero instead
// of failing the whole import.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// minorDigits is the fixed fractional precision. Two digits: cents.
const minorDigits = 2

// centsPerUnit is 10^minorDigits.
const centsPerUnit = 100

// ParseCents converts a decimal amount string into minor units.
//
// The text is split on '.' into a whole part and a fractional part. A
// missing fractional part counts as zero, and a short fractional part is
// right-padded with zeros (".2" reads as ".20"). The sign is taken from
// the whole part only and applies to both parts, so "-0.01" yields -1 and
// "-.02" yields -2.
//
// Segments that fail to parse as integers degrade to zero rather than
// failing the call; exact reports false when that happened, or when the
// text held more than one separator, so callers can log the noise.
// Fractional parts longer than two digits are combined positionally as
// given; callers should treat two-digit precision as the contract.
func ParseCents(text string) (cents int64, exact bool) {
	wholeStr := "0"
	fracStr := "0"
	exact = true

	parts := strings.Split(text, ".")
	switch len(parts) {
	case 1:
		wholeStr = parts[0]
	case 2:
		wholeStr = parts[0]
		fracStr = parts[1]
		for len(fracStr) < minorDigits {
			fracStr += "0"
		}
	default:
		// More than one separator is malformed; both segments read as zero.
		exact = false
	}

	negative := strings.HasPrefix(wholeStr, "-")

	whole, err := strconv.ParseInt(wholeStr, 10, 64)
	if err != nil {
		whole = 0
		// An empty or sign-only whole part (".2", "-.02") is a legitimate
		// zero, not noise.
		if wholeStr != "" && wholeStr != "-" && wholeStr != "+" {
			exact = false
		}
	}

	frac, err := strconv.ParseInt(fracStr, 10, 64)
	if err != nil {
		frac = 0
		exact = false
	}
	if negative {
		frac = -frac
	}

	return whole*centsPerUnit + frac, exact
}

// FormatCents renders minor units as a fixed two-decimal string,
// e.g. -1201 -> "-12.01".
func FormatCents(cents int64) string {
	return decimal.New(cents, -minorDigits).StringFixed(minorDigits)
}
