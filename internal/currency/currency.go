// Package currency formats and parses money amounts for display.
//
// Amounts are stored as plain numbers and carry no currency of their own; the
// active profile's currency code decides how they are rendered. Digit
// localization (grouping separators, fraction digits) goes through
// golang.org/x/text so thousands separators follow locale rules rather than
// hand-rolled string splicing.
package currency

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCode is the fallback currency for unknown codes.
const DefaultCode = "USD"

type info struct {
	symbol string
	// digits is the number of minor-unit fraction digits. Zero for
	// currencies without a minor unit (JPY).
	digits int
	// spaced places a space between symbol and digits ("Rs 10.50").
	spaced bool
}

// The supported set mirrors the profile's currency choices. Display follows
// the en-US convention: symbol prefix, comma grouping, dot decimal.
var currencies = map[string]info{
	"USD": {symbol: "$", digits: 2},
	"EUR": {symbol: "€", digits: 2},
	"GBP": {symbol: "£", digits: 2},
	"JPY": {symbol: "¥", digits: 0},
	"CAD": {symbol: "CA$", digits: 2},
	"AUD": {symbol: "A$", digits: 2},
	"LKR": {symbol: "Rs", digits: 2, spaced: true},
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Codes returns the supported currency codes in a stable order.
func Codes() []string {
	return []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "LKR"}
}

// IsKnown reports whether code is a supported currency.
func IsKnown(code string) bool {
	_, ok := currencies[code]
	return ok
}

func infoFor(code string) info {
	if in, ok := currencies[code]; ok {
		return in
	}
	return currencies[DefaultCode]
}

// Format renders amount as a display string for the given currency code.
// Unknown codes fall back to the default currency's rules.
func Format(amount float64, code string) string {
	in := infoFor(code)
	digits := printer.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(in.digits),
		number.MaxFractionDigits(in.digits)))
	if in.spaced {
		return in.symbol + " " + digits
	}
	return in.symbol + digits
}

// Parse extracts the numeric value from a display string. Everything except
// digits, the decimal point and a minus sign is stripped before parsing.
// Returns 0 when nothing numeric remains; it never fails.
func Parse(display string) float64 {
	var b strings.Builder
	for _, r := range display {
		if unicode.IsDigit(r) || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// Symbol returns the bare symbol for a currency code, derived by formatting
// zero and stripping digits and separators. Unknown codes return the code
// itself.
func Symbol(code string) string {
	if !IsKnown(code) {
		return code
	}
	formatted := Format(0, code)
	sym := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' || r == ',' {
			return -1
		}
		return r
	}, formatted)
	sym = strings.TrimSpace(sym)
	if sym == "" {
		return code
	}
	return sym
}
