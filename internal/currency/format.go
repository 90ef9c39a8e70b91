// Package currency renders decimal amounts as display strings using the
// per-currency descriptor table. Formatting never fails: unknown codes
// and unparseable input degrade to plain numeric strings.
package currency

import (
	"strings"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Format renders amount according to the descriptor for code. An
// unknown code yields the bare numeric string.
//
// Whole-number amounts in a currency with decimal places are shown
// without decimals (100 -> "100", not "100.00"). This is a display
// simplification carried over from the mobile app, not standard
// currency formatting.
func Format(amount decimal.Decimal, code string) string {
	cur, ok := domain.LookupCurrency(code)
	if !ok {
		return amount.String()
	}

	places := int32(cur.DecimalPlaces)
	if cur.DecimalPlaces > 0 && amount.IsInteger() {
		places = 0
	}
	fixed := amount.StringFixed(places)

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")
	formatted := groupThousands(intPart, cur.ThousandsSeparator)
	if hasFrac {
		formatted += cur.DecimalSeparator + fracPart
	}

	if cur.Position == domain.SymbolAfter {
		formatted += cur.Symbol
	} else {
		formatted = cur.Symbol + formatted
	}
	if neg {
		formatted = "-" + formatted
	}
	return formatted
}

// FormatString is Format for untrusted input: if raw does not parse as
// a decimal number it is returned unchanged.
func FormatString(raw string, code string) string {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return Format(amount, code)
}

// groupThousands inserts sep between 3-digit clusters, right to left.
func groupThousands(digits string, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
