package currency

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat_WholeNumberDropsDecimals(t *testing.T) {
	got := Format(decimal.NewFromInt(1000), "USD")
	if got != "$1,000" {
		t.Errorf("Expected $1,000, got %s", got)
	}
}

func TestFormat_FractionalKeepsDecimals(t *testing.T) {
	got := Format(decimal.RequireFromString("1000.5"), "USD")
	if got != "$1,000.50" {
		t.Errorf("Expected $1,000.50, got %s", got)
	}
}

func TestFormat_ZeroDecimalCurrency(t *testing.T) {
	got := Format(decimal.RequireFromString("5.4"), "JPY")
	if got != "¥5" {
		t.Errorf("Expected ¥5, got %s", got)
	}
}

func TestFormat_SymbolAfterWithEuropeanSeparators(t *testing.T) {
	got := Format(decimal.RequireFromString("1234.56"), "EUR")
	if got != "1.234,56€" {
		t.Errorf("Expected 1.234,56€, got %s", got)
	}
}

func TestFormat_UnknownCodePassthrough(t *testing.T) {
	got := Format(decimal.RequireFromString("1234.5"), "XXX")
	if got != "1234.5" {
		t.Errorf("Expected bare numeric string, got %s", got)
	}
}

func TestFormat_Negative(t *testing.T) {
	got := Format(decimal.RequireFromString("-1234.56"), "USD")
	if got != "-$1,234.56" {
		t.Errorf("Expected -$1,234.56, got %s", got)
	}
}

func TestFormat_LargeGrouping(t *testing.T) {
	got := Format(decimal.NewFromInt(1234567890), "PKR")
	if got != "₨1,234,567,890" {
		t.Errorf("Expected ₨1,234,567,890, got %s", got)
	}
}

func TestFormat_SmallAmountNoGrouping(t *testing.T) {
	got := Format(decimal.RequireFromString("999.99"), "GBP")
	if got != "£999.99" {
		t.Errorf("Expected £999.99, got %s", got)
	}
}

func TestFormatString_ValidNumber(t *testing.T) {
	got := FormatString(" 45.5 ", "USD")
	if got != "$45.50" {
		t.Errorf("Expected $45.50, got %s", got)
	}
}

func TestFormatString_GarbagePassthrough(t *testing.T) {
	got := FormatString("not a number", "USD")
	if got != "not a number" {
		t.Errorf("Expected input returned unchanged, got %s", got)
	}
}
