package domain

import "sort"

// SymbolPosition says whether the currency symbol precedes or follows
// the formatted number.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// Currency is static reference data describing how amounts in one
// currency are displayed. It is not persisted per-user; only the
// selected code is.
type Currency struct {
	Code               string         `json:"code"`
	Symbol             string         `json:"symbol"`
	Name               string         `json:"name"`
	Position           SymbolPosition `json:"position"`
	DecimalPlaces      int            `json:"decimalPlaces"`
	DecimalSeparator   string         `json:"decimalSeparator"`
	ThousandsSeparator string         `json:"thousandsSeparator"`
}

// DefaultCurrencyCode is used when no currency has been selected yet.
const DefaultCurrencyCode = "PKR"

var currencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro", Position: SymbolAfter, DecimalPlaces: 2, DecimalSeparator: ",", ThousandsSeparator: "."},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
	"JPY": {Code: "JPY", Symbol: "¥", Name: "Japanese Yen", Position: SymbolBefore, DecimalPlaces: 0, DecimalSeparator: ".", ThousandsSeparator: ","},
	"INR": {Code: "INR", Symbol: "₹", Name: "Indian Rupee", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
	"PKR": {Code: "PKR", Symbol: "₨", Name: "Pakistani Rupee", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
	"AUD": {Code: "AUD", Symbol: "A$", Name: "Australian Dollar", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
	"CAD": {Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
	"CNY": {Code: "CNY", Symbol: "¥", Name: "Chinese Yuan", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
	"AED": {Code: "AED", Symbol: "د.إ", Name: "UAE Dirham", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
	"SAR": {Code: "SAR", Symbol: "﷼", Name: "Saudi Riyal", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
	"SGD": {Code: "SGD", Symbol: "S$", Name: "Singapore Dollar", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
	"VUV": {Code: "VUV", Symbol: "Vt", Name: "Vanuatu Vatu", Position: SymbolBefore, DecimalPlaces: 0, DecimalSeparator: ".", ThousandsSeparator: ","},
	"YER": {Code: "YER", Symbol: "﷼", Name: "Yemeni Rial", Position: SymbolBefore, DecimalPlaces: 0, DecimalSeparator: ".", ThousandsSeparator: ","},
	"ZAR": {Code: "ZAR", Symbol: "R", Name: "South African Rand", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
	"ZMW": {Code: "ZMW", Symbol: "ZK", Name: "Zambian Kwacha", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
	"ZWL": {Code: "ZWL", Symbol: "Z$", Name: "Zimbabwean Dollar", Position: SymbolBefore, DecimalPlaces: 2, DecimalSeparator: ".", ThousandsSeparator: ","},
}

// LookupCurrency returns the descriptor for a currency code.
func LookupCurrency(code string) (Currency, bool) {
	c, ok := currencies[code]
	return c, ok
}

// Currencies returns all known currency descriptors ordered by code.
func Currencies() []Currency {
	out := make([]Currency, 0, len(currencies))
	for _, c := range currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

type SettingsRepository interface {
	GetCurrency() (string, error)
	SetCurrency(code string) error
}
