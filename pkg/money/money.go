package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyPrefix is the Peruvian sol symbol used across the storefront.
const CurrencyPrefix = "S/ "

var printer = message.NewPrinter(language.MustParse("es-PE"))

// Format renders an amount with es-PE grouping and exactly two decimals,
// e.g. 4064 -> "4,064.00". The stored value is never mutated, only rendered.
func Format(amount decimal.Decimal) string {
	return printer.Sprintf("%v", number.Decimal(
		amount.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatPEN renders an amount as Peruvian soles, e.g. "S/ 4,064.00".
func FormatPEN(amount decimal.Decimal) string {
	return CurrencyPrefix + Format(amount)
}
