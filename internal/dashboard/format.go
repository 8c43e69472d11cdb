package dashboard

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencySuffix = " VNĐ"

var pricePrinter = message.NewPrinter(language.English)

// ConvertPrice groups the integer part of amount in thousands ("100,000").
func ConvertPrice(amount decimal.Decimal) string {
	return pricePrinter.Sprintf("%v", number.Decimal(amount.InexactFloat64(), number.MaxFractionDigits(3)))
}

// FormatPrice renders amount as a dong price label.
func FormatPrice(amount decimal.Decimal) string {
	return ConvertPrice(amount) + currencySuffix
}

// YesNo renders a boolean flag.
func YesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
