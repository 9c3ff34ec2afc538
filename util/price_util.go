package util

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var jp = message.NewPrinter(language.Japanese)

// FormatPrice renders v in the row's currency the way the list screen shows
// prices, e.g. ￥15,240 for JPY. An unrecognized currency code falls back to a
// grouped decimal with the raw code appended.
func FormatPrice(v float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return jp.Sprintf("%v %s", number.Decimal(v), strings.ToUpper(code))
	}
	return jp.Sprintf("%v", currency.Symbol(unit.Amount(v)))
}

// FormatDiff renders a price delta with an explicit plus sign on gains.
func FormatDiff(v float64) string {
	s := jp.Sprintf("%v", number.Decimal(v))
	if v > 0 {
		return "+" + s
	}
	return s
}
