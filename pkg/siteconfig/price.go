package siteconfig

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type priceFormat struct {
	tag    language.Tag
	symbol string
	spaced bool
}

var priceFormats = map[currency.Unit]priceFormat{
	currency.BRL: {tag: language.BrazilianPortuguese, symbol: "R$", spaced: true},
	currency.USD: {tag: language.AmericanEnglish, symbol: "$"},
}

// FormatPrice formats amount in the configured currency with the grouping
// and decimal separators of the currency's home locale, e.g. "R$ 1.234,50"
// or "$1,234.50". An invalid currency falls back to BRL.
func (c Config) FormatPrice(amount float64) string {
	unit, err := c.currencyUnit()
	if err != nil {
		unit = currency.BRL
	}
	f := priceFormats[unit]

	value := message.NewPrinter(f.tag).Sprint(number.Decimal(amount, number.Scale(2)))
	if f.spaced {
		return f.symbol + " " + value
	}
	return f.symbol + value
}
