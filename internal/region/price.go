package region

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Fixed exchange rates per currency code. A currency without a listed rate
// converts 1:1. Rates are deliberately static; live rates are out of scope.
var exchangeRates = map[string]float64{
	"KZT": 450,
	"UZS": 12500,
	"KGS": 89,
}

var printers = map[Language]*message.Printer{
	LangRU: message.NewPrinter(language.Russian),
	LangKZ: message.NewPrinter(language.Kazakh),
	LangUZ: message.NewPrinter(language.Uzbek),
}

// DisplayPrice converts a USD catalog price to the current country's
// currency. The converted amount is rounded up to the nearest thousand minus
// ten, so displayed prices end in 990.
func (r *Resolver) DisplayPrice(priceUSD float64) int64 {
	info := countryTable[r.country]
	rate, ok := exchangeRates[info.Currency]
	if !ok {
		rate = 1
	}
	local := math.Round(priceUSD * rate)
	return int64(math.Ceil(local/1000)*1000) - 10
}

// FormatPrice renders a converted price with locale-aware digit grouping and
// the currency symbol.
func (r *Resolver) FormatPrice(priceUSD float64) string {
	info := countryTable[r.country]
	displayed := r.DisplayPrice(priceUSD)

	p := printers[r.language]
	if p == nil {
		p = printers[LangRU]
	}
	return p.Sprint(number.Decimal(displayed)) + " " + info.CurrencySymbol
}
