package currency

import (
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Currency corresponds to an ISO 4217 currency code such as "EUR" or
// "USD". Instances are interned by a Registry: within one registry there
// is at most one live instance per code, so translated identity
// comparisons keep working.
type Currency struct {
	code string
}

// Code returns this currency's ISO 4217 currency code.
func (c *Currency) Code() string {
	return c.code
}

// String returns this currency's ISO 4217 currency code.
func (c *Currency) String() string {
	return c.code
}

// Symbol returns the currency symbol conventional in locale t, resolved
// through lk. The symbol follows the locale's own currency conventions,
// the way the platform formatter resolves it. When t names no country, or
// no symbol is known, the ISO 4217 code is returned instead.
func (c *Currency) Symbol(t language.Tag, lk Lookup) string {
	if reg, conf := t.Region(); conf != language.Exact || !reg.IsCountry() {
		return c.code
	}
	if symbol, ok := lk.CurrencySymbol(t); ok {
		return symbol
	}
	return c.code
}

// FractionDigits returns the default number of fraction digits for this
// currency: 2 for the US dollar, 0 for the Japanese yen, and so on. For
// pseudo-currencies, such as IMF Special Drawing Rights, -1 is returned.
// Codes unknown to the ISO 4217 tables also report -1.
func (c *Currency) FractionDigits() int {
	if pseudoCurrencies[c.code] {
		return -1
	}
	unit, err := xcurrency.ParseISO(c.code)
	if err != nil {
		return -1
	}
	scale, _ := xcurrency.Standard.Rounding(unit)
	return scale
}

// ISO 4217 codes naming funds, precious metals, or the absence of a
// currency rather than a circulating tender.
var pseudoCurrencies = map[string]bool{
	"XAG": true,
	"XAU": true,
	"XBA": true,
	"XBB": true,
	"XBC": true,
	"XBD": true,
	"XDR": true,
	"XPD": true,
	"XPT": true,
	"XSU": true,
	"XTS": true,
	"XUA": true,
	"XXX": true,
}
