package currency

import (
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Lookup resolves locale-dependent currency facts. It stands in for the
// platform's own localization tables, so a Registry never hard-codes
// country knowledge and tests can substitute a fixture.
type Lookup interface {
	// CurrencyCode returns the ISO 4217 code of the currency in legal use
	// in the locale's country. ok is false when the locale names no
	// supported country.
	CurrencyCode(t language.Tag) (string, bool)

	// CurrencySymbol returns the conventional symbol of the locale's own
	// currency. ok is false when no symbol is known.
	CurrencySymbol(t language.Tag) (string, bool)
}

// PlatformLookup resolves currency facts through the x/text language and
// currency tables. Only tags with an explicit country region resolve;
// bare-language tags such as "en" report ok=false rather than guessing a
// likely country.
type PlatformLookup struct{}

func (p PlatformLookup) CurrencyCode(t language.Tag) (string, bool) {
	reg, conf := t.Region()
	if conf != language.Exact || !reg.IsCountry() {
		return "", false
	}
	unit, ok := xcurrency.FromRegion(reg)
	if !ok {
		return "", false
	}
	return unit.String(), true
}

func (p PlatformLookup) CurrencySymbol(t language.Tag) (string, bool) {
	code, ok := p.CurrencyCode(t)
	if !ok {
		return "", false
	}
	symbol, ok := symbolForCode[code]
	return symbol, ok
}

// Compile-time check that PlatformLookup implements Lookup
var _ Lookup = PlatformLookup{}

// Home-locale symbols for widely used currencies, a compact subset of the
// CLDR symbol data. Codes absent here fall back to the ISO 4217 code,
// which is also what CLDR prescribes for currencies like CHF.
var symbolForCode = map[string]string{
	"AUD": "$",
	"BRL": "R$",
	"CAD": "$",
	"CNY": "¥",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "￥",
	"KRW": "₩",
	"PHP": "₱",
	"RUB": "₽",
	"THB": "฿",
	"TRY": "₺",
	"USD": "$",
	"VND": "₫",
}
