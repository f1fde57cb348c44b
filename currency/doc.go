// Package currency reproduces the canonicalizing currency registry of the
// emulated runtime library.
//
// A Registry interns one Currency instance per ISO 4217 code, so code
// translated from a language with reference equality keeps working:
// looking up "USD" twice yields the same pointer. Codes are not
// validated; any string canonicalizes.
//
// Locale resolution goes through an injected Lookup rather than a
// built-in table, the way the emulated library defers to the platform's
// formatter. PlatformLookup implements it over the x/text language and
// currency data; tests substitute fixtures.
//
//	reg := currency.NewRegistry(currency.PlatformLookup{})
//
//	usd := reg.ByCode("USD")
//	same, _ := reg.ByLocale(language.MustParse("en-US")) // same == usd
//
//	usd.Symbol(language.MustParse("en-US"), currency.PlatformLookup{}) // "$"
//	usd.FractionDigits()                                               // 2
//
// A locale whose country cannot be resolved fails with a structured
// invalid argument error; a country without a currency (ISO code "XXX")
// resolves to no currency at all, returned as (nil, nil).
//
// # Thread Safety
//
// Registry is safe for concurrent use. Each intern map has its own lock;
// the locale path may acquire the code lock while holding the locale
// lock, never the reverse.
package currency
