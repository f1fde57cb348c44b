package currency

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/childebao/j2objc/errors"
)

// Registry interns Currency instances. Each map is guarded by its own
// mutex; the locale path may take the code lock while holding the locale
// lock, never the other way around.
type Registry struct {
	codesMu sync.Mutex
	codes   map[string]*Currency

	localesMu sync.Mutex
	locales   map[string]*Currency

	lookup Lookup
}

// NewRegistry builds an empty registry resolving locales through lk.
func NewRegistry(lk Lookup) *Registry {
	return &Registry{
		codes:   make(map[string]*Currency),
		locales: make(map[string]*Currency),
		lookup:  lk,
	}
}

// ByCode returns the Currency instance for the given ISO 4217 currency
// code, creating and interning it on first use. The code is not
// validated: any string becomes a currency, and repeated calls with the
// same code always return the same instance.
func (r *Registry) ByCode(code string) *Currency {
	r.codesMu.Lock()
	defer r.codesMu.Unlock()
	c := r.codes[code]
	if c == nil {
		c = &Currency{code: code}
		r.codes[code] = c
		Logger().Debug("interned currency", zap.String("code", code))
	}
	return c
}

// ByLocale returns the Currency instance for the locale's country. A
// locale whose country the lookup cannot resolve fails with an invalid
// argument error. A country that has no currency (code "XXX") returns
// (nil, nil); that outcome is not cached.
func (r *Registry) ByLocale(t language.Tag) (*Currency, error) {
	r.localesMu.Lock()
	defer r.localesMu.Unlock()

	key := t.String()
	if c, ok := r.locales[key]; ok {
		return c, nil
	}

	code, ok := r.lookup.CurrencyCode(t)
	if !ok {
		return nil, errors.New(errors.PhaseLookup, errors.KindInvalidArgument).
			Code(key).
			Detail("unsupported ISO 3166 country: %s", key).
			Build()
	}
	if code == "XXX" {
		return nil, nil
	}

	c := r.ByCode(code)
	r.locales[key] = c
	Logger().Debug("resolved locale currency",
		zap.String("locale", key),
		zap.String("code", code))
	return c, nil
}
