package region

// Storage keys for the persisted selection. The session is the only writer.
const (
	KeyLanguage = "yoursite_lang"
	KeyCountry  = "yoursite_country"
	KeyCity     = "yoursite_city"
)

// Store is the durable per-session key-value storage the resolver writes
// through on every update. Writes are fire-and-forget.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Resolver holds the current region selection for one session. All mutation
// goes through its setters; consumers read derived values only.
type Resolver struct {
	store    Store
	language Language
	country  Country
	city     string
}

// New builds a resolver with defaults (ru, kz, first city) and restores any
// previously persisted selection. Each restored value is validated on its
// own; a restored city that does not belong to the restored country is
// discarded in favor of the country's first city. Restoring does not
// re-persist.
func New(store Store) *Resolver {
	r := &Resolver{
		store:    store,
		language: LangRU,
		country:  CountryKZ,
		city:     cityTable[CountryKZ][0].Slug,
	}
	if store == nil {
		return r
	}
	if v, ok := store.Get(KeyLanguage); ok {
		if lang, ok := ParseLanguage(v); ok {
			r.language = lang
		}
	}
	if v, ok := store.Get(KeyCountry); ok {
		if c, ok := ParseCountry(v); ok {
			r.country = c
			r.city = cityTable[c][0].Slug
		}
	}
	if v, ok := store.Get(KeyCity); ok {
		if _, found := CityOf(r.country, v); found {
			r.city = v
		}
	}
	return r
}

// Language returns the current language.
func (r *Resolver) Language() Language { return r.language }

// Country returns the current country.
func (r *Resolver) Country() Country { return r.country }

// City returns the current city slug. It always belongs to Country().
func (r *Resolver) City() string { return r.city }

// SetLanguage updates and persists the current language.
func (r *Resolver) SetLanguage(lang Language) {
	r.language = lang
	if r.store != nil {
		r.store.Set(KeyLanguage, string(lang))
	}
}

// SetRegion updates and persists the current country and city. An empty or
// unknown citySlug resolves to the first city of the country, so the
// city-belongs-to-country invariant always holds.
func (r *Resolver) SetRegion(country Country, citySlug string) {
	r.country = country
	if _, ok := CityOf(country, citySlug); !ok {
		citySlug = cityTable[country][0].Slug
	}
	r.city = citySlug
	if r.store != nil {
		r.store.Set(KeyCountry, string(country))
		r.store.Set(KeyCity, citySlug)
	}
}

// CityName returns the localized name of a city slug within the current
// country, or the slug itself when it is not listed there.
func (r *Resolver) CityName(slug string) string {
	if city, ok := CityOf(r.country, slug); ok {
		return city.Name.Resolve(r.language)
	}
	return slug
}

// CountryName returns the localized name of the current country.
func (r *Resolver) CountryName() string {
	return countryTable[r.country].Name.Resolve(r.language)
}

// Currency returns the ISO code of the current country's currency.
func (r *Resolver) Currency() string { return countryTable[r.country].Currency }

// CurrencySymbol returns the display symbol of the current country's currency.
func (r *Resolver) CurrencySymbol() string { return countryTable[r.country].CurrencySymbol }
