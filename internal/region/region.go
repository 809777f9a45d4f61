// Package region owns the session-scoped language/country/city selection and
// every locale-dependent display value derived from it.
package region

// Language is one of the site languages.
type Language string

const (
	LangRU Language = "ru"
	LangKZ Language = "kz"
	LangUZ Language = "uz"
)

// Languages lists supported languages in display order.
var Languages = []Language{LangRU, LangKZ, LangUZ}

// ParseLanguage returns the typed language for a raw code.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LangRU, LangKZ, LangUZ:
		return Language(s), true
	}
	return "", false
}

// Country is one of the served markets.
type Country string

const (
	CountryKZ Country = "kz"
	CountryUZ Country = "uz"
	CountryKG Country = "kg"
)

// Countries lists served countries in display order.
var Countries = []Country{CountryKZ, CountryUZ, CountryKG}

// ParseCountry returns the typed country for a raw code.
func ParseCountry(s string) (Country, bool) {
	switch Country(s) {
	case CountryKZ, CountryUZ, CountryKG:
		return Country(s), true
	}
	return "", false
}

// Text maps a language to a localized string.
type Text map[Language]string

// Resolve returns the string for lang, falling back to Russian and finally
// to any available entry.
func (t Text) Resolve(lang Language) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t[LangRU]; ok && v != "" {
		return v
	}
	for _, v := range t {
		if v != "" {
			return v
		}
	}
	return ""
}

// City is a market city with a stable URL slug.
type City struct {
	Slug string
	Name Text
}

// CountryInfo holds static per-country locale data.
type CountryInfo struct {
	Name           Text
	Currency       string
	CurrencySymbol string
}

var countryTable = map[Country]CountryInfo{
	CountryKZ: {
		Name:           Text{LangRU: "Казахстан", LangKZ: "Қазақстан", LangUZ: "Qozogʻiston"},
		Currency:       "KZT",
		CurrencySymbol: "₸",
	},
	CountryUZ: {
		Name:           Text{LangRU: "Узбекистан", LangKZ: "Өзбекстан", LangUZ: "Oʻzbekiston"},
		Currency:       "UZS",
		CurrencySymbol: "сўм",
	},
	CountryKG: {
		Name:           Text{LangRU: "Кыргызстан", LangKZ: "Қырғызстан", LangUZ: "Qirgʻiziston"},
		Currency:       "KGS",
		CurrencySymbol: "сом",
	},
}

var cityTable = map[Country][]City{
	CountryKZ: {
		{Slug: "almaty", Name: Text{LangRU: "Алматы", LangKZ: "Алматы", LangUZ: "Olma-Ota"}},
		{Slug: "astana", Name: Text{LangRU: "Астана", LangKZ: "Астана", LangUZ: "Ostona"}},
		{Slug: "shymkent", Name: Text{LangRU: "Шымкент", LangKZ: "Шымкент", LangUZ: "Shimkent"}},
		{Slug: "karaganda", Name: Text{LangRU: "Караганда", LangKZ: "Қарағанды", LangUZ: "Qoragʻandi"}},
	},
	CountryUZ: {
		{Slug: "tashkent", Name: Text{LangRU: "Ташкент", LangKZ: "Ташкент", LangUZ: "Toshkent"}},
		{Slug: "samarkand", Name: Text{LangRU: "Самарканд", LangKZ: "Самарқанд", LangUZ: "Samarqand"}},
		{Slug: "bukhara", Name: Text{LangRU: "Бухара", LangKZ: "Бұхара", LangUZ: "Buxoro"}},
	},
	CountryKG: {
		{Slug: "bishkek", Name: Text{LangRU: "Бишкек", LangKZ: "Бішкек", LangUZ: "Bishkek"}},
		{Slug: "osh", Name: Text{LangRU: "Ош", LangKZ: "Ош", LangUZ: "Oʻsh"}},
	},
}

// Info returns the static locale data for a country.
func Info(c Country) CountryInfo { return countryTable[c] }

// CitiesOf returns the ordered city list for a country. Every served country
// has at least one city.
func CitiesOf(c Country) []City { return cityTable[c] }

// CityOf finds a city by slug within a country.
func CityOf(c Country, slug string) (City, bool) {
	for _, city := range cityTable[c] {
		if city.Slug == slug {
			return city, true
		}
	}
	return City{}, false
}
