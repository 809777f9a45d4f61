package region

import "testing"

type mapStore map[string]string

func (m mapStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapStore) Set(key, value string) { m[key] = value }

func TestDefaults(t *testing.T) {
	r := New(nil)
	if r.Language() != LangRU {
		t.Fatalf("default language: got %s, want ru", r.Language())
	}
	if r.Country() != CountryKZ {
		t.Fatalf("default country: got %s, want kz", r.Country())
	}
	if r.City() != "almaty" {
		t.Fatalf("default city: got %s, want almaty", r.City())
	}
}

func TestEveryCountryHasCities(t *testing.T) {
	for _, c := range Countries {
		cities := CitiesOf(c)
		if len(cities) == 0 {
			t.Fatalf("country %s has no cities", c)
		}
		r := New(nil)
		r.SetRegion(c, "")
		if r.City() != cities[0].Slug {
			t.Fatalf("SetRegion(%s) city: got %s, want first city %s", c, r.City(), cities[0].Slug)
		}
	}
}

func TestSetRegionPersists(t *testing.T) {
	store := mapStore{}
	r := New(store)
	r.SetRegion(CountryUZ, "samarkand")
	if store[KeyCountry] != "uz" || store[KeyCity] != "samarkand" {
		t.Fatalf("persisted selection: got %q/%q", store[KeyCountry], store[KeyCity])
	}
	r.SetLanguage(LangUZ)
	if store[KeyLanguage] != "uz" {
		t.Fatalf("persisted language: got %q", store[KeyLanguage])
	}
}

func TestSetRegionUnknownCityFallsBack(t *testing.T) {
	r := New(nil)
	r.SetRegion(CountryKG, "almaty") // almaty belongs to kz, not kg
	if r.City() != "bishkek" {
		t.Fatalf("mismatched city should fall back to first: got %s", r.City())
	}
}

func TestRestoreValidSelection(t *testing.T) {
	store := mapStore{
		KeyLanguage: "kz",
		KeyCountry:  "uz",
		KeyCity:     "bukhara",
	}
	r := New(store)
	if r.Language() != LangKZ || r.Country() != CountryUZ || r.City() != "bukhara" {
		t.Fatalf("restore: got %s/%s/%s", r.Language(), r.Country(), r.City())
	}
}

func TestRestoreRejectsInvalidLanguage(t *testing.T) {
	store := mapStore{KeyLanguage: "fr"}
	r := New(store)
	if r.Language() != LangRU {
		t.Fatalf("invalid persisted language should keep default, got %s", r.Language())
	}
}

func TestRestoreRejectsForeignCity(t *testing.T) {
	store := mapStore{
		KeyCountry: "kg",
		KeyCity:    "tashkent", // persisted city from a different country
	}
	r := New(store)
	if r.Country() != CountryKG {
		t.Fatalf("restore country: got %s", r.Country())
	}
	if r.City() != "bishkek" {
		t.Fatalf("foreign persisted city should reset to first city, got %s", r.City())
	}
}

func TestCityName(t *testing.T) {
	r := New(nil)
	r.SetLanguage(LangUZ)
	r.SetRegion(CountryKZ, "almaty")
	if got := r.CityName("almaty"); got != "Olma-Ota" {
		t.Fatalf("CityName(almaty) in uz: got %q", got)
	}
	// slug outside the current country comes back unchanged
	if got := r.CityName("bishkek"); got != "bishkek" {
		t.Fatalf("CityName for foreign slug: got %q, want raw slug", got)
	}
}

func TestCityNameAllCities(t *testing.T) {
	for _, c := range Countries {
		for _, city := range CitiesOf(c) {
			r := New(nil)
			r.SetRegion(c, city.Slug)
			if got := r.CityName(city.Slug); got != city.Name.Resolve(LangRU) {
				t.Fatalf("CityName(%s/%s): got %q, want %q", c, city.Slug, got, city.Name.Resolve(LangRU))
			}
		}
	}
}

func TestCountryName(t *testing.T) {
	r := New(nil)
	r.SetRegion(CountryKG, "")
	if got := r.CountryName(); got != "Кыргызстан" {
		t.Fatalf("CountryName: got %q", got)
	}
	r.SetLanguage(LangKZ)
	if got := r.CountryName(); got != "Қырғызстан" {
		t.Fatalf("CountryName in kz: got %q", got)
	}
}

func TestTextResolveFallsBackToRussian(t *testing.T) {
	txt := Text{LangRU: "Москва"}
	if got := txt.Resolve(LangUZ); got != "Москва" {
		t.Fatalf("Resolve should fall back to ru, got %q", got)
	}
}

func TestParseHelpers(t *testing.T) {
	if _, ok := ParseLanguage("fr"); ok {
		t.Fatal("fr must not parse as a language")
	}
	if _, ok := ParseCountry("ru"); ok {
		t.Fatal("ru must not parse as a country")
	}
	if lang, ok := ParseLanguage("kz"); !ok || lang != LangKZ {
		t.Fatalf("ParseLanguage(kz): got %v/%v", lang, ok)
	}
	if c, ok := ParseCountry("kg"); !ok || c != CountryKG {
		t.Fatalf("ParseCountry(kg): got %v/%v", c, ok)
	}
}
