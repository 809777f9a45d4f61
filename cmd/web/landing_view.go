package main

import (
	"yoursite.kz/yoursite-web/internal/landing"
	"yoursite.kz/yoursite-web/internal/region"
)

// CityLink is one city entry on a country landing page.
type CityLink struct {
	Href string
	Name string
}

// LandingView feeds country and city landing templates.
type LandingView struct {
	Copy        landing.Copy
	CountryName string
	CityName    string
	Cities      []CityLink
	Categories  []CategoryCardView
	Popular     []TemplateCardView
}

func buildCountryLandingView(res *region.Resolver, country region.Country) LandingView {
	lang := res.Language()
	view := LandingView{
		Copy:        landing.ForCountry(lang, country),
		CountryName: region.Info(country).Name.Resolve(lang),
		Categories:  buildCategoryCards(res),
	}
	for _, city := range region.CitiesOf(country) {
		view.Cities = append(view.Cities, CityLink{
			Href: "/" + string(country) + "/" + city.Slug,
			Name: city.Name.Resolve(lang),
		})
	}
	popular := catalogPopular()
	view.Popular = buildTemplateCards(popular, res)
	return view
}

func buildCityLandingView(res *region.Resolver, country region.Country, city region.City) LandingView {
	lang := res.Language()
	cityName := city.Name.Resolve(lang)
	countryName := region.Info(country).Name.Resolve(lang)
	return LandingView{
		Copy:        landing.ForCity(lang, city.Slug, cityName, countryName),
		CountryName: countryName,
		CityName:    cityName,
		Categories:  buildCategoryCards(res),
		Popular:     buildTemplateCards(catalogPopular(), res),
	}
}
