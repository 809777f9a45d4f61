package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	mw "yoursite.kz/yoursite-web/internal/middleware"
	"yoursite.kz/yoursite-web/internal/nav"
	"yoursite.kz/yoursite-web/internal/region"
	"yoursite.kz/yoursite-web/internal/seo"
)

// CountryLandingHandler renders /{country}. Visiting it switches the
// session's region to that country. Unknown countries go home.
func CountryLandingHandler(w http.ResponseWriter, r *http.Request) {
	country, ok := region.ParseCountry(chi.URLParam(r, "country"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	res := mw.GetRegion(r)
	res.SetRegion(country, "")
	view := buildCountryLandingView(res, country)

	vm := newPageData(r, view.Copy.Title)
	vm.Landing = &view
	vm.Breadcrumbs = nav.Breadcrumbs(r.URL.Path, map[string]string{
		string(country): view.CountryName,
	})
	vm.setSEO(view.Copy.Title, view.Copy.Description, "website")
	vm.addJSONLD(map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"name":        brandName + " - " + view.CountryName,
		"description": view.Copy.Description,
		"url":         seo.BaseURL + "/" + string(country),
		"areaServed":  map[string]any{"@type": "Country", "name": view.CountryName},
	})
	vm.breadcrumbJSONLD()

	renderPage(w, r, "landing_country", vm)
}

// CityLandingHandler renders /{country}/{city}. A known country with an
// unknown city redirects to the country landing. Visiting switches the
// session's region to that city.
func CityLandingHandler(w http.ResponseWriter, r *http.Request) {
	country, ok := region.ParseCountry(chi.URLParam(r, "country"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	citySlug := chi.URLParam(r, "city")
	city, ok := region.CityOf(country, citySlug)
	if !ok {
		http.Redirect(w, r, "/"+string(country), http.StatusFound)
		return
	}
	res := mw.GetRegion(r)
	res.SetRegion(country, city.Slug)
	view := buildCityLandingView(res, country, city)

	vm := newPageData(r, view.Copy.Title)
	vm.Landing = &view
	vm.Breadcrumbs = nav.Breadcrumbs(r.URL.Path, map[string]string{
		string(country): view.CountryName,
		city.Slug:       view.CityName,
	})
	vm.setSEO(view.Copy.Title, view.Copy.Description, "website")
	vm.addJSONLD(seo.LocalBusiness(
		brandName+" - "+view.CityName,
		view.Copy.Description,
		seo.BaseURL+r.URL.Path,
		view.CityName,
		region.Info(country).Name.Resolve(region.LangRU),
	))
	vm.breadcrumbJSONLD()

	renderPage(w, r, "landing_city", vm)
}
