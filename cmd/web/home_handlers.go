package main

import (
	"net/http"

	mw "yoursite.kz/yoursite-web/internal/middleware"
	"yoursite.kz/yoursite-web/internal/seo"
)

// HomeHandler renders the city-personalized landing page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	res := mw.GetRegion(r)
	view := buildHomeView(res)

	title := bundle.T(string(res.Language()), "hero.titleCity") + " " + view.CityName + " — " + brandName
	desc := bundle.T(string(res.Language()), "hero.subtitle")

	vm := newPageData(r, title)
	vm.Home = &view
	vm.setSEO(title, desc, "website")
	vm.addJSONLD(seo.Organization(brandName, seo.BaseURL, seo.BaseURL+"/assets/img/logo.svg"))
	vm.addJSONLD(seo.WebSite(brandName, seo.BaseURL, seo.BaseURL+"/catalog?q="))

	renderPage(w, r, "home", vm)
}
