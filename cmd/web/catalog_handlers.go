package main

import (
	"net/http"

	mw "yoursite.kz/yoursite-web/internal/middleware"
	"yoursite.kz/yoursite-web/internal/seo"
)

// CatalogHandler renders the filterable template catalog.
func CatalogHandler(w http.ResponseWriter, r *http.Request) {
	res := mw.GetRegion(r)
	lang := string(res.Language())
	view := buildCatalogView(res, r.URL.Query())

	title := bundle.T(lang, "catalog.title") + " — " + brandName
	desc := bundle.T(lang, "categories.subtitle")

	vm := newPageData(r, title)
	vm.Catalog = &view
	vm.setSEO(title, desc, "website")
	// Filtered views canonicalize to the bare catalog URL.
	vm.SEO.Canonical = seo.BaseURL + "/catalog"
	vm.breadcrumbJSONLD()

	renderPage(w, r, "catalog", vm)
}
