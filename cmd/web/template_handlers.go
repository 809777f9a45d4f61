package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"yoursite.kz/yoursite-web/internal/catalog"
	mw "yoursite.kz/yoursite-web/internal/middleware"
	"yoursite.kz/yoursite-web/internal/nav"
	"yoursite.kz/yoursite-web/internal/seo"
)

// TemplateDetailHandler renders one template's product page.
func TemplateDetailHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	t, ok := catalog.BySlug(slug)
	if !ok {
		renderNotFound(w, r)
		return
	}
	res := mw.GetRegion(r)
	lang := res.Language()
	view := buildTemplateDetailView(t, res)

	name := t.Name.Resolve(lang)
	desc := t.Description.Resolve(lang)
	title := name + " — " + brandName

	vm := newPageData(r, title)
	vm.Template = &view
	vm.Breadcrumbs = nav.Breadcrumbs(r.URL.Path, map[string]string{slug: name})
	vm.setSEO(title, desc, "product")
	vm.SEO.OG.Image = seo.BaseURL + t.Image
	vm.addJSONLD(seo.Product(
		name,
		desc,
		seo.BaseURL+"/templates/"+t.Slug,
		seo.BaseURL+t.Image,
		t.ID,
		res.Currency(),
		strconv.FormatInt(res.DisplayPrice(t.PriceUSD), 10),
	))
	vm.breadcrumbJSONLD()

	renderPage(w, r, "template_detail", vm)
}
