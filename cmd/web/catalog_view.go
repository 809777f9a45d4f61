package main

import (
	"net/url"

	"yoursite.kz/yoursite-web/internal/catalog"
	"yoursite.kz/yoursite-web/internal/region"
)

// CatalogFilter is one category filter link.
type CatalogFilter struct {
	Slug   string
	Href   string
	Name   string
	Active bool
}

// SortOption is one entry of the sort select.
type SortOption struct {
	Value    string
	LabelKey string
	Active   bool
}

// CatalogView feeds the catalog page template.
type CatalogView struct {
	Items    []TemplateCardView
	Total    int
	Search   string
	Category string
	Sort     string
	Filters  []CatalogFilter
	SortOpts []SortOption
	Empty    bool
}

// buildCatalogView runs the query engine over the request parameters.
func buildCatalogView(res *region.Resolver, q url.Values) CatalogView {
	lang := res.Language()
	params := catalog.Params{
		Category: q.Get("category"),
		Search:   q.Get("q"),
		Sort:     catalog.ParseSort(q.Get("sort")),
		Lang:     lang,
	}
	if params.Category == "" {
		params.Category = catalog.CategoryAll
	}
	items := catalog.Query(catalog.Templates, params)

	view := CatalogView{
		Items:    buildTemplateCards(items, res),
		Total:    len(items),
		Search:   params.Search,
		Category: params.Category,
		Sort:     string(params.Sort),
		Empty:    len(items) == 0,
	}

	view.Filters = append(view.Filters, CatalogFilter{
		Slug:   catalog.CategoryAll,
		Href:   catalogHref(catalog.CategoryAll, params.Search, params.Sort),
		Name:   bundle.T(string(lang), "catalog.all"),
		Active: params.Category == catalog.CategoryAll,
	})
	for _, c := range catalog.Categories {
		view.Filters = append(view.Filters, CatalogFilter{
			Slug:   c.Slug,
			Href:   catalogHref(c.Slug, params.Search, params.Sort),
			Name:   c.Name.Resolve(lang),
			Active: params.Category == c.Slug,
		})
	}

	for _, opt := range []struct {
		sort catalog.Sort
		key  string
	}{
		{catalog.SortPopular, "catalog.sortPopular"},
		{catalog.SortPriceAsc, "catalog.sortPriceAsc"},
		{catalog.SortPriceDesc, "catalog.sortPriceDesc"},
		{catalog.SortRating, "catalog.sortRating"},
		{catalog.SortNew, "catalog.sortNew"},
	} {
		view.SortOpts = append(view.SortOpts, SortOption{
			Value:    string(opt.sort),
			LabelKey: opt.key,
			Active:   params.Sort == opt.sort,
		})
	}
	return view
}

func catalogHref(category, search string, sort catalog.Sort) string {
	q := url.Values{}
	if category != "" && category != catalog.CategoryAll {
		q.Set("category", category)
	}
	if search != "" {
		q.Set("q", search)
	}
	if sort != "" && sort != catalog.SortPopular {
		q.Set("sort", string(sort))
	}
	if enc := q.Encode(); enc != "" {
		return "/catalog?" + enc
	}
	return "/catalog"
}
