package main

import (
	"html/template"
	"net/http"
	"os"

	mw "yoursite.kz/yoursite-web/internal/middleware"
	"yoursite.kz/yoursite-web/internal/nav"
	"yoursite.kz/yoursite-web/internal/region"
	"yoursite.kz/yoursite-web/internal/seo"
)

const brandName = "Yoursite"

// Analytics carries third-party tracking IDs rendered into the layout.
type Analytics struct {
	GAMeasurementID string
	YandexMetrikaID string
}

// LoadAnalyticsFromEnv reads tracker IDs. Empty values disable the snippets.
func LoadAnalyticsFromEnv() Analytics {
	return Analytics{
		GAMeasurementID: os.Getenv("YOURSITE_WEB_GA_MEASUREMENT_ID"),
		YandexMetrikaID: os.Getenv("YOURSITE_WEB_YM_ID"),
	}
}

// LangOption is a language switcher entry.
type LangOption struct {
	Code   string
	Label  string
	Active bool
}

// CityOption is a selectable city in the region picker.
type CityOption struct {
	Slug   string
	Name   string
	Active bool
}

// CountryGroup groups a country's cities in the region picker.
type CountryGroup struct {
	Code   string
	Name   string
	Cities []CityOption
}

// RegionView carries the current selection plus the picker options.
type RegionView struct {
	Language       string
	Country        string
	City           string
	CityName       string
	CountryName    string
	Currency       string
	CurrencySymbol string
	Languages      []LangOption
	Countries      []CountryGroup
}

var languageLabels = map[region.Language]string{
	region.LangRU: "Русский",
	region.LangKZ: "Қазақша",
	region.LangUZ: "O'zbekcha",
}

func buildRegionView(res *region.Resolver) RegionView {
	lang := res.Language()
	rv := RegionView{
		Language:       string(lang),
		Country:        string(res.Country()),
		City:           res.City(),
		CityName:       res.CityName(res.City()),
		CountryName:    res.CountryName(),
		Currency:       res.Currency(),
		CurrencySymbol: res.CurrencySymbol(),
	}
	for _, l := range region.Languages {
		rv.Languages = append(rv.Languages, LangOption{
			Code:   string(l),
			Label:  languageLabels[l],
			Active: l == lang,
		})
	}
	for _, c := range region.Countries {
		group := CountryGroup{
			Code: string(c),
			Name: region.Info(c).Name.Resolve(lang),
		}
		for _, city := range region.CitiesOf(c) {
			group.Cities = append(group.Cities, CityOption{
				Slug:   city.Slug,
				Name:   city.Name.Resolve(lang),
				Active: c == res.Country() && city.Slug == res.City(),
			})
		}
		rv.Countries = append(rv.Countries, group)
	}
	return rv
}

// PageData is the view model every page template receives.
type PageData struct {
	Title       string
	Lang        string
	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	SEO         seo.Meta
	Analytics   Analytics
	CSRFToken   string
	Region      RegionView
	Flash       string

	Home     *HomeView
	Catalog  *CatalogView
	Template *TemplateDetailView
	Landing  *LandingView
	Blog     *BlogView
	Post     *PostView
	Contacts *ContactsView
	Auth     *AuthView
}

// T translates a UI key in the page's language.
func (p PageData) T(key string) string {
	return bundle.T(p.Lang, key)
}

// newPageData fills the fields shared by every page.
func newPageData(r *http.Request, title string) PageData {
	res := mw.GetRegion(r)
	s := mw.GetSession(r)
	return PageData{
		Title:       title,
		Lang:        string(res.Language()),
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path, nil),
		Analytics:   LoadAnalyticsFromEnv(),
		CSRFToken:   s.CSRFToken,
		Region:      buildRegionView(res),
	}
}

// setSEO fills canonical, alternates, OpenGraph and Twitter meta for the
// current path.
func (p *PageData) setSEO(title, description, ogType string) {
	canonical := seo.BaseURL + p.Path
	p.SEO.Title = title
	p.SEO.Description = description
	p.SEO.Canonical = canonical
	p.SEO.Alternates = seo.PageAlternates(p.Path)
	p.SEO.OG = seo.OpenGraph{
		Title:       title,
		Description: description,
		Type:        ogType,
		URL:         canonical,
		SiteName:    brandName,
	}
	p.SEO.Twitter = seo.Twitter{Card: "summary_large_image"}
}

func (p *PageData) addJSONLD(payload map[string]any) {
	if s := seo.JSON(payload); s != "" {
		p.SEO.JSONLD = append(p.SEO.JSONLD, template.JS(s))
	}
}

// Trust returns the site-wide trust stats rendered on home and landing pages.
func (p PageData) Trust() []TrustStat {
	return trustStats()
}

// breadcrumbJSONLD mirrors the visible breadcrumbs as structured data.
func (p *PageData) breadcrumbJSONLD() {
	items := make([]seo.BreadcrumbItem, 0, len(p.Breadcrumbs))
	for _, c := range p.Breadcrumbs {
		name := c.Label
		if c.LabelKey != "" {
			name = p.T(c.LabelKey)
		}
		items = append(items, seo.BreadcrumbItem{Name: name, Item: seo.BaseURL + c.Href})
	}
	p.addJSONLD(seo.BreadcrumbList(items))
}
