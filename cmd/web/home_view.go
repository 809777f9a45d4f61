package main

import (
	"yoursite.kz/yoursite-web/internal/catalog"
	"yoursite.kz/yoursite-web/internal/region"
)

// TemplateCardView is the card view model shared by home, catalog, landing
// and related-templates sections.
type TemplateCardView struct {
	Slug         string
	Href         string
	Name         string
	Description  string
	CategoryName string
	Image        string
	Price        string
	OldPrice     string
	IsNew        bool
	IsHot        bool
	Rating       float64
	ReviewCount  int
}

// CategoryCardView is the niche card shown on home and landing pages.
type CategoryCardView struct {
	Slug  string
	Href  string
	Name  string
	Icon  string
	Count int
}

// TrustStat is one entry of the trust strip.
type TrustStat struct {
	Value    string
	LabelKey string
}

// HomeView feeds the home page template.
type HomeView struct {
	CityName   string
	Categories []CategoryCardView
	Popular    []TemplateCardView
}

func buildTemplateCard(t catalog.Template, res *region.Resolver) TemplateCardView {
	lang := res.Language()
	card := TemplateCardView{
		Slug:        t.Slug,
		Href:        "/templates/" + t.Slug,
		Name:        t.Name.Resolve(lang),
		Description: t.Description.Resolve(lang),
		Image:       t.Image,
		Price:       res.FormatPrice(t.PriceUSD),
		IsNew:       t.IsNew,
		IsHot:       t.IsHot,
		Rating:      t.Rating,
		ReviewCount: t.ReviewCount,
	}
	if t.OldPriceUSD > 0 {
		card.OldPrice = res.FormatPrice(t.OldPriceUSD)
	}
	if cat, ok := catalog.CategoryBySlug(t.Category); ok {
		card.CategoryName = cat.Name.Resolve(lang)
	}
	return card
}

func buildTemplateCards(items []catalog.Template, res *region.Resolver) []TemplateCardView {
	cards := make([]TemplateCardView, 0, len(items))
	for _, t := range items {
		cards = append(cards, buildTemplateCard(t, res))
	}
	return cards
}

func buildCategoryCards(res *region.Resolver) []CategoryCardView {
	lang := res.Language()
	cards := make([]CategoryCardView, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		cards = append(cards, CategoryCardView{
			Slug:  c.Slug,
			Href:  "/catalog?category=" + c.Slug,
			Name:  c.Name.Resolve(lang),
			Icon:  c.Icon,
			Count: c.Count,
		})
	}
	return cards
}

func trustStats() []TrustStat {
	return []TrustStat{
		{Value: "500+", LabelKey: "trust.sites"},
		{Value: "1200+", LabelKey: "trust.clients"},
		{Value: "4.9", LabelKey: "trust.rating"},
	}
}

const popularLimit = 6

// catalogPopular returns the leading templates in catalog order.
func catalogPopular() []catalog.Template {
	popular := catalog.Templates
	if len(popular) > popularLimit {
		popular = popular[:popularLimit]
	}
	return popular
}

func buildHomeView(res *region.Resolver) HomeView {
	return HomeView{
		CityName:   res.CityName(res.City()),
		Categories: buildCategoryCards(res),
		Popular:    buildTemplateCards(catalogPopular(), res),
	}
}
