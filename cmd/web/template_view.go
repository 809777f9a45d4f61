package main

import (
	"yoursite.kz/yoursite-web/internal/catalog"
	"yoursite.kz/yoursite-web/internal/region"
)

// TemplateDetailView feeds the template detail page.
type TemplateDetailView struct {
	Card     TemplateCardView
	Features []string
	CityName string
	Related  []TemplateCardView
	Stars    []bool
}

const relatedLimit = 3

func buildTemplateDetailView(t catalog.Template, res *region.Resolver) TemplateDetailView {
	view := TemplateDetailView{
		Card:     buildTemplateCard(t, res),
		Features: t.Features,
		CityName: res.CityName(res.City()),
		Stars:    ratingStars(t.Rating),
	}
	var related []catalog.Template
	for _, other := range catalog.Templates {
		if other.Category == t.Category && other.ID != t.ID {
			related = append(related, other)
			if len(related) == relatedLimit {
				break
			}
		}
	}
	view.Related = buildTemplateCards(related, res)
	return view
}

// ratingStars returns five entries, true for each filled star.
func ratingStars(rating float64) []bool {
	stars := make([]bool, 5)
	filled := int(rating)
	for i := 0; i < 5 && i < filled; i++ {
		stars[i] = true
	}
	return stars
}
