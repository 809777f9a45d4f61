package catalog

import (
	"sort"
	"strings"

	"yoursite.kz/yoursite-web/internal/region"
)

// Sort selects the ordering of catalog results.
type Sort string

const (
	SortPopular   Sort = "popular"
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
	SortRating    Sort = "rating"
	SortNew       Sort = "new"
)

// ParseSort maps a raw query value to a sort policy, defaulting to popular.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortPriceAsc, SortPriceDesc, SortRating, SortNew:
		return Sort(s)
	}
	return SortPopular
}

// CategoryAll keeps every category when filtering.
const CategoryAll = "all"

// Params controls one catalog query.
type Params struct {
	Category string
	Search   string
	Sort     Sort
	Lang     region.Language
}

// Query filters items by category and case-insensitive name match, then
// orders them by the sort policy. The sort is stable, the input slice is
// never mutated, and an empty result is valid output.
func Query(items []Template, p Params) []Template {
	search := strings.ToLower(strings.TrimSpace(p.Search))
	out := make([]Template, 0, len(items))
	for _, t := range items {
		if p.Category != "" && p.Category != CategoryAll && t.Category != p.Category {
			continue
		}
		if search != "" {
			name := strings.ToLower(t.Name.Resolve(p.Lang))
			if !strings.Contains(name, search) {
				continue
			}
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch p.Sort {
		case SortPriceAsc:
			return a.PriceUSD < b.PriceUSD
		case SortPriceDesc:
			return a.PriceUSD > b.PriceUSD
		case SortRating:
			return a.Rating > b.Rating
		case SortNew:
			return a.IsNew && !b.IsNew
		default:
			return a.IsHot && !b.IsHot
		}
	})
	return out
}
