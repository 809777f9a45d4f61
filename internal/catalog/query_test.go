package catalog

import (
	"reflect"
	"testing"

	"yoursite.kz/yoursite-web/internal/region"
)

func slugs(items []Template) []string {
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.Slug)
	}
	return out
}

func TestQueryCategoryFilter(t *testing.T) {
	got := Query(Templates, Params{Category: "dental", Lang: region.LangRU})
	if len(got) != 1 || got[0].Slug != "dental-pro" {
		t.Fatalf("dental filter: got %v", slugs(got))
	}
}

func TestQueryCategoryAll(t *testing.T) {
	got := Query(Templates, Params{Category: CategoryAll, Lang: region.LangRU})
	if len(got) != len(Templates) {
		t.Fatalf("all filter: got %d items, want %d", len(got), len(Templates))
	}
}

func TestQueryUnknownCategoryYieldsEmpty(t *testing.T) {
	got := Query(Templates, Params{Category: "spaceships", Lang: region.LangRU})
	if len(got) != 0 {
		t.Fatalf("unknown category: got %v, want empty", slugs(got))
	}
}

func TestQuerySearchCaseInsensitive(t *testing.T) {
	for _, q := range []string{"auto", "AUTO", "Auto"} {
		got := Query(Templates, Params{Category: CategoryAll, Search: q, Lang: region.LangRU})
		if len(got) != 1 || got[0].Slug != "autoservice-x" {
			t.Fatalf("search %q: got %v", q, slugs(got))
		}
	}
}

func TestQueryEmptySearchMatchesAll(t *testing.T) {
	got := Query(Templates, Params{Search: "", Lang: region.LangKZ})
	if len(got) != len(Templates) {
		t.Fatalf("empty search: got %d items, want %d", len(got), len(Templates))
	}
}

func TestQueryPriceAscIsStable(t *testing.T) {
	got := Query(Templates, Params{Sort: SortPriceAsc, Lang: region.LangRU})
	prices := make([]float64, 0, len(got))
	for _, item := range got {
		prices = append(prices, item.PriceUSD)
	}
	want := []float64{249, 279, 299, 299, 349, 399}
	if !reflect.DeepEqual(prices, want) {
		t.Fatalf("price-asc order: got %v, want %v", prices, want)
	}
	// the two 299 items keep their catalog order: dental-pro before fitness-power
	if got[2].Slug != "dental-pro" || got[3].Slug != "fitness-power" {
		t.Fatalf("price tie must preserve input order: got %v", slugs(got))
	}
}

func TestQueryPriceDesc(t *testing.T) {
	got := Query(Templates, Params{Sort: SortPriceDesc, Lang: region.LangRU})
	if got[0].Slug != "medcenter-plus" || got[len(got)-1].Slug != "autoservice-x" {
		t.Fatalf("price-desc order: got %v", slugs(got))
	}
}

func TestQueryRatingDesc(t *testing.T) {
	got := Query(Templates, Params{Sort: SortRating, Lang: region.LangRU})
	for i := 1; i < len(got); i++ {
		if got[i-1].Rating < got[i].Rating {
			t.Fatalf("rating order violated at %d: %v", i, slugs(got))
		}
	}
	// 4.9 tie: dental-pro before resto-elegant, as in the catalog
	if got[0].Slug != "dental-pro" || got[1].Slug != "resto-elegant" {
		t.Fatalf("rating tie must preserve input order: got %v", slugs(got))
	}
}

func TestQueryNewFirst(t *testing.T) {
	got := Query(Templates, Params{Sort: SortNew, Lang: region.LangRU})
	if !got[0].IsNew || !got[1].IsNew {
		t.Fatalf("new sort must put IsNew first: got %v", slugs(got))
	}
	if got[0].Slug != "autoservice-x" || got[1].Slug != "medcenter-plus" {
		t.Fatalf("new items keep catalog order: got %v", slugs(got))
	}
}

func TestQueryDefaultPopular(t *testing.T) {
	got := Query(Templates, Params{Lang: region.LangRU})
	if !got[0].IsHot || !got[1].IsHot {
		t.Fatalf("popular sort must put IsHot first: got %v", slugs(got))
	}
	if got[0].Slug != "dental-pro" || got[1].Slug != "resto-elegant" {
		t.Fatalf("hot items keep catalog order: got %v", slugs(got))
	}
}

func TestQueryIsPureAndIdempotent(t *testing.T) {
	before := slugs(Templates)
	p := Params{Category: CategoryAll, Sort: SortPriceDesc, Lang: region.LangRU}
	first := Query(Templates, p)
	second := Query(Templates, p)
	if !reflect.DeepEqual(slugs(first), slugs(second)) {
		t.Fatalf("query not idempotent: %v vs %v", slugs(first), slugs(second))
	}
	if !reflect.DeepEqual(slugs(Templates), before) {
		t.Fatalf("query mutated its input: %v", slugs(Templates))
	}
}

func TestParseSort(t *testing.T) {
	if ParseSort("price-asc") != SortPriceAsc {
		t.Fatal("price-asc must parse")
	}
	if ParseSort("") != SortPopular || ParseSort("bogus") != SortPopular {
		t.Fatal("unknown sort must default to popular")
	}
}

func TestLookups(t *testing.T) {
	if _, ok := BySlug("dental-pro"); !ok {
		t.Fatal("dental-pro must resolve")
	}
	if _, ok := BySlug("missing"); ok {
		t.Fatal("missing slug must not resolve")
	}
	if c, ok := CategoryBySlug("fitness"); !ok || c.Icon != "💪" {
		t.Fatalf("fitness category lookup: %+v %v", c, ok)
	}
}
