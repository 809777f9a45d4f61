package seo

import "html/template"

// Alternate is a hreflang alternate link for a page.
type Alternate struct {
	Href     string
	Hreflang string
}

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta holds everything the base layout renders into <head>.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
	JSONLD      []template.JS
}

// BaseURL is the canonical site origin used in absolute URLs.
const BaseURL = "https://yoursite.kz"

// PageAlternates returns the standard hreflang set for a path. Every page is
// served in all three languages at the same URL.
func PageAlternates(path string) []Alternate {
	href := BaseURL + path
	return []Alternate{
		{Href: href, Hreflang: "ru"},
		{Href: href, Hreflang: "kk"},
		{Href: href, Hreflang: "uz"},
		{Href: href, Hreflang: "x-default"},
	}
}
