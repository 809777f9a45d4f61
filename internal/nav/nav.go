package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/catalog"
	LabelKey string // i18n key, e.g. "nav.catalog"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/catalog", LabelKey: "nav.catalog"},
	{Path: "/blog", LabelKey: "nav.blog"},
	{Path: "/contacts", LabelKey: "nav.contacts"},
	{Path: "/login", LabelKey: "nav.login"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	if currentPath == itemPath {
		return true
	}
	if strings.HasPrefix(currentPath, itemPath+"/") {
		return true
	}
	return false
}

// Breadcrumbs builds breadcrumb entries from the current path. Known
// top-level sections use nav label keys; deeper segments get a prettified
// label unless the caller overrides them (landing pages substitute localized
// country/city names).
func Breadcrumbs(currentPath string, labels map[string]string) []Crumb {
	var crumbs []Crumb
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs = append(crumbs, Crumb{Href: "/", LabelKey: "nav.home", Active: currentPath == "/"})
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	if clean == "." {
		clean = "/"
	}
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	href := ""
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		href = href + "/" + seg
		crumb := Crumb{Href: href, Active: i == len(parts)-1}
		if i == 0 {
			for _, it := range Main {
				if it.Path == href {
					crumb.LabelKey = it.LabelKey
					break
				}
			}
		}
		if crumb.LabelKey == "" {
			if lbl, ok := labels[seg]; ok {
				crumb.Label = lbl
			} else {
				crumb.Label = titleFromSegment(seg)
			}
		}
		crumbs = append(crumbs, crumb)
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
