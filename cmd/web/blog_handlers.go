package main

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"yoursite.kz/yoursite-web/internal/cms"
	mw "yoursite.kz/yoursite-web/internal/middleware"
	"yoursite.kz/yoursite-web/internal/nav"
	"yoursite.kz/yoursite-web/internal/seo"
)

// PostCard is one entry of the blog index.
type PostCard struct {
	Href     string
	Title    string
	Excerpt  string
	Category string
	Image    string
	Date     string
}

// BlogView feeds the blog index template.
type BlogView struct {
	Posts []PostCard
}

// PostView feeds the single-post template.
type PostView struct {
	Title    string
	Category string
	Image    string
	Date     string
	Body     template.HTML
}

// BlogHandler renders the article index.
func BlogHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	view := BlogView{}
	for _, p := range blog.List(lang) {
		view.Posts = append(view.Posts, PostCard{
			Href:     "/blog/" + p.Slug,
			Title:    p.Title,
			Excerpt:  p.Excerpt,
			Category: p.Category,
			Image:    p.Image,
			Date:     cms.FormatDate(p.PublishedAt, lang),
		})
	}

	title := bundle.T(lang, "nav.blog") + " — " + brandName
	vm := newPageData(r, title)
	vm.Blog = &view
	vm.setSEO(title, bundle.T(lang, "blog.subtitle"), "website")
	vm.breadcrumbJSONLD()

	renderPage(w, r, "blog", vm)
}

// BlogPostHandler renders one article.
func BlogPostHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	slug := chi.URLParam(r, "slug")
	p, err := blog.Get(slug, lang)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			renderNotFound(w, r)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view := PostView{
		Title:    p.Title,
		Category: p.Category,
		Image:    p.Image,
		Date:     cms.FormatDate(p.PublishedAt, lang),
		Body:     p.Body,
	}

	title := p.Title + " — " + brandName
	vm := newPageData(r, title)
	vm.Post = &view
	vm.Breadcrumbs = nav.Breadcrumbs(r.URL.Path, map[string]string{slug: p.Title})
	vm.setSEO(title, p.Excerpt, "article")
	if p.Image != "" {
		vm.SEO.OG.Image = seo.BaseURL + p.Image
	}
	vm.addJSONLD(seo.Article(
		p.Title,
		seo.BaseURL+"/blog/"+p.Slug,
		seo.BaseURL+p.Image,
		brandName,
		p.PublishedAt.Format("2006-01-02"),
	))
	vm.breadcrumbJSONLD()

	renderPage(w, r, "blog_post", vm)
}
