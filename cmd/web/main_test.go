package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"golang.org/x/net/html"
	"yoursite.kz/yoursite-web/internal/cms"
	"yoursite.kz/yoursite-web/internal/i18n"
)

var (
	setupOnce sync.Once
	setupErr  error
)

// newTestApp wires the real templates, locales and content into a router the
// way main() does, once per test binary.
func newTestApp(t *testing.T) http.Handler {
	t.Helper()
	setupOnce.Do(func() {
		templatesDir = "../../templates"
		publicDir = "../../public"
		localesDir = "../../locales"
		blogDir = "../../content/blog"

		b, err := i18n.Load(localesDir, "ru", []string{"ru", "kz", "uz"})
		if err != nil {
			setupErr = err
			return
		}
		bundle = b
		blog = cms.NewLibrary(blogDir)

		tc, err := parseTemplates()
		if err != nil {
			setupErr = err
			return
		}
		tmplCache = tc
	})
	if setupErr != nil {
		t.Fatalf("setup: %v", setupErr)
	}
	return newRouter()
}

// cookieJar carries cookies across requests within one test.
type cookieJar map[string]*http.Cookie

func (j cookieJar) apply(r *http.Request) {
	for _, c := range j {
		r.AddCookie(c)
	}
}

func (j cookieJar) update(res *http.Response) {
	for _, c := range res.Cookies() {
		j[c.Name] = c
	}
}

func get(t *testing.T, h http.Handler, jar cookieJar, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	jar.apply(req)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	jar.update(rec.Result())
	return rec
}

func postForm(t *testing.T, h http.Handler, jar cookieJar, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	jar.apply(req)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	jar.update(rec.Result())
	return rec
}

// csrfToken primes the jar with a session and returns the matching token.
func csrfToken(t *testing.T, h http.Handler, jar cookieJar) string {
	t.Helper()
	get(t, h, jar, "/")
	c, ok := jar["csrf_token"]
	if !ok {
		t.Fatal("no csrf_token cookie issued")
	}
	return c.Value
}

// headLinks parses the document and returns rel=canonical href and the set of
// hreflang values on alternate links.
func headLinks(t *testing.T, body string) (canonical string, hreflangs []string) {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "link" {
			var rel, href, hreflang string
			for _, a := range n.Attr {
				switch a.Key {
				case "rel":
					rel = a.Val
				case "href":
					href = a.Val
				case "hreflang":
					hreflang = a.Val
				}
			}
			switch rel {
			case "canonical":
				canonical = href
			case "alternate":
				if hreflang != "" {
					hreflangs = append(hreflangs, hreflang)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return canonical, hreflangs
}

func TestHealthz(t *testing.T) {
	h := newTestApp(t)
	rec := get(t, h, cookieJar{}, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "ok" {
		t.Errorf("body = %q, want ok", got)
	}
}

func TestHomePage(t *testing.T) {
	h := newTestApp(t)
	rec := get(t, h, cookieJar{}, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Алматы") {
		t.Error("default region city missing from home page")
	}
	if !strings.Contains(body, "application/ld+json") {
		t.Error("structured data missing from home page")
	}
	if got := strings.Count(body, `class="template-card"`); got != 6 {
		t.Errorf("popular cards = %d, want 6", got)
	}

	canonical, hreflangs := headLinks(t, body)
	if canonical != "https://yoursite.kz/" {
		t.Errorf("canonical = %q", canonical)
	}
	if len(hreflangs) != 4 {
		t.Fatalf("hreflang alternates = %v, want 4 entries", hreflangs)
	}
	want := map[string]bool{"ru": true, "kk": true, "uz": true, "x-default": true}
	for _, hl := range hreflangs {
		if !want[hl] {
			t.Errorf("unexpected hreflang %q", hl)
		}
	}
}

func TestCatalogCategoryFilter(t *testing.T) {
	h := newTestApp(t)
	rec := get(t, h, cookieJar{}, "/catalog?category=dental")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "DentalPro") {
		t.Error("dental template missing")
	}
	if strings.Contains(body, "AutoService X") {
		t.Error("filtered-out template present")
	}
}

func TestCatalogSearch(t *testing.T) {
	h := newTestApp(t)
	rec := get(t, h, cookieJar{}, "/catalog?q=fitness")
	body := rec.Body.String()
	if !strings.Contains(body, "FitnessPower") {
		t.Error("search match missing")
	}
	if strings.Contains(body, "DentalPro") {
		t.Error("non-matching template present")
	}

	rec = get(t, h, cookieJar{}, "/catalog?q=zzzzzz")
	if !strings.Contains(rec.Body.String(), `class="catalog-empty"`) {
		t.Error("empty state missing for no-match search")
	}
}

func TestCatalogCanonicalIgnoresFilters(t *testing.T) {
	h := newTestApp(t)
	rec := get(t, h, cookieJar{}, "/catalog?category=dental&sort=price-asc")
	canonical, _ := headLinks(t, rec.Body.String())
	if canonical != "https://yoursite.kz/catalog" {
		t.Errorf("canonical = %q, want bare catalog URL", canonical)
	}
}

func TestTemplateDetail(t *testing.T) {
	h := newTestApp(t)
	rec := get(t, h, cookieJar{}, "/templates/dental-pro")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "DentalPro") {
		t.Error("template name missing")
	}
	if !strings.Contains(body, `"@type":"Product"`) && !strings.Contains(body, `"@type": "Product"`) {
		t.Error("product structured data missing")
	}
}

func TestTemplateDetailNotFound(t *testing.T) {
	h := newTestApp(t)
	rec := get(t, h, cookieJar{}, "/templates/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "404") {
		t.Error("not found page missing")
	}
}

func TestCountryLandingUnknownCountry(t *testing.T) {
	h := newTestApp(t)
	rec := get(t, h, cookieJar{}, "/de")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect = %q, want /", loc)
	}
}

func TestCityLandingUnknownCity(t *testing.T) {
	h := newTestApp(t)
	rec := get(t, h, cookieJar{}, "/kz/nope")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/kz" {
		t.Errorf("redirect = %q, want /kz", loc)
	}
}

func TestCityLandingSwitchesRegion(t *testing.T) {
	h := newTestApp(t)
	jar := cookieJar{}

	rec := get(t, h, jar, "/uz/tashkent")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Ташкент") {
		t.Error("city name missing from landing")
	}

	// The visit persists the selection; the home page follows it.
	rec = get(t, h, jar, "/")
	if !strings.Contains(rec.Body.String(), "Ташкент") {
		t.Error("region selection did not stick across requests")
	}
}

func TestRegionSelect(t *testing.T) {
	h := newTestApp(t)
	jar := cookieJar{}
	token := csrfToken(t, h, jar)

	rec := postForm(t, h, jar, "/region", url.Values{
		"csrf_token": {token},
		"country":    {"kg"},
		"city":       {"bishkek"},
		"return":     {"/catalog"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/catalog" {
		t.Errorf("redirect = %q, want /catalog", loc)
	}

	rec = get(t, h, jar, "/")
	if !strings.Contains(rec.Body.String(), "Бишкек") {
		t.Error("selected city missing after region change")
	}
}

func TestRegionSelectLanguage(t *testing.T) {
	h := newTestApp(t)
	jar := cookieJar{}
	token := csrfToken(t, h, jar)

	rec := postForm(t, h, jar, "/region", url.Values{
		"csrf_token": {token},
		"lang":       {"uz"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	rec = get(t, h, jar, "/")
	if !strings.Contains(rec.Body.String(), `<html lang="uz">`) {
		t.Error("language selection did not apply")
	}
}

func TestRegionSelectRejectsMissingToken(t *testing.T) {
	h := newTestApp(t)
	jar := cookieJar{}
	get(t, h, jar, "/")

	rec := postForm(t, h, jar, "/region", url.Values{"country": {"kg"}})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRegionSelectUnsafeReturn(t *testing.T) {
	h := newTestApp(t)
	jar := cookieJar{}
	token := csrfToken(t, h, jar)

	rec := postForm(t, h, jar, "/region", url.Values{
		"csrf_token": {token},
		"country":    {"kz"},
		"return":     {"//evil.example"},
	})
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect = %q, want /", loc)
	}
}

func TestBlogIndex(t *testing.T) {
	h := newTestApp(t)
	rec := get(t, h, cookieJar{}, "/blog")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Как выбрать") {
		t.Error("post listing missing")
	}
}

func TestBlogPost(t *testing.T) {
	h := newTestApp(t)
	rec := get(t, h, cookieJar{}, "/blog/kak-vybrat-sait-dlya-biznesa")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `class="post-body"`) {
		t.Error("post body missing")
	}

	rec = get(t, h, cookieJar{}, "/blog/no-such-post")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown slug status = %d, want 404", rec.Code)
	}
}

func TestContactsSubmit(t *testing.T) {
	h := newTestApp(t)
	jar := cookieJar{}
	token := csrfToken(t, h, jar)

	rec := postForm(t, h, jar, "/contacts", url.Values{
		"csrf_token": {token},
		"name":       {"Айгерим"},
		"email":      {"a@example.kz"},
		"message":    {"Нужен сайт для стоматологии"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `class="form-success"`) {
		t.Error("confirmation missing after submit")
	}

	rec = postForm(t, h, jar, "/contacts", url.Values{
		"csrf_token": {token},
		"name":       {"Айгерим"},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("incomplete form status = %d, want 422", rec.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	h := newTestApp(t)
	jar := cookieJar{}
	token := csrfToken(t, h, jar)

	rec := postForm(t, h, jar, "/register", url.Values{
		"csrf_token": {token},
		"email":      {"a@example.kz"},
		"first_name": {"Айгерим"},
		"password":   {"short"},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("short password status = %d, want 422", rec.Code)
	}

	rec = postForm(t, h, jar, "/register", url.Values{
		"csrf_token": {token},
		"email":      {"a@example.kz"},
		"first_name": {"Айгерим"},
		"last_name":  {"Смагулова"},
		"password":   {"longenough1"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `class="form-success"`) {
		t.Error("confirmation missing after register")
	}
}

func TestStaticAssets(t *testing.T) {
	h := newTestApp(t)
	rec := get(t, h, cookieJar{}, "/assets/css/site.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cc := rec.Header().Get("Cache-Control"); cc == "" {
		t.Error("missing Cache-Control on static asset")
	}
}
