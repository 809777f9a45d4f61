package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"yoursite.kz/yoursite-web/internal/cms"
	"yoursite.kz/yoursite-web/internal/i18n"
	mw "yoursite.kz/yoursite-web/internal/middleware"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	localesDir   = "locales"
	blogDir      = "content/blog"
	// devMode is set in main() based on env: YOURSITE_WEB_DEV (preferred) or DEV (fallback)
	devMode   bool
	tmplCache *template.Template
	bundle    *i18n.Bundle
	blog      *cms.Library
)

func main() {
	var (
		addr     string
		tmplPath string
		pubPath  string
	)
	// Port resolution: prefer YOURSITE_WEB_PORT, then Cloud Run's PORT, else 8080
	port := os.Getenv("YOURSITE_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&localesDir, "locales", localesDir, "locale bundles directory")
	flag.StringVar(&blogDir, "blog", blogDir, "blog content directory")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath

	devMode = os.Getenv("YOURSITE_WEB_DEV") != "" || os.Getenv("DEV") != ""

	b, err := i18n.Load(localesDir, "ru", []string{"ru", "kz", "uz"})
	if err != nil {
		log.Fatalf("load locales: %v", err)
	}
	bundle = b
	blog = cms.NewLibrary(blogDir)

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			log.Fatalf("parse templates: %v", err)
		}
		tmplCache = tc
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("web listening on %s (devMode=%v)", addr, devMode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.Region(bundle))
	r.Use(mw.CSRF)
	r.Use(mw.VaryLocale)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/assets/*", http.StripPrefix("/assets/", mw.AssetsWithCache(filepath.Join(publicDir, "assets"))))

	r.Get("/", HomeHandler)
	r.Get("/catalog", CatalogHandler)
	r.Get("/templates/{slug}", TemplateDetailHandler)
	r.Get("/blog", BlogHandler)
	r.Get("/blog/{slug}", BlogPostHandler)
	r.Get("/contacts", ContactsHandler)
	r.Post("/contacts", ContactsSubmitHandler)
	r.Get("/login", LoginHandler)
	r.Post("/login", LoginSubmitHandler)
	r.Get("/register", RegisterHandler)
	r.Post("/register", RegisterSubmitHandler)
	r.Post("/region", RegionSelectHandler)

	// Country and city landings come last so fixed routes win.
	r.Get("/{country}", CountryLandingHandler)
	r.Get("/{country}/{city}", CityLandingHandler)

	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// renderPage executes a named page template. In dev mode, templates are
// reparsed on each request.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var t *template.Template
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	} else {
		t = tmplCache
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}
}

// renderNotFound serves the localized 404 page.
func renderNotFound(w http.ResponseWriter, r *http.Request) {
	vm := newPageData(r, bundle.T(mw.Lang(r), "errors.notFound"))
	vm.setSEO(vm.Title+" | "+brandName, "", "website")
	vm.SEO.Robots = "noindex"
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	renderPage(w, r, "not_found", vm)
}
