package main

import (
	"net/http"
	"strings"

	mw "yoursite.kz/yoursite-web/internal/middleware"
)

// AuthView feeds the login and register templates. Authentication is
// delegated to the CreativeID identity service; these pages collect the
// form and confirm submission.
type AuthView struct {
	Email     string
	FirstName string
	LastName  string
	Submitted bool
	FormErr   string
}

func renderAuth(w http.ResponseWriter, r *http.Request, page, titleKey string, view AuthView) {
	lang := mw.Lang(r)
	title := bundle.T(lang, titleKey) + " — " + brandName
	vm := newPageData(r, title)
	vm.Auth = &view
	vm.setSEO(title, bundle.T(lang, "hero.subtitle"), "website")
	vm.SEO.Robots = "noindex"
	renderPage(w, r, page, vm)
}

// LoginHandler renders the sign-in page.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	renderAuth(w, r, "login", "nav.login", AuthView{})
}

// LoginSubmitHandler validates the form and confirms. Credential checks live
// in CreativeID; this front-end only gates obviously empty input.
func LoginSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	view := AuthView{Email: strings.TrimSpace(r.PostFormValue("email"))}
	if view.Email == "" || r.PostFormValue("password") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		view.FormErr = bundle.T(mw.Lang(r), "auth.loginSubtitle")
		renderAuth(w, r, "login", "nav.login", view)
		return
	}
	view.Submitted = true
	renderAuth(w, r, "login", "nav.login", view)
}

// RegisterHandler renders the sign-up page.
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	renderAuth(w, r, "register", "auth.createAccount", AuthView{})
}

// RegisterSubmitHandler validates the form and confirms.
func RegisterSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	view := AuthView{
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:  strings.TrimSpace(r.PostFormValue("last_name")),
	}
	password := r.PostFormValue("password")
	if view.Email == "" || view.FirstName == "" || len(password) < 8 {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		view.FormErr = bundle.T(mw.Lang(r), "auth.passwordHint")
		renderAuth(w, r, "register", "auth.createAccount", view)
		return
	}
	view.Submitted = true
	renderAuth(w, r, "register", "auth.createAccount", view)
}
