package main

import (
	"log"
	"net/http"
	"strings"

	mw "yoursite.kz/yoursite-web/internal/middleware"
)

// ContactsView feeds the contacts page template.
type ContactsView struct {
	Email    string
	Phone    string
	Address  string
	Sent     bool
	Name     string
	FormErr  string
	Message  string
	FormMail string
}

const (
	contactEmail = "hello@yoursite.kz"
	contactPhone = "+7 700 123 45 67"
)

func buildContactsView(r *http.Request) ContactsView {
	res := mw.GetRegion(r)
	return ContactsView{
		Email:   contactEmail,
		Phone:   contactPhone,
		Address: res.CountryName() + ", " + res.CityName(res.City()),
	}
}

func renderContacts(w http.ResponseWriter, r *http.Request, view ContactsView) {
	lang := mw.Lang(r)
	title := bundle.T(lang, "nav.contacts") + " — " + brandName
	vm := newPageData(r, title)
	vm.Contacts = &view
	vm.setSEO(title, bundle.T(lang, "contacts.subtitle"), "website")
	vm.breadcrumbJSONLD()
	renderPage(w, r, "contacts", vm)
}

// ContactsHandler renders the contacts page.
func ContactsHandler(w http.ResponseWriter, r *http.Request) {
	renderContacts(w, r, buildContactsView(r))
}

// ContactsSubmitHandler accepts the consultation form and re-renders the
// page with a confirmation. There is no mail backend; submissions are
// logged for the operations team.
func ContactsSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	view := buildContactsView(r)
	view.Name = strings.TrimSpace(r.PostFormValue("name"))
	view.FormMail = strings.TrimSpace(r.PostFormValue("email"))
	view.Message = strings.TrimSpace(r.PostFormValue("message"))

	if view.Name == "" || view.Message == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		view.FormErr = bundle.T(mw.Lang(r), "contacts.formIntro")
		renderContacts(w, r, view)
		return
	}

	log.Printf("contact request name=%q email=%q", view.Name, view.FormMail)
	view.Sent = true
	view.Message = ""
	renderContacts(w, r, view)
}
