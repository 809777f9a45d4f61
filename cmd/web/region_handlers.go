package main

import (
	"net/http"
	"strings"

	mw "yoursite.kz/yoursite-web/internal/middleware"
	"yoursite.kz/yoursite-web/internal/region"
)

// RegionSelectHandler persists a region or language choice from the header
// picker and redirects back to the submitting page.
func RegionSelectHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	res := mw.GetRegion(r)

	if v := r.PostFormValue("lang"); v != "" {
		if lang, ok := region.ParseLanguage(v); ok {
			res.SetLanguage(lang)
		}
	}
	if v := r.PostFormValue("country"); v != "" {
		if country, ok := region.ParseCountry(v); ok {
			res.SetRegion(country, r.PostFormValue("city"))
		}
	}

	http.Redirect(w, r, safeReturnPath(r.PostFormValue("return")), http.StatusSeeOther)
}

// safeReturnPath allows only same-site absolute paths.
func safeReturnPath(p string) string {
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return "/"
	}
	return p
}
