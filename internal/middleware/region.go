package middleware

import (
	"context"
	"net/http"

	"yoursite.kz/yoursite-web/internal/i18n"
	"yoursite.kz/yoursite-web/internal/region"
)

// Region restores the session's region selection into a resolver and stores
// it in the request context. A `hl` query parameter switches the language
// when it names a supported code; on a first visit with no persisted
// language the Accept-Language header decides.
func Region(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := GetSession(r)
			res := region.New(s)
			if q := r.URL.Query().Get("hl"); q != "" {
				if lang, ok := region.ParseLanguage(q); ok {
					res.SetLanguage(lang)
				}
			} else if s.Locale == "" {
				if lang, ok := region.ParseLanguage(bundle.Resolve(r.Header.Get("Accept-Language"))); ok {
					res.SetLanguage(lang)
				}
			}
			w.Header().Set("Content-Language", string(res.Language()))
			ctx := context.WithValue(r.Context(), ctxKeyRegion, res)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRegion returns the request's region resolver. A detached default is
// returned when the middleware did not run (tests, error paths).
func GetRegion(r *http.Request) *region.Resolver {
	if v := r.Context().Value(ctxKeyRegion); v != nil {
		if res, ok := v.(*region.Resolver); ok {
			return res
		}
	}
	return region.New(nil)
}

// Lang returns the current site language code.
func Lang(r *http.Request) string {
	return string(GetRegion(r).Language())
}

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// append to existing Vary if any
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r)
	})
}
