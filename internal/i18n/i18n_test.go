package i18n

import "testing"

func loadBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load("../../locales", "ru", []string{"ru", "kz", "uz"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestResolveHonorsQValues(t *testing.T) {
	b := loadBundle(t)
	got := b.Resolve("ru;q=0.8, uz;q=0.9")
	if got != "uz" {
		t.Fatalf("expected uz, got %s", got)
	}
}

func TestResolveMapsKazakhSubtag(t *testing.T) {
	b := loadBundle(t)
	if got := b.Resolve("kk-KZ, ru;q=0.7"); got != "kz" {
		t.Fatalf("expected kz for kk-KZ, got %s", got)
	}
}

func TestResolveFallsBackToRussian(t *testing.T) {
	b := loadBundle(t)
	if got := b.Resolve("fr, de;q=0.9"); got != "ru" {
		t.Fatalf("expected fallback ru, got %s", got)
	}
}

func TestTFallsBackToRussian(t *testing.T) {
	b := loadBundle(t)
	if got := b.T("uz", "nav.catalog"); got == "nav.catalog" || got == "" {
		t.Fatalf("uz nav.catalog missing: %q", got)
	}
	if got := b.T("kz", "no.such.key"); got != "no.such.key" {
		t.Fatalf("unknown key must return the key, got %q", got)
	}
}
