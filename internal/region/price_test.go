package region

import "testing"

// x/text groups digits with a non-breaking space for ru/kk/uz locales.
const nbsp = "\u00a0"

func TestFormatPriceKZ(t *testing.T) {
	r := New(nil)
	// 300 USD * 450 = 135000 -> ceil to thousand minus 10 = 134990
	if got := r.FormatPrice(300); got != "134"+nbsp+"990 ₸" {
		t.Fatalf("FormatPrice(300): got %q", got)
	}
}

func TestFormatPriceRoundsUpToNextThousand(t *testing.T) {
	r := New(nil)
	// 100.01 USD * 450 = 45004.5 -> round 45005 -> ceil 46000 - 10 = 45990
	if got := r.FormatPrice(100.01); got != "45"+nbsp+"990 ₸" {
		t.Fatalf("FormatPrice(100.01): got %q", got)
	}
}

func TestFormatPriceSmallAmount(t *testing.T) {
	r := New(nil)
	// 1 USD * 450 = 450 -> ceil 1000 - 10 = 990
	if got := r.FormatPrice(1); got != "990 ₸" {
		t.Fatalf("FormatPrice(1): got %q", got)
	}
}

func TestDisplayPriceNumeric(t *testing.T) {
	r := New(nil)
	if got := r.DisplayPrice(300); got != 134990 {
		t.Fatalf("DisplayPrice(300): got %d", got)
	}
	r.SetRegion(CountryUZ, "")
	if got := r.DisplayPrice(299); got != 3737990 {
		t.Fatalf("DisplayPrice(299) uz: got %d", got)
	}
}

func TestFormatPriceUZ(t *testing.T) {
	r := New(nil)
	r.SetRegion(CountryUZ, "")
	// 299 USD * 12500 = 3737500 -> ceil 3738000 - 10 = 3737990
	if got := r.FormatPrice(299); got != "3"+nbsp+"737"+nbsp+"990 сўм" {
		t.Fatalf("FormatPrice(299) uz: got %q", got)
	}
}

func TestFormatPriceKG(t *testing.T) {
	r := New(nil)
	r.SetRegion(CountryKG, "")
	// 249 USD * 89 = 22161 -> ceil 23000 - 10 = 22990
	if got := r.FormatPrice(249); got != "22"+nbsp+"990 сом" {
		t.Fatalf("FormatPrice(249) kg: got %q", got)
	}
}
