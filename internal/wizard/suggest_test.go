package wizard

import "testing"

func TestSuggestCurrency(t *testing.T) {
	if currency, ok := SuggestCurrency("DE"); !ok || currency != "EUR" {
		t.Errorf("SuggestCurrency(DE) = %q, %v", currency, ok)
	}
	if _, ok := SuggestCurrency("XX"); ok {
		t.Error("unknown country should have no suggestion")
	}
}

func TestSuggestTimezone(t *testing.T) {
	if tz, ok := SuggestTimezone("IL"); !ok || tz != "Asia/Jerusalem" {
		t.Errorf("SuggestTimezone(IL) = %q, %v", tz, ok)
	}
}

func TestEveryCountryHasBothSuggestions(t *testing.T) {
	for _, c := range Countries {
		if _, ok := SuggestCurrency(c.Value); !ok {
			t.Errorf("country %s has no currency suggestion", c.Value)
		}
		if _, ok := SuggestTimezone(c.Value); !ok {
			t.Errorf("country %s has no timezone suggestion", c.Value)
		}
	}
}

func TestWithCountryFillsOnlyEmptyFields(t *testing.T) {
	s := NewSession(VariantManual)
	s = s.WithCountry("DE")
	if s.Site.Currency != "EUR" || s.Site.Timezone != "Europe/Berlin" {
		t.Fatalf("suggestions not applied: %+v", s.Site)
	}

	// A value the user already entered is never overwritten, even when the
	// country changes afterwards.
	s.Site.Currency = "USD"
	s = s.WithCountry("FR")
	if s.Site.Currency != "USD" {
		t.Errorf("country change overwrote currency: %q", s.Site.Currency)
	}
	if s.Site.Timezone != "Europe/Berlin" {
		t.Errorf("country change overwrote timezone: %q", s.Site.Timezone)
	}
	if s.Site.Country != "FR" {
		t.Errorf("country not updated: %q", s.Site.Country)
	}
}

func TestWithCountryUnknownCode(t *testing.T) {
	s := NewSession(VariantManual)
	s = s.WithCountry("XX")
	if s.Site.Currency != "" || s.Site.Timezone != "" {
		t.Errorf("unknown country filled fields: %+v", s.Site)
	}
}
