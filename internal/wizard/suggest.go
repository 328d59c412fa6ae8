package wizard

// Static country lookups used to suggest a currency and timezone while the
// user fills in site details. Suggestions only ever fill empty fields.

var countryCurrency = map[string]string{
	"AT": "EUR",
	"AU": "AUD",
	"CH": "CHF",
	"DE": "EUR",
	"ES": "EUR",
	"FR": "EUR",
	"GB": "GBP",
	"IL": "ILS",
	"IT": "EUR",
	"JP": "JPY",
	"NL": "EUR",
	"US": "USD",
}

var countryTimezone = map[string]string{
	"AT": "Europe/Vienna",
	"AU": "Australia/Sydney",
	"CH": "Europe/Zurich",
	"DE": "Europe/Berlin",
	"ES": "Europe/Madrid",
	"FR": "Europe/Paris",
	"GB": "Europe/London",
	"IL": "Asia/Jerusalem",
	"IT": "Europe/Rome",
	"JP": "Asia/Tokyo",
	"NL": "Europe/Amsterdam",
	"US": "America/New_York",
}

// SuggestCurrency returns the default currency for a country code.
func SuggestCurrency(country string) (string, bool) {
	currency, ok := countryCurrency[country]
	return currency, ok
}

// SuggestTimezone returns the default timezone for a country code.
func SuggestTimezone(country string) (string, bool) {
	tz, ok := countryTimezone[country]
	return tz, ok
}
