package naming

import (
	"fmt"
	"strings"
)

// meterPrefixLen is how many characters of the sanitized site name are kept
// in a generated meter identifier.
const meterPrefixLen = 10

// MeterID builds a deterministic meter identifier from the site name and a
// 1-based sequence number, e.g. MeterID("Main Office", 2) == "MTR-MAIN-OFFIC-002".
func MeterID(siteName string, seq int) string {
	return fmt.Sprintf("MTR-%s-%03d", SitePrefix(siteName), seq)
}

// SitePrefix sanitizes a site name into an uppercase identifier prefix:
// non-alphanumeric runs collapse to a single hyphen, the result is truncated
// to meterPrefixLen characters and stripped of leading/trailing hyphens.
func SitePrefix(siteName string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToUpper(siteName) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	prefix := b.String()
	if len(prefix) > meterPrefixLen {
		prefix = prefix[:meterPrefixLen]
	}
	prefix = strings.Trim(prefix, "-")
	if prefix == "" {
		prefix = "SITE"
	}
	return prefix
}
