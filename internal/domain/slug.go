package domain

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slug builds the URL-safe identifier for a manufacturer from its legal name
// and country code. It is deterministic and never fails; a name that reduces
// to nothing leaves just the country prefix and a bare hyphen.
func Slug(legalName, countryCode string) string {
	s := strings.ToLower(legalName)
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return strings.ToLower(countryCode) + "-" + s
}

// SearchKeywords returns the ordered, non-empty search terms for a
// manufacturer: legal name, brand, aliases, then the resolved country name.
// Blank entries and unknown country codes are omitted rather than emitted as
// placeholders.
func SearchKeywords(legalName, brand string, aliases []string, countryCode string) []string {
	keywords := make([]string, 0, len(aliases)+3)
	if legalName != "" {
		keywords = append(keywords, legalName)
	}
	if brand != "" {
		keywords = append(keywords, brand)
	}
	for _, alias := range aliases {
		if alias != "" {
			keywords = append(keywords, alias)
		}
	}
	if name, ok := CountryName(countryCode); ok {
		keywords = append(keywords, name)
	}
	return keywords
}
