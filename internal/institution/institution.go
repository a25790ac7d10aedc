// Package institution identifies the issuing bank of a statement from its
// page text or, failing that, from its file name.
package institution

import (
	"regexp"
	"strings"
)

// Unknown is returned when no issuer pattern matches.
const Unknown = "Unknown"

type pattern struct {
	name     string
	patterns []*regexp.Regexp
}

// Ordered most specific first so "Citibank" does not lose to a generic hit.
var patterns = []pattern{
	{"Chase", []*regexp.Regexp{
		regexp.MustCompile(`(?i)jpmorgan chase`),
		regexp.MustCompile(`(?i)\bchase\b`),
	}},
	{"Bank of America", []*regexp.Regexp{
		regexp.MustCompile(`(?i)bank of america`),
		regexp.MustCompile(`(?i)\bbofa\b`),
	}},
	{"Wells Fargo", []*regexp.Regexp{
		regexp.MustCompile(`(?i)wells fargo`),
	}},
	{"Capital One", []*regexp.Regexp{
		regexp.MustCompile(`(?i)capital one`),
	}},
	{"Citi", []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bciti\s*bank\b`),
		regexp.MustCompile(`(?i)\bciti\b`),
		regexp.MustCompile(`(?i)citibank`),
	}},
	{"American Express", []*regexp.Regexp{
		regexp.MustCompile(`(?i)american express`),
		regexp.MustCompile(`(?i)\bamex\b`),
	}},
	{"Discover", []*regexp.Regexp{
		regexp.MustCompile(`(?i)discover bank`),
		regexp.MustCompile(`(?i)\bdiscover\b`),
	}},
}

// FromText matches accumulated statement text against known issuer
// patterns, falling back to the file name.
func FromText(text, fileName string) string {
	for _, p := range patterns {
		for _, re := range p.patterns {
			if re.MatchString(text) {
				return p.name
			}
		}
	}
	return FromFilename(fileName)
}

// FromFilename guesses the issuer from substrings of the file name.
func FromFilename(fileName string) string {
	lower := strings.ToLower(fileName)
	switch {
	case strings.Contains(lower, "chase"):
		return "Chase"
	case strings.Contains(lower, "bofa"),
		strings.Contains(lower, "bankofamerica"),
		strings.Contains(lower, "bank_of_america"):
		return "Bank of America"
	case strings.Contains(lower, "wells"):
		return "Wells Fargo"
	case strings.Contains(lower, "capitalone"), strings.Contains(lower, "capone"):
		return "Capital One"
	case strings.Contains(lower, "citi"):
		return "Citi"
	case strings.Contains(lower, "amex"), strings.Contains(lower, "americanexpress"):
		return "American Express"
	case strings.Contains(lower, "discover"):
		return "Discover"
	}
	return Unknown
}
