package report

import (
	"net/url"
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// DisplayName returns the host of rawURL without a leading "www.".
func DisplayName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// CleanBaseName derives a file name base from the host of rawURL, e.g.
// "https://www.example.co.uk:8080/x" becomes "example_co_uk_8080".
func CleanBaseName(rawURL string) string {
	name := nonAlphanumeric.ReplaceAllString(DisplayName(rawURL), "_")
	if name == "" {
		return "palette"
	}
	return name
}

// Paths holds the output file locations for a run.
type Paths struct {
	JSON string
	HTML string
}

// OutputPaths returns the JSON and HTML paths for base, or for the URL's clean
// name when base is empty.
func OutputPaths(rawURL, base string) Paths {
	if base == "" {
		base = CleanBaseName(rawURL)
	}
	return Paths{JSON: base + ".json", HTML: base + ".html"}
}
