package page

import (
	"fmt"
	"net/url"
	"strings"
)

// Base returns the scheme://host origin of pageURL.
func Base(pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", pageURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid URL %q: scheme and host are required", pageURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

// Resolve turns a reference found in a page into an absolute URL.
//
// Absolute http(s) references are returned unchanged, protocol-relative
// references get an https: prefix, root-relative references are joined to the
// origin, and every other reference is treated as relative to the origin root.
func Resolve(base, ref string) string {
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref
	case strings.HasPrefix(ref, "//"):
		return "https:" + ref
	case strings.HasPrefix(ref, "/"):
		return base + ref
	default:
		return base + "/" + ref
	}
}

// IsInline reports whether ref embeds its content rather than pointing at it.
func IsInline(ref string) bool {
	return strings.HasPrefix(strings.ToLower(ref), "data:")
}
