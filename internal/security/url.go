// Package security provides validation for user-supplied URLs.
package security

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"
)

// NormalizePageURL validates a page URL given on the command line.
// A bare host such as "example.com" is treated as https. Only http and
// https URLs with a host are accepted.
func NormalizePageURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty URL")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q (only http:// and https:// allowed)", parsed.Scheme)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("URL must have a hostname")
	}

	return raw, nil
}

// IsLocalOrPrivateHost reports whether host is localhost or a loopback,
// private or link-local address.
func IsLocalOrPrivateHost(host string) bool {
	host = strings.ToLower(strings.Trim(host, "[]"))
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	return addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() || addr.IsUnspecified()
}

// PageHost returns the hostname of a URL accepted by NormalizePageURL.
func PageHost(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
