package sitedex

import (
	"net/url"
	"strings"
)

// NormalizeURL converts a URL to its canonical form used for deduplication:
// the fragment is removed, scheme and host are lowercased, and any trailing
// slash is stripped. Normalization is idempotent - normalizing an already
// canonical URL returns it unchanged.
func NormalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	u.Fragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	s := u.String()
	// A single consistent convention: no trailing slash, including on the
	// bare domain root.
	s = strings.TrimRight(s, "/")
	return s, nil
}

// ValidateSeedURL checks that a crawl seed is an absolute http(s) URL with a
// host. An invalid seed is a configuration error - the crawl must not start.
func ValidateSeedURL(rawURL string) error {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return Errorf(EINVALID, "seed URL must start with http:// or https://")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid seed URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "seed URL %q has no host", rawURL)
	}
	return nil
}

// Hostname returns the lowercased host component of a URL, including any
// port. The host defines the crawl's domain scope.
func Hostname(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	return strings.ToLower(u.Host), nil
}

// SameHost reports whether two URLs share the same host. Hosts are compared
// exactly - subdomains are considered different hosts.
func SameHost(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return strings.EqualFold(ua.Host, ub.Host)
}
