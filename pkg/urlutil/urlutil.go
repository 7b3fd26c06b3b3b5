// Package urlutil provides URL helpers for the aggregator.
package urlutil

import (
	"net/url"
	"strings"
)

// Server extracts the server prefix of a URL: the scheme plus host,
// without path, query, or fragment. Articles served from the same
// origin under different paths share a server prefix, which the
// aggregator uses to unify near-duplicate articles.
//
// For strings that do not parse as a URL or carry no host, the input
// up to the first path separator is returned.
func Server(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err == nil && u.Host != "" {
		if u.Scheme != "" {
			return u.Scheme + "://" + u.Host
		}

		return u.Host
	}

	if i := strings.Index(rawURL, "/"); i >= 0 {
		return rawURL[:i]
	}

	return rawURL
}

// IsRemote reports whether the location is an http(s) URL rather than
// a local file path.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
