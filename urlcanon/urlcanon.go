// Package urlcanon normalizes council document URLs so that
// semantically-equivalent links hash identically. InfoCouncil hosts in
// particular serve the same file as both a RedirectToDoc.aspx wrapper
// and a direct /Open/ path.
package urlcanon

import (
	"net/url"
	"strings"
)

// Canonicalize returns a stable form of a document URL for deduplication.
//
//   - RedirectToDoc.aspx?URL=Open/... becomes the direct path on the same
//     host, with query and fragment dropped
//   - direct /Open/ links keep scheme+host+path only
//   - anything else keeps its query and loses only the fragment
//
// Case is preserved throughout: some of these servers are case-sensitive
// and a lowercased path would 404.
func Canonicalize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Opaque != "" || u.Host == "" {
		// Relative or unparseable input is left alone rather than mangled
		return rawURL
	}

	scheme := u.Scheme
	if scheme == "" {
		scheme = "https"
	}

	lowPath := strings.ToLower(u.Path)

	if strings.HasSuffix(lowPath, "/redirecttodoc.aspx") {
		if inner := wrappedTarget(u.Query()); inner != "" {
			if !strings.HasPrefix(inner, "/") {
				inner = "/" + inner
			}
			direct := url.URL{Scheme: scheme, Host: u.Host, Path: inner}
			return direct.String()
		}
	}

	if strings.Contains(lowPath, "/open/") {
		direct := url.URL{Scheme: scheme, Host: u.Host, Path: u.Path}
		return direct.String()
	}

	stripped := url.URL{Scheme: scheme, Host: u.Host, Path: u.Path, RawQuery: u.RawQuery}
	return stripped.String()
}

// wrappedTarget pulls the redirect target out of a wrapper query string
func wrappedTarget(q url.Values) string {
	for _, key := range []string{"URL", "url", "u"} {
		if v := q.Get(key); v != "" {
			return v
		}
	}
	return ""
}
