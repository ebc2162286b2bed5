package getter

import (
	"path"
	"strings"
)

// SourceURL joins a source URL and a subpath with go-getter's double-slash
// syntax. The subpath goes before any query string. For example:
//
//	SourceURL("github.com/acme/scripts?ref=v1.2.0", "lint")
//	→ "github.com/acme/scripts//lint?ref=v1.2.0"
func SourceURL(src, subpath string) string {
	subpath = strings.TrimPrefix(subpath, "/")
	if subpath == "" {
		return src
	}

	base, query, hasQuery := strings.Cut(src, "?")

	url := base + "//" + subpath
	if hasQuery {
		url += "?" + query
	}

	return url
}

// DefaultDest derives a destination name from a source URL: the last path
// element with any query, forced getter prefix ("git::") and ".git" suffix removed.
func DefaultDest(src string) string {
	if i := strings.Index(src, "::"); i >= 0 {
		src = src[i+2:]
	}

	if i := strings.IndexByte(src, '?'); i >= 0 {
		src = src[:i]
	}

	src = strings.TrimRight(src, "/")
	base := strings.TrimSuffix(path.Base(src), ".git")

	if base == "" || base == "." || base == "/" {
		return "download"
	}

	return base
}
