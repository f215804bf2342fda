package safefs

import "strings"

// ParentPath returns the parent of p using string operations only: one
// trailing separator is dropped, then the last separator and everything after
// it. Both '/' and '\' count as separators.
//
//	ParentPath("a/b/c.js") == "a/b"
//	ParentPath("a/b/c/")   == "a/b"
//	ParentPath("/a")       == ""
//	ParentPath("a")        == "a"
//
// When there is no segment left to strip, the result is the input minus at
// most one trailing separator, so it is never longer than p.
func ParentPath(p string) string {
	trimmed := p
	if n := len(trimmed); n > 0 && isSeparator(trimmed[n-1]) {
		trimmed = trimmed[:n-1]
	}
	i := strings.LastIndexAny(trimmed, `/\`)
	if i < 0 || i == len(trimmed)-1 {
		return trimmed
	}
	return trimmed[:i]
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// hasParent reports whether ParentPath(p) names a directory that may need
// creating.
func hasParent(p string) bool {
	parent := ParentPath(p)
	return parent != "" && parent != p
}
