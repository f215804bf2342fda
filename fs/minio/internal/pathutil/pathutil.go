// Package pathutil turns filesystem paths into S3 object keys.
package pathutil

import (
	"path"
	"strings"
)

// Normalize cleans p into key form: forward slashes, no "." or ".."
// segments, no leading or trailing slash. The root becomes "".
func Normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.Trim(path.Clean("/"+p), "/")
	return p
}

// JoinPath prefixes the normalized name with prefix, which must already be
// normalized.
func JoinPath(prefix, name string) string {
	name = Normalize(name)
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	default:
		return prefix + "/" + name
	}
}

// DirPrefix returns the listing prefix for the directory key. The root key
// "" lists the whole bucket.
func DirPrefix(key string) string {
	if key == "" {
		return ""
	}
	return key + "/"
}

// Base returns the last segment of key, or "." for the root.
func Base(key string) string {
	if key == "" {
		return "."
	}
	return path.Base(key)
}
