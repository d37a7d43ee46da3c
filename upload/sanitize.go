package upload

import "strings"

// SanitizePath normalizes a caller-supplied relative directory into a safe,
// traversal-free, trailing-slash-terminated relative path. Every ".." token
// is stripped, back-slashes become forward slashes, slash runs collapse into
// one, and the result carries exactly one trailing slash. An empty input
// yields "/".
//
// This is the sole defense against directory traversal in the destination
// path and must run before the path is joined with the application root.
// SanitizePath is pure and idempotent.
func SanitizePath(path string) string {
	for strings.Contains(path, "..") {
		path = strings.ReplaceAll(path, "..", "")
	}
	path = strings.ReplaceAll(path, "\\", "/")
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	path = strings.Trim(path, "/")
	return path + "/"
}
