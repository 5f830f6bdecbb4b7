package settings

import "strings"

// pathSeparator terminates directory-like settings paths so downstream code
// can append file names without checking.
const pathSeparator = "/"

// ensureTrailingSeparator appends exactly one separator when absent. A value
// already ending in a separator is returned unchanged, so the function is
// idempotent.
func ensureTrailingSeparator(path string) string {
	if strings.HasSuffix(path, pathSeparator) {
		return path
	}
	return path + pathSeparator
}

// EnsureTrailingSeparator exposes the directory path normalization rule for
// other packages.
func EnsureTrailingSeparator(path string) string {
	return ensureTrailingSeparator(path)
}
