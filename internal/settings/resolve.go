package settings

import (
	"os"
	"strings"
)

// Environment variables that override deprecated in-document library paths.
const (
	EnvCrossSections    = "FERMI_CROSS_SECTIONS"
	EnvMultipoleLibrary = "FERMI_MULTIPOLE_LIBRARY"
)

// ResolveCrossSections returns the effective cross-sections path: the
// materials-document value wins, then the environment variable, then the
// deprecated settings-document fallback. Empty means unconfigured.
func (s *Settings) ResolveCrossSections(materialsValue string) string {
	return firstPresent(materialsValue, os.Getenv(EnvCrossSections), s.PathCrossSections)
}

// ResolveMultipole returns the effective multipole library path with the
// same precedence chain as ResolveCrossSections.
func (s *Settings) ResolveMultipole(materialsValue string) string {
	return firstPresent(materialsValue, os.Getenv(EnvMultipoleLibrary), s.PathMultipole)
}

// firstPresent implements the precedence chain: the first candidate with a
// non-blank value wins.
func firstPresent(candidates ...string) string {
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}
