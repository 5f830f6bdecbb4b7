package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"fermi/internal/source"
)

//go:embed sample_settings.toml
var sampleSettings string

// document is the raw shape of the settings file for fields whose presence
// matters: deprecated keys trigger warnings, the temperature method token
// must be recognized or the load fails, and the source list is all-or-nothing
// against the synthesized default. Pointer and slice fields distinguish
// "absent" from a zero value.
type document struct {
	CrossSections     *string       `toml:"cross_sections"`
	MultipoleLibrary  *string       `toml:"multipole_library"`
	Output            *outputNode   `toml:"output"`
	TemperatureMethod *string       `toml:"temperature_method"`
	TemperatureRange  []float64     `toml:"temperature_range"`
	Sources           []source.Spec `toml:"source"`
}

type outputNode struct {
	Path string `toml:"path"`
}

// Load reads the settings document for a fixed-source run. See LoadForMode.
func Load(path string, logger *slog.Logger) (*Settings, string, bool, error) {
	return LoadForMode(path, ModeFixedSource, logger)
}

// LoadForMode builds the settings registry: compiled defaults first, then a
// single pass over the TOML document at path (or ./settings.toml when path
// is empty). The returned value is frozen; LoadForMode must complete before
// any transport work starts and must not be re-invoked mid-run.
//
// Deprecation warnings are emitted through logger; nil discards them.
func LoadForMode(path string, mode RunMode, logger *slog.Logger) (*Settings, string, bool, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := Default()
	s.RunMode = mode

	resolvedPath, exists, err := resolveSettingsPath(path)
	if err != nil {
		return nil, "", false, err
	}

	var doc document
	if exists {
		data, err := os.ReadFile(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("read settings: %w", err)
		}
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, "", false, fmt.Errorf("parse settings: %w", err)
		}
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, "", false, fmt.Errorf("parse settings: %w", err)
		}
	}

	// Phase order matters coarsely: legacy paths settle before temperature
	// parsing, and sources build last.
	s.applyDeprecated(&doc, logger)
	s.applyOutput(&doc)
	if err := s.applyTemperature(&doc); err != nil {
		return nil, "", false, err
	}
	if err := s.buildSources(&doc); err != nil {
		return nil, "", false, err
	}
	if err := s.Validate(); err != nil {
		return nil, "", false, err
	}

	return &s, resolvedPath, exists, nil
}

// applyDeprecated installs legacy top-level keys as lowest-precedence
// fallbacks and warns once per key. The effective paths are resolved later
// through ResolveCrossSections / ResolveMultipole, where the materials
// document and environment variables take precedence.
func (s *Settings) applyDeprecated(doc *document, logger *slog.Logger) {
	if doc.CrossSections != nil {
		logger.Warn("cross_sections in the settings file is deprecated;"+
			" set it in the materials file instead. The materials value and"+
			" the "+EnvCrossSections+" environment variable take precedence"+
			" over this key.",
			"field", "cross_sections")
		// Stored verbatim: this is a file path, not a directory.
		s.PathCrossSections = *doc.CrossSections
	}

	// Plotting runs never touch materials data, so the legacy multipole
	// path stays unset there.
	if s.RunMode == ModePlotting {
		return
	}
	if doc.MultipoleLibrary != nil {
		logger.Warn("multipole_library in the settings file is deprecated;"+
			" set it in the materials file instead. The materials value and"+
			" the "+EnvMultipoleLibrary+" environment variable take"+
			" precedence over this key.",
			"field", "multipole_library")
		s.PathMultipole = ensureTrailingSeparator(*doc.MultipoleLibrary)
	}
}

func (s *Settings) applyOutput(doc *document) {
	if doc.Output != nil && doc.Output.Path != "" {
		s.PathOutput = ensureTrailingSeparator(doc.Output.Path)
	}
}

// applyTemperature maps the method token and copies the range pair. The
// unknown-token case is the only fatal condition; tolerance and default are
// trusted as supplied.
func (s *Settings) applyTemperature(doc *document) error {
	if doc.TemperatureMethod != nil {
		token := strings.ToLower(strings.TrimSpace(*doc.TemperatureMethod))
		switch token {
		case string(TemperatureNearest):
			s.TemperatureMethod = TemperatureNearest
		case string(TemperatureInterpolation):
			s.TemperatureMethod = TemperatureInterpolation
		default:
			return fmt.Errorf("unknown temperature method: %s", token)
		}
	}
	if doc.TemperatureRange != nil {
		if len(doc.TemperatureRange) != 2 {
			return fmt.Errorf("temperature_range expects exactly 2 values, got %d", len(doc.TemperatureRange))
		}
		s.TemperatureRange[0] = doc.TemperatureRange[0]
		s.TemperatureRange[1] = doc.TemperatureRange[1]
	}
	return nil
}

// buildSources constructs one Distribution per document source node in
// document order. The default fission-like source is all-or-nothing: it is
// appended only when the document configured no source at all.
func (s *Settings) buildSources(doc *document) error {
	for i, spec := range doc.Sources {
		dist, err := source.New(spec)
		if err != nil {
			return fmt.Errorf("source %d: %w", i+1, err)
		}
		s.ExternalSources = append(s.ExternalSources, dist)
	}
	if len(s.ExternalSources) == 0 {
		s.ExternalSources = append(s.ExternalSources, source.Default())
	}
	return nil
}

func resolveSettingsPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat settings: %w", err)
		}
		return expanded, true, nil
	}

	workingPath, err := filepath.Abs("settings.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(workingPath); err == nil && !info.IsDir() {
		return workingPath, true, nil
	}
	return workingPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample settings file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleSettings), 0o644); err != nil {
		return fmt.Errorf("write sample settings: %w", err)
	}
	return nil
}
