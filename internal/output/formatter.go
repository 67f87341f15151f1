package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/finch/networth/internal/domain"
)

// ErrUnsupportedFormat is returned for format names no formatter answers to.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(ts *domain.TimeseriesResponse) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.TimeseriesResponse) ([]byte, error)
}

func (ff FormatterFunc) Format(ts *domain.TimeseriesResponse) ([]byte, error) { return ff.F(ts) }
func (ff FormatterFunc) Name() string                                         { return ff.ID }

// reportTime stamps report file names.
var reportTime = time.Now

// WriteFormatted runs a formatter and writes output to a timestamped file with extension in dir.
func WriteFormatted(f Formatter, ts *domain.TimeseriesResponse, dir, ext string) (string, error) {
	data, err := f.Format(ts)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("networth_report_%s.%s", reportTime().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	ChartFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"table":       "console",
	"txt":         "console",
	"json-pretty": "json",
	"chart":       "png",
	"image":       "png",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsBinary reports whether the named format produces non-text output.
func IsBinary(name string) bool {
	return NormalizeFormatName(name) == "png"
}
