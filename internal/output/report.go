package output

import (
	"fmt"
	"strings"

	"github.com/finch/networth/internal/domain"
)

// reportExtensions maps canonical formatter names to file extensions.
var reportExtensions = map[string]string{
	"console": "txt",
	"csv":     "csv",
	"json":    "json",
	"png":     "png",
}

// GenerateReport writes the timeseries in the named format to a timestamped file in dir
// and returns its path. "all" writes every text format plus the chart.
func GenerateReport(ts *domain.TimeseriesResponse, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range AvailableFormatterNames() {
			f := GetFormatterByName(name)
			path, err := WriteFormatted(f, ts, dir, reportExtensions[name])
			if err != nil {
				return files, fmt.Errorf("%s report: %w", name, err)
			}
			files = append(files, path)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	path, err := WriteFormatted(f, ts, dir, reportExtensions[f.Name()])
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// UnsupportedFormatError wraps ErrUnsupportedFormat with the names that would have worked.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
