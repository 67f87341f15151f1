package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DocumentFormat identifies the encoding of a profile document.
type DocumentFormat string

const (
	FormatYAML DocumentFormat = "yaml"
	FormatJSON DocumentFormat = "json"
	FormatTOML DocumentFormat = "toml"
)

// FormatForPath picks the document format from a file extension.
func FormatForPath(path string) (DocumentFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported document extension %q (want .yaml, .yml, .json or .toml)", filepath.Ext(path))
	}
}

// Decode parses data in the given format into v.
func Decode(format DocumentFormat, data []byte, v any) error {
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, v)
	case FormatJSON:
		err = json.Unmarshal(data, v)
	case FormatTOML:
		err = toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported document format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", strings.ToUpper(string(format)), err)
	}
	return nil
}

// Encode renders v in the given format.
func Encode(format DocumentFormat, v any) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		data, err := toml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}
