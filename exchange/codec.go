package exchange

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a case-insensitive name ("json", "yaml", "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension in %q", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Encode writes v to w. JSON is indented by two spaces; YAML uses two-space indentation.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Decode reads one value from r into v. Both codecs reject unknown fields so
// a misspelled key fails loudly instead of silently dropping data.
func Decode(r io.Reader, f Format, v any) error {
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		return dec.Decode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// ReadFile decodes a Document from path; the format follows the extension.
func ReadFile(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("exchange: open %s: %w", path, err)
	}
	defer file.Close()

	doc := &Document{}
	if err := Decode(file, f, doc); err != nil {
		return nil, fmt.Errorf("exchange: decode %s: %w", path, err)
	}

	return doc, nil
}

// WriteFile encodes v to path, creating or truncating it; the format follows
// the extension.
func WriteFile(path string, v any) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("exchange: create %s: %w", path, err)
	}
	if err := Encode(file, f, v); err != nil {
		file.Close()
		return fmt.Errorf("exchange: encode %s: %w", path, err)
	}

	return file.Close()
}
