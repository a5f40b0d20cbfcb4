// SPDX-License-Identifier: MIT

package instance

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an on-disk encoding.
type Format uint8

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
	FormatCSV
	FormatCBOR
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatCSV, FormatCBOR}

// String returns the canonical lower-case name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatCSV:
		return "csv"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// ParseFormat maps a name ("json", "yaml"/"yml", "toml", "csv", "cbor") to
// its Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "csv":
		return FormatCSV, nil
	case "cbor":
		return FormatCBOR, nil
	}

	return 0, fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("FormatOf(%q): no extension: %w", path, ErrUnknownFormat)
	}

	return ParseFormat(ext)
}
