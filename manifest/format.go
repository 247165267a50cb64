package manifest

import (
	"iter"
	"log/slog"
	"path/filepath"
	"strings"
)

// Format identifies a manifest encoding.
type Format int

const (
	FormatYAML Format = iota // yaml
	FormatHCL                // hcl
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatHCL:
		return "hcl"
	default:
		return "unknown"
	}
}

// Formats returns an iterator over all supported manifest format names.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range []Format{FormatYAML, FormatHCL} {
			if !yield(f.String()) {
				return
			}
		}
	}
}

// ParseFormat parses a format name or file extension, with or without the
// leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl":
		return FormatHCL, nil
	default:
		return 0, ErrUnknownFormat.With(slog.String("format", s))
	}
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return 0, ErrUnknownFormat.With(slog.String("path", path))
	}

	return f, nil
}
