package cli

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/hwsys/log"
)

// resolve is a [kong.ConfigurationLoader] that reads a flat YAML mapping of
// flag names to values:
//
//	log-level: debug
//	log-format: text
//	log-pretty: true
//	file: /path/to/chip.yaml
//
// Keys may use underscores in place of hyphens (log_level).
// Command-line flags override config file values. A file that cannot be
// parsed is reported and otherwise ignored.
func resolve(r io.Reader) (kong.Resolver, error) {
	var m map[string]any

	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if !errors.Is(err, io.EOF) {
			log.Warn("ignoring invalid configuration file", slog.Any("error", err))
		}

		return config{}, nil
	}

	cfg := make(config, len(m))
	for k, v := range m {
		cfg[k] = flagValue(v)
	}

	return cfg, nil
}

// config implements [kong.Resolver] over a parsed configuration file.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}

// flagValue converts a decoded YAML value into the form kong parses.
// Numbers are passed as strings.
func flagValue(v any) any {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case []any:
		out := make([]any, len(n))
		for i, e := range n {
			out[i] = flagValue(e)
		}

		return out
	default:
		return v
	}
}
