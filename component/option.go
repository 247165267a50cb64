package component

import "github.com/ardnew/hwsys/log"

// Option applies a configuration option to an [Instance].
type Option func(config) config

type config struct {
	logger log.Logger
}

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithLogger returns an option that traces overrides and resolution
// through logger. The zero [log.Logger] discards everything and is the
// default.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}
