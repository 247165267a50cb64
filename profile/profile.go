package profile

// Config functions return all supported pprof configuration parameters.
type Config func() (mode, path string, quiet bool)

// Option modifies a [Config].
type Option func(Config) Config

// Make returns a Config with opts applied to the zero configuration:
// no mode, the default output path, and quiet disabled.
func Make(opts ...Option) Config {
	var c Config = func() (string, string, bool) { return "", "", false }

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// Start starts the profiler and returns a handle for stopping it.
//
// If the pprof build tag is unset, or the mode is empty or unknown, Start
// returns a no-op. Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	mode, path, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

// WithMode returns an option setting the profiling mode.
func WithMode(mode string) Option {
	return func(c Config) Config {
		_, path, quiet := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithPath returns an option setting the profile output directory.
func WithPath(path string) Option {
	return func(c Config) Config {
		mode, _, quiet := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithQuiet returns an option controlling the profiler's own logging.
func WithQuiet(quiet bool) Option {
	return func(c Config) Config {
		mode, path, _ := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

type ignore struct{}

func (ignore) Stop() {}
