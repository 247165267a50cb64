// Package cmd implements the hwsys subcommands: resolve, list, browse and
// init.
//
// Commands receive their environment through [context.Context]: the parsed
// [kong.Context] ([WithContext]), the manifest path ([WithManifest]) and the
// writer that receives command output ([WithOutput]).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
