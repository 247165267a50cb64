// Package log provides the structured logger used by hwsys, a thin layer
// over [log/slog].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("design loaded", slog.Int("instances", 4))
//
// # Configuration
//
// Loggers are configured at creation with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("Kitchen"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a logger with further options applied.
// The package-level logger used by the CLI is reconfigured with [Config]
// and written to with [Info], [DebugContext], and so on.
//
// # Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn] and [LevelError].
// Trace is below slog's Debug and is used for per-operation detail such as
// individual parameter overrides and resolutions.
//
// # Output
//
// [FormatJSON] (default) and [FormatText]. With [WithPretty] enabled, text
// output is colorized with lipgloss when the writer is a terminal, and JSON
// output is indented.
//
// The zero [Logger] discards everything.
package log
