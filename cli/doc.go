// Package cli contains the command line interface for hwsys.
//
// # Usage
//
//	hwsys [flags] [command] [command flags]
//
// The default command is resolve:
//
//	hwsys -f chip.yaml
//	hwsys -f chip.hcl resolve --system MyChip --instance UART1 --kind register
//	hwsys -f chip.yaml resolve --set UART1.BASE=0x4000 --output json
//	hwsys -f chip.yaml list
//	hwsys -f chip.yaml browse
//	hwsys -f chip.yaml init
//
// # Configuration File
//
// Flag defaults are read from config.yaml in the user configuration
// directory ($XDG_CONFIG_HOME/hwsys on Linux), a flat mapping of flag names
// to values:
//
//	file: /path/to/chip.yaml
//	log-level: debug
//	log-format: text
//
// The init command writes the current flag values to that file.
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output and indent JSON output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default
//     $XDG_CACHE_HOME/hwsys/pprof)
package cli
