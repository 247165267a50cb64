// Package profile provides optional runtime profiling for hwsys, built on
// [github.com/pkg/profile].
//
// Profiling must be enabled at build time with the "pprof" build tag:
//
//	go build -tags pprof .
//	hwsys --pprof-mode cpu -f chip.yaml
//
// Without the tag, [Modes] is empty and [Config.Start] returns a no-op.
//
// Supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread and trace. Profiles are written to the configured
// directory (by default $XDG_CACHE_HOME/hwsys/pprof) and can be analyzed
// with go tool pprof:
//
//	go tool pprof -http=: ~/.cache/hwsys/pprof/cpu.pprof
//
// Builds with the tag also register the [net/http/pprof] handlers.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
