package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/hwsys/component"
	"github.com/ardnew/hwsys/log"
	"github.com/ardnew/hwsys/manifest"
)

type (
	contextKey  struct{}
	manifestKey struct{}
	outputKey   struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithManifest returns a new context.Context containing the path of the
// manifest file that commands load their design from.
func WithManifest(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, manifestKey{}, path)
}

func manifestFrom(ctx context.Context) string {
	path, _ := ctx.Value(manifestKey{}).(string)

	return path
}

// WithOutput returns a new context.Context containing the writer that
// receives command output. Commands write to [os.Stdout] when none is set.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// loadDesign loads the manifest named in ctx. Instances log overrides and
// resolutions through the package-level logger.
func loadDesign(ctx context.Context) (*manifest.Design, error) {
	path := manifestFrom(ctx)
	if path == "" {
		return nil, ErrNoSource
	}

	design, err := manifest.Load(path, component.WithLogger(log.Default()))
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "manifest loaded",
		slog.String("path", path),
		slog.Int("components", len(design.Components)),
		slog.Int("systems", len(design.Systems)),
	)

	return design, nil
}

// selectInstances returns the instances of design that belong to system (or
// to every system when system is empty) and whose names appear in names (or
// every instance when names is empty), in declaration order.
func selectInstances(
	design *manifest.Design,
	system string,
	names []string,
) ([]selected, error) {
	if system != "" {
		if _, ok := design.System(system); !ok {
			return nil, ErrSystemNotFound.With(slog.String("system", system))
		}
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = false
	}

	var sel []selected

	for sys, inst := range design.Instances() {
		if system != "" && sys.Name() != system {
			continue
		}

		if _, ok := want[inst.Name()]; len(want) > 0 && !ok {
			continue
		}

		want[inst.Name()] = true

		sel = append(sel, selected{system: sys, instance: inst})
	}

	for _, n := range names {
		if !want[n] {
			return nil, ErrInstanceNotFound.With(slog.String("instance", n))
		}
	}

	return sel, nil
}

// selected is an instance paired with the system containing it.
type selected struct {
	system   *component.System
	instance *component.Instance
}
