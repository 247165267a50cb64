package manifest

import (
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/ardnew/hwsys/component"
)

// Design is the set of components and systems declared by a manifest.
// Components and systems keep their declaration order.
type Design struct {
	Source     string
	Components []*component.Component
	Systems    []*component.System
}

// Component returns the component with the given name.
func (d *Design) Component(name string) (*component.Component, bool) {
	for _, c := range d.Components {
		if c.Name() == name {
			return c, true
		}
	}

	return nil, false
}

// System returns the system with the given name.
func (d *Design) System(name string) (*component.System, bool) {
	for _, s := range d.Systems {
		if s.Name() == name {
			return s, true
		}
	}

	return nil, false
}

// Instances returns an iterator over every instance of every system,
// paired with the system that contains it.
func (d *Design) Instances() iter.Seq2[*component.System, *component.Instance] {
	return func(yield func(*component.System, *component.Instance) bool) {
		for _, s := range d.Systems {
			for _, i := range s.Instances() {
				if !yield(s, i) {
					return
				}
			}
		}
	}
}

// Load reads the manifest at path, choosing the decoder from its extension
// (".yaml", ".yml" or ".hcl").
// The options are applied to every instance created.
func Load(path string, opts ...component.Option) (*Design, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrDecode.Wrap(err).With(slog.String("source", path))
	}

	return decode(src, path, format, opts...)
}

// Decode reads a manifest of the given format from r.
// The options are applied to every instance created.
func Decode(r io.Reader, format Format, opts ...component.Option) (*Design, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	return decode(src, "manifest."+format.String(), format, opts...)
}

func decode(
	src []byte,
	source string,
	format Format,
	opts ...component.Option,
) (*Design, error) {
	var (
		doc *document
		err error
	)

	switch format {
	case FormatYAML:
		doc, err = decodeYAML(src, source)
	case FormatHCL:
		doc, err = decodeHCL(src, source)
	default:
		return nil, ErrUnknownFormat.With(slog.String("format", format.String()))
	}

	if err != nil {
		return nil, err
	}

	return doc.build(source, opts...)
}
