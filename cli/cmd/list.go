package cmd

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/ardnew/hwsys/manifest"
)

// List prints the components and systems declared by the manifest.
type List struct {
	Components bool `help:"List only components." xor:"list"`
	Systems    bool `help:"List only systems."    xor:"list"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)
	defer annotate("list", &err)

	design, err := loadDesign(ctx)
	if err != nil {
		return err
	}

	both := !l.Components && !l.Systems

	return writeList(outputFrom(ctx), design, both || l.Components, both || l.Systems)
}

// writeList renders the design as trees: each component with its
// parameters and members, and each system with its instances and their
// overrides.
func writeList(w io.Writer, d *manifest.Design, components, systems bool) error {
	r := lipgloss.NewRenderer(w)
	root := r.NewStyle().Bold(true)
	faint := r.NewStyle().Faint(true)
	enum := r.NewStyle().Foreground(lipgloss.Color("8"))

	var out []string

	if components {
		t := tree.Root(root.Render("components")).EnumeratorStyle(enum)

		for _, c := range d.Components {
			ct := tree.Root(c.Name())

			for _, p := range c.Parameters() {
				ct.Child(fmt.Sprintf("%s %s = %s", faint.Render("parameter"), p.Name(), p.Value()))
			}

			for _, k := range c.Kinds() {
				for _, m := range c.Members(k) {
					ct.Child(fmt.Sprintf("%s %s = %s", faint.Render(k.String()), m.Name(), m.Expression()))
				}
			}

			t.Child(ct)
		}

		out = append(out, t.String())
	}

	if systems {
		t := tree.Root(root.Render("systems")).EnumeratorStyle(enum)

		for _, s := range d.Systems {
			st := tree.Root(s.Name())

			for _, inst := range s.Instances() {
				it := tree.Root(inst.Name() + " " + faint.Render("("+inst.Definition().Name()+")"))

				ov := inst.Overrides()
				for _, name := range slices.Sorted(maps.Keys(ov)) {
					it.Child(name + " = " + ov[name])
				}

				st.Child(it)
			}

			t.Child(st)
		}

		out = append(out, t.String())
	}

	for _, s := range out {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}

	return nil
}
