package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ardnew/hwsys/component"
)

// report is the resolved view of one instance. Its fields keep declaration
// order so every output format lists members the way the manifest does.
type report struct {
	System     string       `json:"system"               yaml:"system"`
	Instance   string       `json:"instance"             yaml:"instance"`
	Component  string       `json:"component"            yaml:"component"`
	Parameters []binding    `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Kinds      []kindReport `json:"kinds"                yaml:"kinds"`
}

type kindReport struct {
	Kind    string    `json:"kind"    yaml:"kind"`
	Members []binding `json:"members" yaml:"members"`
}

type binding struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// override is a parsed INSTANCE.PARAMETER=VALUE assignment.
type override struct {
	instance, parameter, value string
}

func parseOverride(s string) (override, error) {
	key, value, ok := strings.Cut(s, "=")
	inst, param, dot := strings.Cut(key, ".")

	if !ok || !dot || inst == "" || param == "" {
		return override{}, ErrInvalidOverride.With(slog.String("override", s))
	}

	return override{instance: inst, parameter: param, value: value}, nil
}

// applyOverrides parses each assignment and applies it to every selected
// instance with the named instance. Nothing is applied unless every
// assignment parses, names a selected instance, and names a parameter its
// definition declares.
func applyOverrides(sel []selected, sets []string) error {
	type target struct {
		sel selected
		ov  override
	}

	var targets []target

	for _, set := range sets {
		ov, err := parseOverride(set)
		if err != nil {
			return err
		}

		found := false

		for _, s := range sel {
			if s.instance.Name() != ov.instance {
				continue
			}

			if _, err := s.instance.Value(ov.parameter); err != nil {
				return component.WrapError(err).
					With(slog.String("system", s.system.Name()))
			}

			targets = append(targets, target{sel: s, ov: ov})
			found = true
		}

		if !found {
			return ErrInstanceNotFound.With(
				slog.String("instance", ov.instance),
				slog.String("override", ov.parameter+"="+ov.value),
			)
		}
	}

	for _, t := range targets {
		if err := t.sel.instance.Override(t.ov.parameter, t.ov.value); err != nil {
			return component.WrapError(err).
				With(slog.String("system", t.sel.system.Name()))
		}
	}

	return nil
}

// makeReport resolves the members of kinds for the selected instance.
// With no kinds, every kind the definition declares members of is reported.
func makeReport(s selected, kinds []component.Kind, params bool) report {
	inst := s.instance
	def := inst.Definition()

	r := report{
		System:    s.system.Name(),
		Instance:  inst.Name(),
		Component: def.Name(),
	}

	if params {
		for _, p := range inst.Bindings() {
			r.Parameters = append(r.Parameters, binding{Name: p.Name(), Value: p.Value()})
		}
	}

	if len(kinds) == 0 {
		kinds = def.Kinds()
	}

	for _, k := range kinds {
		resolved := inst.Resolve(k)
		kr := kindReport{Kind: k.String(), Members: make([]binding, 0, len(resolved))}

		// A repeated member name resolves once, at its first position,
		// with the value of its last declaration.
		for _, m := range def.Members(k) {
			if slices.ContainsFunc(kr.Members, func(b binding) bool {
				return b.Name == m.Name()
			}) {
				continue
			}

			kr.Members = append(kr.Members, binding{Name: m.Name(), Value: resolved[m.Name()]})
		}

		r.Kinds = append(r.Kinds, kr)
	}

	return r
}

func makeReports(sel []selected, kinds []component.Kind, params bool) []report {
	reports := make([]report, 0, len(sel))
	for _, s := range sel {
		reports = append(reports, makeReport(s, kinds, params))
	}

	return reports
}

func writeJSON(w io.Writer, reports []report) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	_, err = w.Write(append(data, '\n'))

	return err
}

func writeYAML(w io.Writer, reports []report) error {
	data, err := yaml.MarshalWithOptions(reports, yaml.Indent(2))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = w.Write(data)

	return err
}

// writeTable renders one row per resolved value.
func writeTable(w io.Writer, reports []report) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.Off}},
		})))

	table.Header("System", "Instance", "Kind", "Name", "Value")

	for _, rep := range reports {
		for _, g := range rep.groups() {
			for _, m := range g.Members {
				row := []string{rep.System, rep.Instance, g.Kind, m.Name, m.Value}
				if err := table.Append(row); err != nil {
					return ErrTableRender.Wrap(err)
				}
			}
		}
	}

	if err := table.Render(); err != nil {
		return ErrTableRender.Wrap(err)
	}

	return nil
}

// writeText renders reports as an indented listing. Styles are bound to w,
// so color is only emitted when w is a terminal.
func writeText(w io.Writer, reports []report) error {
	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true)
	label := r.NewStyle().Faint(true)
	name := r.NewStyle().Foreground(lipgloss.Color("6"))
	value := r.NewStyle().Foreground(lipgloss.Color("3"))

	var b strings.Builder

	for n, rep := range reports {
		if n > 0 {
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "%s %s\n",
			header.Render(rep.System+"."+rep.Instance),
			label.Render("("+rep.Component+")"),
		)

		width := 0
		for _, g := range rep.groups() {
			for _, m := range g.Members {
				width = max(width, lipgloss.Width(m.Name))
			}
		}

		for _, g := range rep.groups() {
			fmt.Fprintf(&b, "  %s\n", label.Render(g.Kind))

			for _, m := range g.Members {
				fmt.Fprintf(&b, "    %s  %s\n",
					name.Render(m.Name+strings.Repeat(" ", width-lipgloss.Width(m.Name))),
					value.Render(m.Value),
				)
			}
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// groups returns the parameter group, when present, followed by the
// member kinds.
func (r report) groups() []kindReport {
	if len(r.Parameters) == 0 {
		return r.Kinds
	}

	return append([]kindReport{{Kind: "parameter", Members: r.Parameters}}, r.Kinds...)
}
