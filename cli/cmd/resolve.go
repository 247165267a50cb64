package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/hwsys/component"
	"github.com/ardnew/hwsys/log"
)

// Resolve prints the member expressions of each selected instance with
// parameter names replaced by the instance's effective values.
type Resolve struct {
	System   string           `help:"Resolve only the instances of this system."                  short:"s"`
	Instance []string         `help:"Resolve only these instances."                               placeholder:"NAME"                     short:"i"`
	Kind     []component.Kind `help:"Resolve only these member kinds (${kinds})."                 placeholder:"KIND"                     short:"k"`
	Set      []string         `help:"Override a parameter before resolving."                      placeholder:"INSTANCE.PARAMETER=VALUE"`
	Params   bool             `help:"Include effective parameter values."`
	Output   string           `default:"text"                                                     enum:"text,table,json,yaml"                  help:"Output format (${enum})." short:"o"`
}

// Run executes the resolve command.
func (r *Resolve) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)
	defer annotate("resolve", &err)

	design, err := loadDesign(ctx)
	if err != nil {
		return err
	}

	sel, err := selectInstances(design, r.System, r.Instance)
	if err != nil {
		return err
	}

	if err := applyOverrides(sel, r.Set); err != nil {
		return err
	}

	reports := makeReports(sel, r.Kind, r.Params)

	log.DebugContext(ctx, "resolved instances",
		slog.Int("instances", len(reports)),
		slog.String("output", r.Output),
	)

	w := outputFrom(ctx)

	switch r.Output {
	case "json":
		return writeJSON(w, reports)
	case "yaml":
		return writeYAML(w, reports)
	case "table":
		return writeTable(w, reports)
	default:
		return writeText(w, reports)
	}
}

// annotate decorates a non-nil *err with the name of the failing command.
func annotate(command string, err *error) {
	if *err != nil {
		*err = component.WrapError(*err).With(slog.String("command", command))
	}
}
