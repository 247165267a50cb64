package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/hwsys/cli/cmd/browse"
	"github.com/ardnew/hwsys/log"
)

// Browse filters the resolved members of every selected instance
// interactively and prints the one chosen.
type Browse struct {
	System string   `help:"Browse only the instances of this system." short:"s"`
	Set    []string `help:"Override a parameter before resolving."    placeholder:"INSTANCE.PARAMETER=VALUE"`
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)
	defer annotate("browse", &err)

	design, err := loadDesign(ctx)
	if err != nil {
		return err
	}

	sel, err := selectInstances(design, b.System, nil)
	if err != nil {
		return err
	}

	if err := applyOverrides(sel, b.Set); err != nil {
		return err
	}

	row, ok, err := browse.Run(ctx, makeRows(sel), log.Default())
	if err != nil || !ok {
		return err
	}

	_, err = fmt.Fprintf(outputFrom(ctx), "%s = %s\n", row.Path, row.Resolved)

	return err
}

// makeRows flattens the selected instances into one row per member,
// in declaration order.
func makeRows(sel []selected) browse.Rows {
	var rows browse.Rows

	for _, s := range sel {
		def := s.instance.Definition()

		for _, k := range def.Kinds() {
			resolved := s.instance.Resolve(k)

			for _, m := range def.Members(k) {
				rows = append(rows, browse.Row{
					Path: strings.Join(
						[]string{s.system.Name(), s.instance.Name(), k.String(), m.Name()}, ".",
					),
					Expression: m.Expression(),
					Resolved:   resolved[m.Name()],
				})
			}
		}
	}

	return rows
}
