// Package browse implements an interactive fuzzy filter over resolved
// member expressions.
package browse

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/hwsys/log"
)

// Row is one resolved member: its dotted path
// (system.instance.kind.member), its declared expression, and the
// expression after parameter substitution.
type Row struct {
	Path       string
	Expression string
	Resolved   string
}

// Rows implements [fuzzy.Source] over the path and resolved expression of
// each row.
//
// [fuzzy.Source]: https://pkg.go.dev/github.com/sahilm/fuzzy#Source
type Rows []Row

// String returns the searchable text of row i.
func (r Rows) String(i int) string { return r[i].Path + " " + r[i].Resolved }

// Len returns the number of rows.
func (r Rows) Len() int { return len(r) }

// Run starts the browser over rows and blocks until the user quits.
// It returns the row chosen with Enter, if any.
func Run(
	ctx context.Context,
	rows Rows,
	logger log.Logger,
	opts ...tea.ProgramOption,
) (row Row, chosen bool, err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if len(rows) == 0 {
		return Row{}, false, ErrNoRows
	}

	logger.TraceContext(ctx, "browse start", slog.Int("rows", len(rows)))

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)

	final, err := tea.NewProgram(newModel(ctx, rows, logger), opts...).Run()
	if err != nil {
		return Row{}, false, err
	}

	m, ok := final.(model)
	if !ok || m.chosen < 0 {
		return Row{}, false, nil
	}

	return rows[m.chosen], true, nil
}
