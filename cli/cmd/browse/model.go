package browse

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/hwsys/log"
)

const (
	prompt        = "➜ "
	defaultWidth  = 80
	defaultHeight = 12
)

// model is the Bubble Tea model for the browser.
type model struct {
	ctxFunc  func() context.Context
	input    textinput.Model
	rows     Rows
	logger   log.Logger
	matches  fuzzy.Matches
	cursor   int // index into matches of the highlighted row
	offset   int // index into matches of the first visible row
	width    int
	height   int // rows visible below the input line
	chosen   int // index into rows of the accepted row, or -1
	quitting bool
}

func newModel(ctx context.Context, rows Rows, logger log.Logger) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "filter members"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = defaultWidth

	m := model{
		ctxFunc: func() context.Context { return ctx },
		input:   ti,
		rows:    rows,
		logger:  logger,
		width:   defaultWidth,
		height:  defaultHeight,
		chosen:  -1,
	}

	m.refilter()

	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = max(1, msg.Height-3)
		m.input.Width = msg.Width - len(prompt) - 2
		m.scroll()

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "browse keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		if len(m.matches) == 0 {
			return m, nil
		}

		m.chosen = m.matches[m.cursor].Index
		m.quitting = true

		return m, tea.Quit

	case tea.KeyUp, tea.KeyCtrlP:
		m.move(-1)

		return m, nil

	case tea.KeyDown, tea.KeyCtrlN:
		m.move(1)

		return m, nil

	case tea.KeyPgUp:
		m.move(-m.height)

		return m, nil

	case tea.KeyPgDown:
		m.move(m.height)

		return m, nil
	}

	before := m.input.Value()

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		m.refilter()
	}

	return m, cmd
}

// refilter recomputes matches for the current query. An empty query
// matches every row in order.
func (m *model) refilter() {
	query := m.input.Value()

	if query == "" {
		m.matches = make(fuzzy.Matches, len(m.rows))
		for i := range m.rows {
			m.matches[i] = fuzzy.Match{Str: m.rows.String(i), Index: i}
		}
	} else {
		m.matches = fuzzy.FindFrom(query, m.rows)
	}

	m.cursor, m.offset = 0, 0
}

// move shifts the cursor by delta, clamped to the match list.
func (m *model) move(delta int) {
	if len(m.matches) == 0 {
		return
	}

	m.cursor = min(max(m.cursor+delta, 0), len(m.matches)-1)
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *model) scroll() {
	switch {
	case m.cursor < m.offset:
		m.offset = m.cursor
	case m.cursor >= m.offset+m.height:
		m.offset = m.cursor - m.height + 1
	}
}
