package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
)

// palette holds the styles used by the pretty text handler. Styles are
// created from a renderer bound to the handler's writer so color is only
// emitted when that writer is a color-capable terminal.
type palette struct {
	key, str, num, boolTrue, boolFalse, dur, tm lipgloss.Style
	levels                                     [4]lipgloss.Style
}

func newPalette(w io.Writer) *palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &palette{
		key:       fg("8"),
		str:       fg("6"),
		num:       fg("3"),
		boolTrue:  fg("2"),
		boolFalse: fg("1"),
		dur:       fg("5"),
		tm:        fg("4"),
		levels: [4]lipgloss.Style{
			fg("4").Bold(true), // trace, debug
			fg("2").Bold(true), // info
			fg("3").Bold(true), // warn
			fg("1").Bold(true), // error
		},
	}
}

func (p *palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.levels[3]
	case l >= slog.LevelWarn:
		return p.levels[2]
	case l >= slog.LevelInfo:
		return p.levels[1]
	default:
		return p.levels[0]
	}
}

// prettyTextHandler writes colorized key=value lines without quoting.
type prettyTextHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	style  *palette
	group  string // dotted prefix applied to attribute keys
	preset []byte // attributes added through WithAttrs, already rendered
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:  *opts,
		mu:    &sync.Mutex{},
		w:     w,
		style: newPalette(w),
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		if a := h.replace(slog.Time(slog.TimeKey, r.Time)); a.Key != "" {
			h.writeAttr(buf, "", a)
		}
	}

	level := h.replace(slog.Any(slog.LevelKey, r.Level))
	h.sep(buf)
	buf.WriteString(h.style.level(r.Level).Render(level.Value.String()))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, "", slog.String(
				slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	h.sep(buf)
	buf.WriteString(r.Message)

	if len(h.preset) > 0 {
		buf.Write(h.preset)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.group, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := bytes.NewBuffer(bytes.Clone(h.preset))
	for _, a := range attrs {
		h.writeAttr(buf, h.group, a)
	}

	c := *h
	c.preset = buf.Bytes()

	return &c
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.group = h.group + name + "."

	return &c
}

// replace applies the configured ReplaceAttr to a built-in attribute.
func (h *prettyTextHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (h *prettyTextHandler) sep(buf *bytes.Buffer) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, prefix, ga)
		}

		return
	}

	h.sep(buf)
	buf.WriteString(h.style.key.Render(prefix + a.Key))
	buf.WriteByte('=')
	buf.WriteString(h.renderValue(a.Value))
}

func (h *prettyTextHandler) renderValue(v slog.Value) string {
	s := h.style

	switch v.Kind() {
	case slog.KindString:
		return s.str.Render(v.String())

	case slog.KindInt64:
		return s.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return s.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return s.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return s.boolTrue.Render("true")
		}

		return s.boolFalse.Render("false")

	case slog.KindDuration:
		return s.dur.Render(v.Duration().String())

	case slog.KindTime:
		return s.tm.Render(v.Time().Format(time.RFC3339))

	default:
		return s.str.Render(fmt.Sprint(v.Any()))
	}
}

// prettyJSONHandler renders each record with the standard JSON handler and
// re-indents it for reading on a terminal.
type prettyJSONHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	buf   *bytes.Buffer
	inner slog.Handler
}

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	buf := new(bytes.Buffer)

	return &prettyJSONHandler{
		mu:    &sync.Mutex{},
		w:     w,
		buf:   buf,
		inner: slog.NewJSONHandler(buf, opts),
	}
}

func (h *prettyJSONHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *prettyJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()

	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, bytes.TrimSpace(h.buf.Bytes()), "", "  "); err != nil {
		// Fall back to the compact form rather than dropping the record.
		_, err = h.w.Write(h.buf.Bytes())

		return err
	}

	out.WriteByte('\n')

	_, err := h.w.Write(out.Bytes())

	return err
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{
		mu:    h.mu,
		w:     h.w,
		buf:   h.buf,
		inner: h.inner.WithAttrs(attrs),
	}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{
		mu:    h.mu,
		w:     h.w,
		buf:   h.buf,
		inner: h.inner.WithGroup(name),
	}
}
