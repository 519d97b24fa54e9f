package sink

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/hyp3rd/ewrap"
	"github.com/mattn/go-isatty"

	"github.com/xiaojitui007/asynclog"
)

// Console is a terminal sink with per-severity ANSI colors. Colors are
// applied when the target is a terminal or the color configuration forces
// them.
//
// Console writes are unbuffered, so Flush has nothing to push and always
// succeeds.
type Console struct {
	out      io.Writer
	colors   map[asynclog.Severity]string
	colorize bool
	written  atomic.Int64
	scratch  []byte
}

// NewConsole creates a console sink writing to the given target, usually
// os.Stdout or os.Stderr.
func NewConsole(out io.Writer, colorConfig asynclog.ColorConfig) *Console {
	colorize := colorConfig.Enable && (colorConfig.ForceTTY || isTerminal(out))

	colors := colorConfig.SeverityColors
	if colors == nil {
		colors = asynclog.DefaultSeverityColors()
	}

	return &Console{
		out:      out,
		colors:   colors,
		colorize: colorize,
	}
}

// Write formats the records in order, wrapping each line in its severity
// color when colorization is active.
func (c *Console) Write(records []asynclog.Record) error {
	buf := c.scratch[:0]

	for _, r := range records {
		if c.colorize {
			if color, ok := c.colors[r.Severity]; ok {
				buf = append(buf, color...)
				buf = appendRecord(buf, r)
				buf = append(buf, asynclog.Reset...)
				buf = append(buf, '\n')

				continue
			}
		}

		buf = formatRecord(buf, r)
	}

	c.scratch = buf

	n, err := c.out.Write(buf)
	c.written.Add(int64(n))

	if err != nil {
		return ewrap.Wrap(err, "writing to console")
	}

	return nil
}

// Flush implements the Sink interface. Console output is unbuffered.
func (c *Console) Flush() error {
	return nil
}

// ApproximateSize reports the bytes written to the terminal.
func (c *Console) ApproximateSize() int64 {
	return c.written.Load()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

var _ asynclog.Sink = (*Console)(nil)
