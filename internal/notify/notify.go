// Package notify shows short status messages to the user.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/localize-it/internal/logging"
)

// Notifier displays user-facing messages.
type Notifier interface {
	Info(msg string)
	Success(msg string)
}

// Terminal writes notifications as single lines, colored when the
// writer is a color-capable terminal.
type Terminal struct {
	out     io.Writer
	info    *color.Color
	success *color.Color
}

// NewTerminal returns a Terminal notifier writing to out.
// A nil out writes to os.Stdout.
func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	t := &Terminal{out: out}
	if logging.SupportsColor(out) {
		t.info = color.New(color.FgCyan)
		t.success = color.New(color.FgGreen, color.Bold)
	}
	return t
}

// Info writes an informational message.
func (t *Terminal) Info(msg string) {
	t.write(t.info, "ℹ", msg)
}

// Success writes a success message.
func (t *Terminal) Success(msg string) {
	t.write(t.success, "✓", msg)
}

func (t *Terminal) write(c *color.Color, mark, msg string) {
	if c != nil {
		mark = c.Sprint(mark)
	}
	fmt.Fprintf(t.out, "%s %s\n", mark, msg)
}

// Discard drops every message.
type Discard struct{}

func (Discard) Info(string)    {}
func (Discard) Success(string) {}
