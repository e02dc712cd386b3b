// Package editor opens generated files in the user's preferred text editor.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/localize-it/internal/errors"
)

// Opener shows a file to the user.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Command launches an editor process for a path.
// The editor is resolved from Editor, then $EDITOR, then $VISUAL,
// then nano, then vi.
type Command struct {
	// Editor overrides environment detection, e.g. "code --wait".
	Editor string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// lookPath is exec.LookPath; replaced in tests.
	lookPath func(string) (string, error)
}

// New returns a Command wired to the process's standard streams.
func New(editor string) *Command {
	return &Command{
		Editor: editor,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Open runs the editor on path and waits for it to exit.
func (c *Command) Open(ctx context.Context, path string) error {
	argv := strings.Fields(c.resolve())
	if len(argv) == 0 {
		return errors.New("no editor configured")
	}

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// resolve returns the editor command line to use.
func (c *Command) resolve() string {
	if c.Editor != "" {
		return c.Editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	lookPath := c.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath("nano"); err == nil {
		return "nano"
	}
	// POSIX guarantees vi
	return "vi"
}
