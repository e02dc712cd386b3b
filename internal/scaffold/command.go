package scaffold

import (
	"context"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/thoreinstein/localize-it/internal/editor"
	"github.com/thoreinstein/localize-it/internal/errors"
	"github.com/thoreinstein/localize-it/internal/logging"
	"github.com/thoreinstein/localize-it/internal/notify"
	"github.com/thoreinstein/localize-it/internal/template"
)

// SuccessMessage is shown when a run starts.
const SuccessMessage = "Successfully created Localization Configuration!"

// Command runs a scaffold against injected collaborators.
type Command struct {
	// Fs is the filesystem to resolve, create and write on.
	Fs afero.Fs

	// Opener shows the written file. Nil skips opening.
	Opener editor.Opener

	// Notifier receives the success notification. Nil discards it.
	Notifier notify.Notifier

	// Logger defaults to the logger in the run's context.
	Logger *slog.Logger
}

// Result describes a completed run.
type Result struct {
	Effect *Effect
	Opened bool
}

// Run scaffolds the configuration file for the selected path.
//
// The notification is emitted as soon as the run starts, before any
// filesystem work, and is not withdrawn when a later step fails. Opening
// starts only after the write has completed. When opening fails the file
// is already written; the returned Result reflects that next to the error.
func (c *Command) Run(ctx context.Context, selected string, tmpl *template.Template) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	notifier := c.Notifier
	if notifier == nil {
		notifier = notify.Discard{}
	}
	fsys := c.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	notifier.Success(SuccessMessage)

	effect, err := Plan(fsys, selected, tmpl)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved selection", "selected", selected, "parent", effect.Parent)

	if err := Apply(fsys, effect); err != nil {
		return nil, err
	}
	logger.Info("wrote localization config", "file", effect.File, "bytes", len(effect.Content))

	res := &Result{Effect: effect}
	if c.Opener == nil {
		return res, nil
	}

	if err := c.Opener.Open(ctx, effect.File); err != nil {
		return res, errors.Wrapf(err, "opening %s", effect.File)
	}
	res.Opened = true
	logger.Debug("opened in editor", "file", effect.File)

	return res, nil
}
