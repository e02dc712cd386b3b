package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/thoreinstein/localize-it/internal/errors"
	"github.com/thoreinstein/localize-it/internal/paths"
	"github.com/thoreinstein/localize-it/internal/template"
	"github.com/thoreinstein/localize-it/pkg/fileutil"
)

// Effect is everything a run will do to the filesystem.
type Effect struct {
	// Parent is the resolved directory the selection maps to.
	Parent string

	// Dir is the l10n directory to create.
	Dir string

	// File is the configuration file to write.
	File string

	// Content replaces whatever File held before.
	Content []byte
}

// String describes the effect for dry runs.
func (e *Effect) String() string {
	return fmt.Sprintf("create %s\nwrite  %s (%d bytes)", e.Dir, e.File, len(e.Content))
}

// ResolveParent returns the directory that receives the l10n subdirectory.
// A directory resolves to itself; anything else resolves to its parent.
// Symlinks are not followed, so a link to a directory counts as a file.
// The selection itself must exist.
func ResolveParent(fsys afero.Fs, selected string) (string, error) {
	if selected == "" {
		return "", errors.Mark(errors.New("no path selected"), errors.ErrResolveInput)
	}

	info, err := lstat(fsys, selected)
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "resolving selection"), errors.ErrResolveInput)
	}

	if info.IsDir() {
		return filepath.Clean(selected), nil
	}
	return filepath.Dir(selected), nil
}

// lstat uses Lstat where the filesystem supports it and Stat otherwise.
func lstat(fsys afero.Fs, name string) (os.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return fsys.Stat(name)
}

// Plan resolves the selection and renders tmpl into an Effect.
// It only stats the selection; nothing is created or written.
func Plan(fsys afero.Fs, selected string, tmpl *template.Template) (*Effect, error) {
	if tmpl == nil {
		return nil, errors.Mark(errors.New("no template"), errors.ErrInvalidParams)
	}

	parent, err := ResolveParent(fsys, selected)
	if err != nil {
		return nil, err
	}

	return &Effect{
		Parent:  parent,
		Dir:     paths.TargetDir(parent),
		File:    paths.OutputFile(parent),
		Content: template.Render(tmpl),
	}, nil
}

// Apply creates e.Dir when missing and writes e.Content to e.File,
// replacing any previous content.
//
// A failed run may leave the created directory behind; it is not cleaned up.
func Apply(fsys afero.Fs, e *Effect) error {
	if err := fsys.MkdirAll(e.Dir, paths.DefaultDirPerm); err != nil {
		return errors.Mark(errors.Wrapf(err, "creating %s", e.Dir), errors.ErrCreateDir)
	}

	// Some filesystems report success when a file already occupies the path
	info, err := fsys.Stat(e.Dir)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "creating %s", e.Dir), errors.ErrCreateDir)
	}
	if !info.IsDir() {
		return errors.Mark(errors.Newf("creating %s: path exists and is not a directory", e.Dir), errors.ErrCreateDir)
	}

	if err := fileutil.AtomicWriteFile(fsys, e.File, e.Content, paths.DefaultFilePerm); err != nil {
		return errors.Mark(errors.Wrapf(err, "writing %s", e.File), errors.ErrWriteFile)
	}

	return nil
}
