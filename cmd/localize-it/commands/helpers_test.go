package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thoreinstein/localize-it/internal/editor"
	"github.com/thoreinstein/localize-it/internal/paths"
)

// recordingOpener stands in for the editor.
type recordingOpener struct {
	editor string
	paths  []string
	err    error
}

func (r *recordingOpener) Open(_ context.Context, path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

// useOpener routes editor launches to a recordingOpener.
func useOpener(t *testing.T) *recordingOpener {
	t.Helper()
	rec := &recordingOpener{}
	orig := newOpener
	newOpener = func(name string) editor.Opener {
		rec.editor = name
		return rec
	}
	t.Cleanup(func() { newOpener = orig })
	return rec
}

// isolate points config lookup at an empty directory, runs the test from
// another empty directory and returns the config directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
	t.Chdir(t.TempDir())
	return dir
}

func writeUserConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := executeStreams(t, args...)
	return stdout, err
}

// executeStreams runs the root command with args and returns stdout and
// stderr separately.
func executeStreams(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

// project creates a directory with lib/main.dart and returns its root.
func project(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	lib := filepath.Join(root, "lib")
	if err := os.MkdirAll(lib, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(lib, "main.dart"), []byte("void main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}
