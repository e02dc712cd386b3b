package scaffold

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/localize-it/internal/errors"
	"github.com/thoreinstein/localize-it/internal/logging"
	"github.com/thoreinstein/localize-it/internal/template"
)

type mockOpener struct {
	mock.Mock
}

func (m *mockOpener) Open(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Info(msg string)    { m.Called(msg) }
func (m *mockNotifier) Success(msg string) { m.Called(msg) }

func TestCommand_Run(t *testing.T) {
	wantFile := filepath.FromSlash("/proj/assets/l10n/localization_config.dart")

	for _, selected := range []string{"/proj/assets", "/proj/assets/icon.png"} {
		t.Run(selected, func(t *testing.T) {
			fsys := newProject(t)
			opener := &mockOpener{}
			notifier := &mockNotifier{}

			notifier.On("Success", SuccessMessage).Once()
			opener.On("Open", mock.Anything, wantFile).
				Run(func(args mock.Arguments) {
					// The write must be complete before the editor opens
					data, err := afero.ReadFile(fsys, args.String(1))
					require.NoError(t, err)
					assert.True(t, strings.HasSuffix(string(data), "}\n"))
				}).
				Return(nil).Once()

			cmd := &Command{Fs: fsys, Opener: opener, Notifier: notifier, Logger: logging.ForTest(t)}
			res, err := cmd.Run(t.Context(), selected, minimalTemplate(t))
			require.NoError(t, err)

			assert.True(t, res.Opened)
			assert.Equal(t, wantFile, res.Effect.File)
			opener.AssertExpectations(t)
			notifier.AssertExpectations(t)
		})
	}
}

func TestCommand_Run_LiteralContent(t *testing.T) {
	fsys := newProject(t)
	cmd := &Command{Fs: fsys, Logger: logging.ForTest(t)}

	v, err := template.Lookup(template.Extended)
	require.NoError(t, err)
	tmpl, err := v.Build(v.Defaults)
	require.NoError(t, err)

	_, err = cmd.Run(t.Context(), "/proj/assets", tmpl)
	require.NoError(t, err)

	data, err := afero.ReadFile(fsys, "/proj/assets/l10n/localization_config.dart")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "import "))
	assert.Equal(t, "}", lines[len(lines)-1])
	assert.Contains(t, lines, "  static const String baseLanguageCode = 'de';")
	assert.Contains(t, lines, "    'en',")
	assert.Contains(t, lines, "    'es',")
}

func TestCommand_Run_MissingSelection(t *testing.T) {
	fsys := newProject(t)
	opener := &mockOpener{}
	notifier := &mockNotifier{}
	notifier.On("Success", SuccessMessage).Once()

	cmd := &Command{Fs: fsys, Opener: opener, Notifier: notifier, Logger: logging.ForTest(t)}
	res, err := cmd.Run(t.Context(), "/proj/nope", minimalTemplate(t))

	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, errors.ErrResolveInput))

	// Notification is eager and not gated on success
	notifier.AssertExpectations(t)
	opener.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)

	exists, statErr := afero.DirExists(fsys, "/proj/nope/l10n")
	require.NoError(t, statErr)
	assert.False(t, exists)
	exists, statErr = afero.DirExists(fsys, "/proj/l10n")
	require.NoError(t, statErr)
	assert.False(t, exists)
}

func TestCommand_Run_NoOpener(t *testing.T) {
	fsys := newProject(t)
	cmd := &Command{Fs: fsys}

	ctx := logging.NewContext(t.Context(), logging.ForTest(t))
	res, err := cmd.Run(ctx, "/proj/assets", minimalTemplate(t))
	require.NoError(t, err)
	assert.False(t, res.Opened)

	ok, err := afero.Exists(fsys, res.Effect.File)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCommand_Run_OpenFailure(t *testing.T) {
	fsys := newProject(t)
	opener := &mockOpener{}
	opener.On("Open", mock.Anything, mock.Anything).Return(errors.New("editor crashed"))

	cmd := &Command{Fs: fsys, Opener: opener, Logger: logging.ForTest(t)}
	res, err := cmd.Run(t.Context(), "/proj/assets", minimalTemplate(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor crashed")
	require.NotNil(t, res, "file was written before the open failed")
	assert.False(t, res.Opened)

	ok, statErr := afero.Exists(fsys, res.Effect.File)
	require.NoError(t, statErr)
	assert.True(t, ok)
}

func TestCommand_Run_Twice(t *testing.T) {
	fsys := newProject(t)
	cmd := &Command{Fs: fsys, Logger: logging.ForTest(t)}
	tmpl := minimalTemplate(t)

	_, err := cmd.Run(t.Context(), "/proj/assets", tmpl)
	require.NoError(t, err)
	res, err := cmd.Run(t.Context(), "/proj/assets/icon.png", tmpl)
	require.NoError(t, err)

	data, err := afero.ReadFile(fsys, res.Effect.File)
	require.NoError(t, err)
	assert.Equal(t, string(template.Render(tmpl)), string(data))
}
