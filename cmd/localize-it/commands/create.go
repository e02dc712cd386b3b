package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/localize-it/internal/config"
	"github.com/thoreinstein/localize-it/internal/editor"
	"github.com/thoreinstein/localize-it/internal/errors"
	"github.com/thoreinstein/localize-it/internal/logging"
	"github.com/thoreinstein/localize-it/internal/notify"
	"github.com/thoreinstein/localize-it/internal/scaffold"
	"github.com/thoreinstein/localize-it/internal/template"
)

var (
	createVariant      string
	createPick         bool
	createBase         string
	createLanguages    []string
	createAPIKey       string
	createToggles      []string
	createTemplateFile string
	createNoOpen       bool
	createDryRun       bool
	createStdout       bool
)

// newFs returns the filesystem create works on. Replaced in tests.
var newFs = afero.NewOsFs

// newOpener returns the editor used to show the written file. Replaced in tests.
var newOpener = func(name string) editor.Opener {
	return editor.New(name)
}

// pickVariant lets the user choose a variant. Replaced in tests.
var pickVariant = func(variants []*template.Variant, preview func(i int) string) (int, error) {
	return fuzzyfinder.Find(
		variants,
		func(i int) string {
			return fmt.Sprintf("%s: %s", variants[i].Name, variants[i].Description)
		},
		fuzzyfinder.WithPromptString("variant> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(i)
		}),
	)
}

func init() {
	f := createCmd.Flags()
	f.StringVar(&createVariant, "variant", "",
		"built-in variant: minimal, standard, extended (default from config, else minimal)")
	f.BoolVar(&createPick, "pick", false, "choose the variant interactively")
	f.StringVar(&createBase, "base", "", "base language code, e.g. de")
	f.StringSliceVar(&createLanguages, "languages", nil, "supported language codes, e.g. de,en")
	f.StringVar(&createAPIKey, "api-key", "", "translation service API key")
	f.StringArrayVar(&createToggles, "toggle", nil, "boolean flag as name=true|false (repeatable)")
	f.StringVar(&createTemplateFile, "template-file", "", "YAML or TOML template definition")
	f.BoolVar(&createNoOpen, "no-open", false, "do not open the file in an editor")
	f.BoolVar(&createDryRun, "dry-run", false, "show what would be written without touching the filesystem")
	f.BoolVar(&createStdout, "stdout", false, "print the content to stdout instead of writing it")

	createCmd.MarkFlagsMutuallyExclusive("variant", "pick")
	createCmd.MarkFlagsMutuallyExclusive("dry-run", "stdout")
	for _, name := range []string{"variant", "pick", "base", "languages", "api-key", "toggle"} {
		createCmd.MarkFlagsMutuallyExclusive("template-file", name)
	}

	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [path]",
	Short: "Create l10n/localization_config.dart next to a path",
	Long: `Create the l10n directory next to the given path and write
localization_config.dart into it, replacing any previous content.

A directory path receives l10n directly; a file path uses the file's
directory. The file is then opened in the configured editor, $EDITOR,
$VISUAL, nano or vi.

Flags override config values, which override the variant's defaults.`,
	Example: `  # Scaffold next to a file
  localize-it create lib/main.dart

  # Extended variant with French added
  localize-it create lib --variant extended --languages de,en,fr

  # Preview without writing
  localize-it create lib --dry-run

  See Also: localize-it variants list, localize-it config`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	cfg := currentConfig()
	fsys := newFs()
	out := cmd.OutOrStdout()

	if len(args) == 0 && !createStdout {
		return errors.NewUserError(errors.New("no path given"),
			"Pass the file or directory to scaffold next to, e.g. localize-it create lib")
	}

	tmpl, err := resolveTemplate(cmd, fsys, cfg, logger)
	if err != nil {
		return err
	}
	if tmpl == nil {
		// Picker aborted
		return nil
	}

	if createStdout {
		_, err := out.Write(template.Render(tmpl))
		return errors.Wrap(err, "writing to stdout")
	}

	if createDryRun {
		effect, err := scaffold.Plan(fsys, args[0], tmpl)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, effect)
		fmt.Fprintln(out)
		if _, err := out.Write(effect.Content); err != nil {
			return errors.Wrap(err, "writing to stdout")
		}
		if !quiet {
			notify.NewTerminal(cmd.ErrOrStderr()).Info("Dry run: nothing was written")
		}
		return nil
	}

	// The notification is part of every run; -q only moves it to stderr
	notifier := notify.NewTerminal(out)
	if quiet {
		notifier = notify.NewTerminal(cmd.ErrOrStderr())
	}

	sc := &scaffold.Command{
		Fs:       fsys,
		Notifier: notifier,
		Logger:   logger,
	}
	if cfg.Open && !createNoOpen {
		sc.Opener = newOpener(cfg.Editor)
	}

	_, err = sc.Run(ctx, args[0], tmpl)
	return err
}

// resolveTemplate builds the template from flags, config and variant
// defaults. It returns nil without error when the picker is aborted.
func resolveTemplate(cmd *cobra.Command, fsys afero.Fs, cfg *config.Config, logger *slog.Logger) (*template.Template, error) {
	flags := cmd.Flags()

	templateFile := createTemplateFile
	if templateFile == "" && !flags.Changed("variant") && !createPick {
		templateFile = cfg.TemplateFile
	}
	if templateFile != "" {
		logger.Debug("using template definition", "path", templateFile)
		return template.LoadDefinition(fsys, templateFile)
	}

	name := template.DefaultVariant
	if cfg.Variant != "" {
		name = cfg.Variant
	}
	if flags.Changed("variant") {
		name = createVariant
	}

	if createPick {
		v, err := pick(cmd.ErrOrStderr(), cfg, flags.Changed)
		if err != nil || v == nil {
			return nil, err
		}
		name = v.Name
	}

	v, err := template.Lookup(name)
	if err != nil {
		return nil, err
	}

	p, err := paramsFor(v, cfg, flags.Changed)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved parameters",
		"variant", v.Name,
		"base_language", p.BaseLanguage,
		"languages", p.Languages,
		"api_key", p.APIKey,
		"toggles", len(p.Toggles))

	return v.Build(p)
}

// paramsFor layers config and changed flags over a variant's defaults.
func paramsFor(v *template.Variant, cfg *config.Config, changed func(string) bool) (template.Params, error) {
	p, err := cfg.Params(v.Defaults)
	if err != nil {
		return template.Params{}, err
	}

	if changed("base") {
		p.BaseLanguage = createBase
	}
	if changed("languages") {
		p.Languages = createLanguages
	}
	if changed("api-key") {
		p.APIKey = createAPIKey
	}
	for _, raw := range createToggles {
		name, value, err := template.ParseToggle(raw)
		if err != nil {
			return template.Params{}, err
		}
		p.SetToggle(name, value)
	}

	return p, nil
}

// pick shows the variant picker with each variant's rendered content as
// preview. It returns nil when the user aborts.
func pick(w io.Writer, cfg *config.Config, changed func(string) bool) (*template.Variant, error) {
	variants := template.Variants()
	previews := make([]string, len(variants))
	for i, v := range variants {
		p, err := paramsFor(v, cfg, changed)
		if err == nil {
			var tmpl *template.Template
			if tmpl, err = v.Build(p); err == nil {
				previews[i] = string(template.Render(tmpl))
			}
		}
		if err != nil {
			previews[i] = "error: " + err.Error()
		}
	}

	idx, err := pickVariant(variants, func(i int) string { return previews[i] })
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			fmt.Fprintln(w, "Aborted.")
			return nil, nil
		}
		return nil, errors.Wrap(err, "selecting variant")
	}
	return variants[idx], nil
}
