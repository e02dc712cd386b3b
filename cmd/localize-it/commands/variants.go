package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/localize-it/internal/errors"
	"github.com/thoreinstein/localize-it/internal/logging"
	"github.com/thoreinstein/localize-it/internal/paths"
	"github.com/thoreinstein/localize-it/internal/template"
	"github.com/thoreinstein/localize-it/pkg/fileutil"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	variantsExportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(template.FormatYAML),
		"definition format: yaml, toml")
	variantsExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"write to file instead of stdout")

	variantsCmd.AddCommand(variantsListCmd)
	variantsCmd.AddCommand(variantsShowCmd)
	variantsCmd.AddCommand(variantsExportCmd)
	rootCmd.AddCommand(variantsCmd)
}

var variantsCmd = &cobra.Command{
	Use:     "variants",
	Aliases: []string{"variant"},
	Short:   "Inspect the built-in template variants",
	Long: `Inspect the built-in template variants.

Without a subcommand, lists all variants.`,
	RunE: runVariantsList,
}

var variantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in variants",
	Example: `  localize-it variants list

See Also: localize-it variants show`,
	Args: cobra.NoArgs,
	RunE: runVariantsList,
}

var variantsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a variant's content with configured parameters",
	Long: `Print the content a variant renders with the parameters from config,
falling back to the variant's defaults.`,
	Example: `  localize-it variants show extended

See Also: localize-it create --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runVariantsShow,
}

var variantsExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Export a variant as a template definition file",
	Long: `Export a variant as a YAML or TOML template definition.

The exported file can be edited and passed back with
'localize-it create --template-file'. Rendering it unchanged produces the
same content as the variant.`,
	Example: `  # YAML to stdout
  localize-it variants export standard

  # TOML to a file
  localize-it variants export extended --format toml -o l10n.toml

See Also: localize-it create --template-file`,
	Args: cobra.ExactArgs(1),
	RunE: runVariantsExport,
}

func runVariantsList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	current := currentConfig().Variant
	if current == "" {
		current = template.DefaultVariant
	}

	bold := color.New(color.Bold)
	if !logging.SupportsColor(out) {
		bold.DisableColor()
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, v := range template.Variants() {
		marker := " "
		if v.Name == current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\t%s\n", marker, bold.Sprint(v.Name), v.Description)
	}
	return errors.Wrap(w.Flush(), "writing variant list")
}

func runVariantsShow(cmd *cobra.Command, args []string) error {
	tmpl, err := buildConfigured(args[0])
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(template.Render(tmpl))
	return errors.Wrap(err, "writing to stdout")
}

func runVariantsExport(cmd *cobra.Command, args []string) error {
	format := template.Format(exportFormat)
	if format != template.FormatYAML && format != template.FormatTOML {
		return errors.NewUserError(errors.Newf("unknown format %q", exportFormat),
			"Use --format yaml or --format toml")
	}

	tmpl, err := buildConfigured(args[0])
	if err != nil {
		return err
	}

	data, err := template.MarshalDefinition(tmpl, format)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return errors.Wrap(err, "writing to stdout")
	}

	if err := fileutil.AtomicWriteFile(newFs(), exportOutput, data, paths.DefaultFilePerm); err != nil {
		return errors.Wrapf(err, "writing %s", exportOutput)
	}
	logging.FromContext(cmd.Context()).Info("exported variant", "variant", args[0], "path", exportOutput)
	return nil
}

// buildConfigured builds a variant with config parameters applied.
func buildConfigured(name string) (*template.Template, error) {
	v, err := template.Lookup(name)
	if err != nil {
		return nil, err
	}
	p, err := currentConfig().Params(v.Defaults)
	if err != nil {
		return nil, err
	}
	return v.Build(p)
}
