package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/localize-it/internal/template"
)

// Build-time variables set via ldflags.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, build date and built-in variants of localize-it.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "localize-it version %s\n", Version)
		fmt.Fprintf(out, "  commit:    %s\n", Commit)
		fmt.Fprintf(out, "  built:     %s\n", Date)
		fmt.Fprintf(out, "  go:        %s\n", runtime.Version())
		fmt.Fprintf(out, "  variants:  %v\n", template.Names())
	},
}
