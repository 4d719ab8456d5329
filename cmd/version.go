package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/axname/internal/version"
)

var (
	versionFormat string
	versionShort  bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for axname: version, git commit, build
time, Go version and target platform.

Examples:
  axname version              # Show detailed version info
  axname version --short      # Show version and short commit only
  axname version --format json`,
	Args: cobra.NoArgs,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json, yaml)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")

	AddFlagValidation(versionCmd.Flags(), "format", func(format string) error {
		return ValidateFormatWithSuggestion(format, []string{"text", "json", "yaml"})
	})
}

func runVersionCommand(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	info := version.GetBuildInfo()

	if handled, err := writeStructured(w, versionFormat, info); handled {
		return err
	}

	if versionShort {
		fmt.Fprintln(w, "axname "+version.GetShortVersion())
		return nil
	}
	fmt.Fprintln(w, info.String())
	return nil
}
