package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/axname/internal/accessibility"
	"github.com/conneroisu/axname/internal/logging"
)

var (
	inspectFlags  *OutputFlags
	inspectRoles  []string
	inspectXPath  string
	inspectHidden bool
	inspectAll    bool
)

var inspectCmd = &cobra.Command{
	Use:     "inspect FILE...",
	Aliases: []string{"i"},
	Short:   "Print the role, name and description of every element",
	Long: `Print the accessibility information of the elements in HTML documents:
role, accessible name, accessible description, and whether the element is
hidden or focusable.

Elements without a role are left out unless --all is given. Directories are
searched for files with the configured watch extensions.

Examples:
  axname inspect index.html
  axname inspect site/ --role link --role button
  axname inspect index.html --xpath '//main//*' -o json
  curl -s https://example.com | axname inspect -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectFlags = AddOutputFlags(inspectCmd)
	inspectCmd.Flags().StringSliceVarP(&inspectRoles, "role", "r", nil, "Only show elements with these roles")
	inspectCmd.Flags().StringVarP(&inspectXPath, "xpath", "x", "", "Only inspect elements selected by this XPath expression")
	inspectCmd.Flags().BoolVar(&inspectHidden, "include-hidden", false, "Include elements hidden from assistive technology")
	inspectCmd.Flags().BoolVarP(&inspectAll, "all", "a", false, "Include elements without a role")

	configBindings["inspect"]["role"] = "inspect.roles"
	configBindings["inspect"]["include-hidden"] = "inspect.include_hidden"
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	inspector := newInspector()

	opts := inspectOptionsFromConfig()
	opts.XPath = inspectXPath

	var snapshots []*accessibility.Snapshot
	err := forEachDocument(ctx, cmd, args, func(doc document) error {
		perf := logging.StartOperation(appLogger, "inspect")
		snapshot, err := inspector.Inspect(ctx, doc.Content, opts)
		if err != nil {
			perf.EndWithError(ctx, err)
			return err
		}
		perf.End(ctx, "file", doc.Name, "entries", len(snapshot.Entries))

		snapshot.Target = doc.Name
		if !inspectAll && !opts.IncludeHidden {
			snapshot.Entries = withRole(snapshot.Entries)
		}
		snapshots = append(snapshots, snapshot)
		return nil
	})

	if printErr := printSnapshots(cmd, snapshots); printErr != nil {
		return printErr
	}
	return err
}

func inspectOptionsFromConfig() accessibility.InspectOptions {
	return accessibility.InspectOptions{
		IncludeHidden: appConfig.Inspect.IncludeHidden,
		Roles:         appConfig.Inspect.Roles,
	}
}

func withRole(entries []accessibility.AXEntry) []accessibility.AXEntry {
	kept := entries[:0]
	for _, e := range entries {
		if e.Role != "" {
			kept = append(kept, e)
		}
	}
	return kept
}

func printSnapshots(cmd *cobra.Command, snapshots []*accessibility.Snapshot) error {
	if inspectFlags.Quiet {
		return nil
	}
	w := cmd.OutOrStdout()

	if handled, err := writeStructured(w, appConfig.Inspect.Format, snapshots); handled {
		return err
	}

	for i, snapshot := range snapshots {
		if len(snapshots) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", snapshot.Target)
		}
		if err := writeEntriesTable(w, snapshot.Entries, appConfig.Inspect.IncludeHidden); err != nil {
			return err
		}
	}
	return nil
}
