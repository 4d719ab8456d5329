package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/axname/internal/accessibility"
	axerrors "github.com/conneroisu/axname/internal/errors"
)

var (
	queryFlags       *OutputFlags
	queryRole        string
	queryName        string
	queryDescription string
	queryXPath       string
	queryCount       bool
)

var queryCmd = &cobra.Command{
	Use:     "query FILE... --role ROLE",
	Aliases: []string{"q"},
	Short:   "Find elements by role, accessible name and description",
	Long: `Find elements the way assistive technology users do: by ARIA role and,
optionally, accessible name and description. Names match as case-insensitive
substrings unless --exact is given, which compares whitespace-normalized
strings in full.

The command fails when nothing matches, unless --count is given.

Examples:
  axname query index.html --role button --name "add to cart"
  axname query index.html --role link --name Home --exact
  axname query site/ --role img --count`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryFlags = AddOutputFlags(queryCmd)
	queryCmd.Flags().StringVarP(&queryRole, "role", "r", "", "ARIA role to match (required)")
	queryCmd.Flags().StringVarP(&queryName, "name", "n", "", "Accessible name to match")
	queryCmd.Flags().StringVarP(&queryDescription, "description", "d", "", "Accessible description to match")
	queryCmd.Flags().Bool("exact", false, "Match name and description in full")
	queryCmd.Flags().StringVarP(&queryXPath, "xpath", "x", "", "Only consider elements selected by this XPath expression")
	queryCmd.Flags().BoolVarP(&queryCount, "count", "c", false, "Print the number of matches instead of the matches")
	_ = queryCmd.MarkFlagRequired("role")

	configBindings["query"]["exact"] = "query.exact"
}

// queryMatch is one match together with the file it was found in.
type queryMatch struct {
	File                  string `json:"file" yaml:"file"`
	accessibility.AXEntry `yaml:",inline"`
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	inspector := newInspector()

	opts := accessibility.QueryOptions{
		Role:        queryRole,
		Name:        queryName,
		Description: queryDescription,
		Exact:       appConfig.Query.Exact,
		XPath:       queryXPath,
	}

	matches := []queryMatch{}
	err := forEachDocument(ctx, cmd, args, func(doc document) error {
		entries, err := inspector.Query(ctx, doc.Content, opts)
		if err != nil {
			return err
		}
		for _, e := range entries {
			matches = append(matches, queryMatch{File: doc.Name, AXEntry: e})
		}
		return nil
	})
	if err != nil {
		return err
	}

	appLogger.Debug(ctx, "Query finished", "role", opts.Role, "matches", len(matches))

	if queryCount {
		if !queryFlags.Quiet {
			fmt.Fprintln(cmd.OutOrStdout(), len(matches))
		}
		return nil
	}

	if len(matches) == 0 {
		return axerrors.NewInputError(axerrors.ErrCodeNoMatch,
			fmt.Sprintf("no element with role %q matches", opts.Role))
	}

	if queryFlags.Quiet {
		return nil
	}
	return printMatches(cmd, matches)
}

func printMatches(cmd *cobra.Command, matches []queryMatch) error {
	w := cmd.OutOrStdout()
	if handled, err := writeStructured(w, appConfig.Inspect.Format, matches); handled {
		return err
	}

	files := map[string]bool{}
	for _, m := range matches {
		files[m.File] = true
	}
	withFile := len(files) > 1

	entries := make([]accessibility.AXEntry, 0, len(matches))
	for _, m := range matches {
		e := m.AXEntry
		if withFile {
			e.Selector = m.File + ": " + e.Selector
		}
		entries = append(entries, e)
	}
	return writeEntriesTable(w, entries, false)
}
