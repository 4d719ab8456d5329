package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/axname/internal/accessibility"
)

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(v)
}

// writeStructured handles the json and yaml formats and reports whether
// format was one of them.
func writeStructured(w io.Writer, format string, v interface{}) (bool, error) {
	switch strings.ToLower(format) {
	case "json":
		return true, writeJSON(w, v)
	case "yaml":
		return true, writeYAML(w, v)
	default:
		return false, nil
	}
}

// cell keeps table columns on one line.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.NewReplacer("\t", " ", "\n", " ").Replace(s)
}

func writeEntriesTable(w io.Writer, entries []accessibility.AXEntry, withState bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "ROLE\tNAME\tDESCRIPTION\tSELECTOR"
	if withState {
		header += "\tHIDDEN\tFOCUSABLE"
	}
	fmt.Fprintln(tw, header)

	for _, e := range entries {
		role := e.Role
		if e.Level > 0 {
			role = fmt.Sprintf("%s (%d)", role, e.Level)
		}
		row := fmt.Sprintf("%s\t%s\t%s\t%s", cell(role), cell(e.Name), cell(e.Description), e.Selector)
		if withState {
			row += fmt.Sprintf("\t%t\t%t", e.Hidden, e.Focusable)
		}
		fmt.Fprintln(tw, row)
	}

	return tw.Flush()
}
