// Command axname computes ARIA roles, accessible names and descriptions of
// HTML documents.
package main

import (
	"os"

	"github.com/conneroisu/axname/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
