package accessibility

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustParse builds a document from markup. Fragments are fine: the parser
// adds the html, head and body elements.
func mustParse(t *testing.T, markup string) *HTMLDocument {
	t.Helper()

	doc, err := ParseHTMLString(markup)
	require.NoError(t, err)
	return doc
}

// mustFind returns the element with the given id.
func mustFind(t *testing.T, doc *HTMLDocument, id string) *HTMLNode {
	t.Helper()

	n := doc.ByID(id)
	require.NotNil(t, n, "no element with id %q", id)
	return n
}

// parseAndFind parses markup and returns the element with id "target".
func parseAndFind(t *testing.T, markup string) *HTMLNode {
	t.Helper()
	return mustFind(t, mustParse(t, markup), "target")
}
