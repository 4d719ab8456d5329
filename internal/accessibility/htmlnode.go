package accessibility

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// HTMLDocument adapts a golang.org/x/net/html tree to the Node interface.
//
// Every *html.Node gets exactly one *HTMLNode, created up front, so handles
// can be compared with == and the document is safe for concurrent reads.
type HTMLDocument struct {
	root     *html.Node
	nodes    map[*html.Node]*HTMLNode
	ids      map[string]*HTMLNode
	elements []*HTMLNode
}

// HTMLNode is an element or text node of an HTMLDocument.
type HTMLNode struct {
	node     *html.Node
	doc      *HTMLDocument
	parent   *HTMLNode
	children []Node
}

// ParseHTML parses a complete HTML document.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return NewHTMLDocument(root), nil
}

// ParseHTMLString parses a complete HTML document from a string.
func ParseHTMLString(content string) (*HTMLDocument, error) {
	return ParseHTML(strings.NewReader(content))
}

// NewHTMLDocument wraps an already parsed tree. The tree must not be
// modified afterwards.
func NewHTMLDocument(root *html.Node) *HTMLDocument {
	doc := &HTMLDocument{
		root:  root,
		nodes: make(map[*html.Node]*HTMLNode),
		ids:   make(map[string]*HTMLNode),
	}

	if root.Type == html.ElementNode {
		doc.build(root, nil)
	} else {
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				doc.build(c, nil)
			}
		}
	}

	return doc
}

func (doc *HTMLDocument) build(n *html.Node, parent *HTMLNode) *HTMLNode {
	wrapped := &HTMLNode{node: n, doc: doc, parent: parent}
	doc.nodes[n] = wrapped

	if n.Type != html.ElementNode {
		return wrapped
	}

	doc.elements = append(doc.elements, wrapped)
	if id, ok := wrapped.Attribute("id"); ok && id != "" {
		if _, seen := doc.ids[id]; !seen {
			doc.ids[id] = wrapped
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode, html.TextNode:
			wrapped.children = append(wrapped.children, doc.build(c, wrapped))
		}
	}

	return wrapped
}

// Root returns the top element of the document, usually <html>.
func (doc *HTMLDocument) Root() *HTMLNode {
	if len(doc.elements) == 0 {
		return nil
	}
	return doc.elements[0]
}

// Elements returns every element in document order.
func (doc *HTMLDocument) Elements() []*HTMLNode {
	return doc.elements
}

// Lookup returns the handle for a node of the underlying tree.
func (doc *HTMLDocument) Lookup(n *html.Node) *HTMLNode {
	return doc.nodes[n]
}

// ByID returns the first element with the given id, or nil.
func (doc *HTMLDocument) ByID(id string) *HTMLNode {
	return doc.ids[id]
}

// QueryXPath returns the elements matching an XPath expression.
func (doc *HTMLDocument) QueryXPath(expr string) ([]*HTMLNode, error) {
	matches, err := htmlquery.QueryAll(doc.root, expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", expr, err)
	}

	result := make([]*HTMLNode, 0, len(matches))
	for _, m := range matches {
		if wrapped := doc.nodes[m]; wrapped != nil && wrapped.IsElement() {
			result = append(result, wrapped)
		}
	}
	return result, nil
}

func (n *HTMLNode) IsElement() bool {
	return n.node.Type == html.ElementNode
}

func (n *HTMLNode) TagName() string {
	if !n.IsElement() {
		return ""
	}
	return strings.ToLower(n.node.Data)
}

func (n *HTMLNode) Attribute(name string) (string, bool) {
	for _, attr := range n.node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

func (n *HTMLNode) Children() []Node {
	return n.children
}

func (n *HTMLNode) Text() string {
	if n.node.Type == html.TextNode {
		return n.node.Data
	}

	var text strings.Builder
	var traverse func(*html.Node)
	traverse = func(c *html.Node) {
		if c.Type == html.TextNode {
			text.WriteString(c.Data)
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			traverse(gc)
		}
	}
	traverse(n.node)
	return text.String()
}

func (n *HTMLNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *HTMLNode) ElementByID(id string) Node {
	if found := n.doc.ids[id]; found != nil {
		return found
	}
	return nil
}

// HTML returns the underlying x/net/html node.
func (n *HTMLNode) HTML() *html.Node {
	return n.node
}

// OuterHTML renders the node and its subtree.
func (n *HTMLNode) OuterHTML() string {
	var result strings.Builder
	if err := html.Render(&result, n.node); err != nil {
		return ""
	}
	return result.String()
}

// Selector returns a short CSS selector identifying the element for reports.
// It is not guaranteed to be unique.
func (n *HTMLNode) Selector() string {
	tagName := n.TagName()

	if id, hasID := n.Attribute("id"); hasID && id != "" {
		return fmt.Sprintf("%s#%s", tagName, id)
	}

	if class, hasClass := n.Attribute("class"); hasClass {
		classes := strings.Fields(class)
		if len(classes) > 0 {
			return fmt.Sprintf("%s.%s", tagName, strings.Join(classes, "."))
		}
	}

	return tagName
}
