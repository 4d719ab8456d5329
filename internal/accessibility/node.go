// Package accessibility computes accessibility semantics for HTML trees:
// the ARIA role, accessible name and accessible description of an element,
// and whether it is hidden from or focusable by assistive technology.
//
// The computation follows AccName 1.2, HTML-AAM and WAI-ARIA. It is pure:
// it never mutates the tree, performs no I/O and keeps no state between
// calls, so separate calls may run concurrently over the same document.
//
// Trees are consumed through the Node interface. HTMLDocument adapts a tree
// parsed by golang.org/x/net/html.
package accessibility

// Node is the minimal DOM surface the resolvers need.
//
// Implementations must give every node a stable identity: two handles to the
// same DOM node must compare equal with ==, and handles to distinct nodes must
// not. Pointer receivers satisfy this naturally.
type Node interface {
	// IsElement reports whether the node is an element (as opposed to text).
	IsElement() bool

	// TagName returns the lowercase tag name of an element.
	TagName() string

	// Attribute returns the value of the named attribute.
	Attribute(name string) (string, bool)

	// Children returns element and text children in document order.
	Children() []Node

	// Text returns the data of a text node, or the text content of an element.
	Text() string

	// Parent returns the parent element, or nil at the top of the tree.
	Parent() Node

	// ElementByID looks up an element anywhere in the owning document.
	ElementByID(id string) Node
}

// Ancestors returns the ancestors of n, nearest first.
func Ancestors(n Node) []Node {
	var result []Node
	for p := n.Parent(); p != nil; p = p.Parent() {
		result = append(result, p)
	}
	return result
}

func hasAttribute(n Node, name string) bool {
	_, ok := n.Attribute(name)
	return ok
}

func attribute(n Node, name string) string {
	v, _ := n.Attribute(name)
	return v
}

func isTag(n Node, tags ...string) bool {
	if n == nil || !n.IsElement() {
		return false
	}
	tag := n.TagName()
	for _, t := range tags {
		if tag == t {
			return true
		}
	}
	return false
}

func elementChildren(n Node) []Node {
	var result []Node
	for _, c := range n.Children() {
		if c.IsElement() {
			result = append(result, c)
		}
	}
	return result
}

// walk visits n and its element descendants in document order until fn
// returns false.
func walk(n Node, fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children() {
		if c.IsElement() && !walk(c, fn) {
			return false
		}
	}
	return true
}

func topElement(n Node) Node {
	top := n
	for p := n.Parent(); p != nil; p = p.Parent() {
		top = p
	}
	return top
}
