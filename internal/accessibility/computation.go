package accessibility

// computation is the state of one top-level query. Role, name and
// description resolution call each other recursively and share its visited
// set, so reference cycles through aria-labelledby, aria-describedby,
// aria-controls or label/for terminate. A computation must not be reused
// across top-level queries or shared between goroutines.
type computation struct {
	visited map[Node]struct{}
}

func newComputation() *computation {
	return &computation{visited: make(map[Node]struct{})}
}

// visit marks n as visited and reports whether it was new.
func (c *computation) visit(n Node) bool {
	if _, ok := c.visited[n]; ok {
		return false
	}
	c.visited[n] = struct{}{}
	return true
}

func (c *computation) seen(n Node) bool {
	_, ok := c.visited[n]
	return ok
}

// nameOptions carries the per-call flags of a name or description
// computation. It is passed by value; only the visited set is shared.
type nameOptions struct {
	// role is used instead of computing the role of the node when roleKnown
	// is set. The role resolver passes its candidate here so that a role
	// that depends on the name never recomputes itself.
	role      string
	roleKnown bool

	// withinLabel is set once the computation has followed a label or an
	// aria-labelledby/aria-describedby reference; such references are not
	// followed a second time.
	withinLabel bool

	// recurse is set while pulling in the content of another node.
	recurse bool

	// includeHidden is set when a hidden node was reached through an
	// explicit reference, which makes its hidden content count.
	includeHidden bool
}

// nameSource records which step of the name computation produced a name.
type nameSource int

const (
	sourceNone nameSource = iota
	sourceLabelledBy
	sourceEmbeddedControl
	sourceAriaLabel
	sourceHostLanguage
	sourceContent
	sourceTooltip
)

// String returns the string representation of the name source
func (s nameSource) String() string {
	switch s {
	case sourceLabelledBy:
		return "aria-labelledby"
	case sourceEmbeddedControl:
		return "embedded-control"
	case sourceAriaLabel:
		return "aria-label"
	case sourceHostLanguage:
		return "host-language"
	case sourceContent:
		return "content"
	case sourceTooltip:
		return "tooltip"
	default:
		return "none"
	}
}
