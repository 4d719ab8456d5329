package accessibility

// Resolver answers accessibility queries about nodes.
//
// Engine computes the answers from the DOM. An implementation that asks a
// live browser's accessibility tree instead can satisfy the same interface.
type Resolver interface {
	Role(n Node) string
	AccessibleName(n Node) string
	AccessibleDescription(n Node) string
	IsHidden(n Node) bool
	IsFocusable(n Node) bool
}

// Engine is the Resolver backed by the DOM computation in this package.
// It holds no state, so one Engine can serve concurrent callers.
type Engine struct{}

var _ Resolver = (*Engine)(nil)

// NewEngine creates an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

func (*Engine) Role(n Node) string {
	return Role(n)
}

func (*Engine) AccessibleName(n Node) string {
	return AccessibleName(n)
}

func (*Engine) AccessibleDescription(n Node) string {
	return AccessibleDescription(n)
}

func (*Engine) IsHidden(n Node) bool {
	return IsHidden(n)
}

func (*Engine) IsFocusable(n Node) bool {
	return IsFocusable(n)
}
