package accessibility

import "strings"

// uaHiddenTags are display:none in every user-agent stylesheet.
var uaHiddenTags = map[string]struct{}{
	"head": {}, "script": {}, "style": {}, "template": {},
}

// IsHidden reports whether n is excluded from rendering, and therefore from
// the accessibility tree, by the hidden or inert attributes or by inline
// display and visibility styles on n or any ancestor.
//
// display:none cannot be undone further down the tree. visibility can: an
// element with visibility:visible is shown even inside a
// visibility:hidden ancestor.
func IsHidden(n Node) bool {
	return isHidden(n, false)
}

func isHidden(n Node, visibilityOverride bool) bool {
	if n == nil || !n.IsElement() {
		return false
	}

	if hasAttribute(n, "hidden") || hasAttribute(n, "inert") {
		return true
	}
	if _, ok := uaHiddenTags[n.TagName()]; ok {
		return true
	}

	style := parseInlineStyle(attribute(n, "style"))
	if style["display"] == "none" {
		return true
	}

	switch style["visibility"] {
	case "visible":
		visibilityOverride = true
	case "hidden", "collapse":
		if !visibilityOverride {
			return true
		}
	}

	parent := n.Parent()
	if parent == nil {
		return false
	}
	return isHidden(parent, visibilityOverride)
}

// IsAriaHidden reports whether n or an ancestor has aria-hidden="true".
func IsAriaHidden(n Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.IsElement() && strings.EqualFold(trimSpace(attribute(cur, "aria-hidden")), "true") {
			return true
		}
	}
	return false
}

// IsInert reports whether n or an ancestor has the inert attribute.
func IsInert(n Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.IsElement() && hasAttribute(cur, "inert") {
			return true
		}
	}
	return false
}

// parseInlineStyle reads a style attribute into lowercase property/value
// pairs. Later declarations win, as in CSS; !important is ignored since
// there is no cascade to compete with.
func parseInlineStyle(style string) map[string]string {
	if style == "" {
		return nil
	}

	declarations := make(map[string]string)
	for _, declaration := range strings.Split(style, ";") {
		property, value, found := strings.Cut(declaration, ":")
		if !found {
			continue
		}
		property = strings.ToLower(trimSpace(property))
		value = strings.ToLower(trimSpace(value))
		value = trimSpace(strings.TrimSuffix(value, "!important"))
		if property == "" || value == "" {
			continue
		}
		declarations[property] = value
	}
	return declarations
}
