package accessibility

import (
	"regexp"
	"strings"
)

var tabindexPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)

// IsFocusable reports whether n can receive keyboard focus.
func IsFocusable(n Node) bool {
	if n == nil || !n.IsElement() || IsHidden(n) {
		return false
	}

	if tabindex, ok := n.Attribute("tabindex"); ok && tabindexPattern.MatchString(trimSpace(tabindex)) {
		return true
	}

	switch n.TagName() {
	case "button", "select", "textarea":
		if !hasAttribute(n, "disabled") {
			return true
		}
	case "input":
		if !hasAttribute(n, "disabled") && inputType(n) != "hidden" {
			return true
		}
	case "a", "area":
		if hasAttribute(n, "href") {
			return true
		}
	case "object", "iframe":
		return true
	case "video", "audio":
		if hasAttribute(n, "controls") {
			return true
		}
	case "summary":
		if isTag(n.Parent(), "details") {
			return true
		}
	}

	if editable, ok := n.Attribute("contenteditable"); ok {
		switch strings.ToLower(trimSpace(editable)) {
		case "", "true", "plaintext-only":
			return true
		}
	}

	return false
}

// inputType returns the effective type of an <input>: lowercase, and "text"
// for missing or unknown values.
func inputType(n Node) string {
	t := strings.ToLower(trimSpace(attribute(n, "type")))
	if _, ok := knownInputTypes[t]; !ok {
		return "text"
	}
	return t
}
