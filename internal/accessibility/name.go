package accessibility

import (
	"strconv"
	"strings"
)

// placeholderInputTypes may fall back to their placeholder for a name.
var placeholderInputTypes = map[string]struct{}{
	"text": {}, "email": {}, "tel": {}, "url": {}, "search": {},
	"password": {}, "number": {},
}

// AccessibleName returns the accessible name of n, or "" when it has none.
func AccessibleName(n Node) string {
	name, _ := newComputation().nameWithSource(n, nameOptions{})
	return Normalize(name)
}

// name returns the raw text alternative of n. Callers normalize; content
// recursion relies on the surrounding whitespace being kept.
func (c *computation) name(n Node, o nameOptions) string {
	name, _ := c.nameWithSource(n, o)
	return name
}

// nameWithSource walks the AccName precedence chain and reports which step
// produced the name.
func (c *computation) nameWithSource(n Node, o nameOptions) (string, nameSource) {
	if n == nil {
		return "", sourceNone
	}
	if !n.IsElement() {
		return n.Text(), sourceContent
	}

	if IsInert(n) {
		return "", sourceNone
	}
	if !o.includeHidden && (IsHidden(n) || IsAriaHidden(n)) {
		return "", sourceNone
	}

	role := o.role
	if !o.roleKnown {
		if o.includeHidden {
			role = c.exposedRole(n, IsFocusable(n))
		} else {
			role = c.role(n)
		}
	}

	if !o.recurse && nameProhibited.has(role) {
		return "", sourceNone
	}

	if !o.withinLabel {
		if v := c.nameFromLabelledBy(n, o); !isBlank(v) {
			return v, sourceLabelledBy
		}
	}

	if o.recurse {
		if v, ok := c.nameFromEmbeddedControl(n, role); ok {
			return v, sourceEmbeddedControl
		}
	}

	if v := attribute(n, "aria-label"); !isBlank(v) {
		return v, sourceAriaLabel
	}

	if v := c.nameFromHostLanguage(n, o); !isBlank(v) {
		return v, sourceHostLanguage
	}

	if o.recurse || nameFromContent.has(role) {
		if v := c.nameFromContent(n, o); !isBlank(v) {
			return v, sourceContent
		}
	}

	if v := attribute(n, "title"); !isBlank(v) {
		if o.recurse {
			return " " + v + " ", sourceTooltip
		}
		return v, sourceTooltip
	}

	return "", sourceNone
}

// nameFromLabelledBy joins the names of the elements referenced by
// aria-labelledby. Referenced elements count even when hidden.
func (c *computation) nameFromLabelledBy(n Node, o nameOptions) string {
	var parts []string
	for _, id := range tokens(attribute(n, "aria-labelledby")) {
		target := n.ElementByID(id)
		if target == nil || !c.visit(target) {
			continue
		}

		part := Normalize(c.name(target, nameOptions{
			withinLabel:   true,
			recurse:       true,
			includeHidden: o.includeHidden || IsHidden(target) || IsAriaHidden(target),
		}))
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// nameFromEmbeddedControl returns the value of a form control whose name is
// being pulled into the name of another element.
func (c *computation) nameFromEmbeddedControl(n Node, role string) (string, bool) {
	switch role {
	case "textbox", "searchbox":
		if isTag(n, "input") {
			return attribute(n, "value"), true
		}
		return n.Text(), true

	case "combobox":
		if isTag(n, "input") {
			return attribute(n, "value"), true
		}
		if isTag(n, "select") {
			return c.selectedOptionNames(n), true
		}
		for _, attr := range []string{"aria-controls", "aria-owns"} {
			for _, id := range tokens(attribute(n, attr)) {
				target := n.ElementByID(id)
				if target == nil || !c.visit(target) {
					continue
				}
				if c.role(target) == "listbox" {
					return c.selectedOptionNames(target), true
				}
			}
		}

	case "listbox":
		return c.selectedOptionNames(n), true

	case "spinbutton", "slider":
		for _, attr := range []string{"aria-valuetext", "aria-valuenow", "value"} {
			if v := attribute(n, attr); !isBlank(v) {
				return v, true
			}
		}
		return "", true
	}

	return "", false
}

// selectedOptionNames joins the names of the selected options of a <select>
// or an ARIA listbox.
func (c *computation) selectedOptionNames(n Node) string {
	native := isTag(n, "select")

	var options, selected []Node
	for _, child := range elementChildren(n) {
		walk(child, func(d Node) bool {
			if native {
				if isTag(d, "option") {
					options = append(options, d)
				}
				return true
			}
			if c.role(d) == "option" {
				options = append(options, d)
			}
			return true
		})
	}

	for _, option := range options {
		if native && hasAttribute(option, "selected") {
			selected = append(selected, option)
		}
		if !native && strings.EqualFold(trimSpace(attribute(option, "aria-selected")), "true") {
			selected = append(selected, option)
		}
	}

	// A single-select dropdown always shows an option, the first by default.
	if native && len(selected) == 0 && len(options) > 0 && selectRole(n) == "combobox" {
		selected = options[:1]
	}

	var parts []string
	for _, option := range selected {
		if !c.visit(option) {
			continue
		}
		part := Normalize(c.name(option, nameOptions{role: "option", roleKnown: true, recurse: true, withinLabel: true}))
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// nameFromHostLanguage applies the HTML-AAM naming rules of each element.
func (c *computation) nameFromHostLanguage(n Node, o nameOptions) string {
	switch n.TagName() {
	case "input":
		return c.inputName(n, o)

	case "textarea":
		if v := c.labelsName(n, o); !isBlank(v) {
			return v
		}
		return firstNonBlank(attribute(n, "title"), attribute(n, "placeholder"))

	case "button", "select", "meter", "output", "progress":
		return c.labelsName(n, o)

	case "img":
		if alt, ok := n.Attribute("alt"); ok {
			return alt
		}
		if v := attribute(n, "title"); !isBlank(v) {
			return v
		}
		return c.figureCaptionName(n, o)

	case "area":
		return attribute(n, "alt")

	case "table":
		return c.childName(n, "caption", o)

	case "fieldset":
		return c.childName(n, "legend", o)

	case "figure":
		return c.childName(n, "figcaption", o)

	case "svg":
		for _, child := range elementChildren(n) {
			if isTag(child, "title") {
				return child.Text()
			}
		}

	case "optgroup", "option":
		return attribute(n, "label")

	case "summary":
		return c.nameFromContent(n, o)

	case "details":
		if v := c.childName(n, "summary", o); !isBlank(v) {
			return v
		}
		return "Details"
	}

	return ""
}

func (c *computation) inputName(n Node, o nameOptions) string {
	switch t := inputType(n); t {
	case "hidden":
		return ""

	case "button", "submit", "reset":
		if v, ok := n.Attribute("value"); ok {
			return v
		}
		if v := attribute(n, "title"); !isBlank(v) {
			return v
		}
		switch t {
		case "submit":
			return "Submit"
		case "reset":
			return "Reset"
		}
		return ""

	case "image":
		return firstNonBlank(attribute(n, "alt"), attribute(n, "value"), attribute(n, "title"), "Submit Query")

	default:
		if v := c.labelsName(n, o); !isBlank(v) {
			return v
		}
		if v := attribute(n, "title"); !isBlank(v) {
			return v
		}
		if _, ok := placeholderInputTypes[t]; ok {
			return attribute(n, "placeholder")
		}
		return ""
	}
}

// labelsName joins the names of the <label> elements associated with a
// form control, either by for= or by nesting.
func (c *computation) labelsName(n Node, o nameOptions) string {
	// The control's own value must not end up in its own name.
	c.visit(n)

	var parts []string
	for _, label := range labelsFor(n) {
		if !c.visit(label) {
			continue
		}
		part := Normalize(c.name(label, nameOptions{
			withinLabel:   true,
			recurse:       true,
			includeHidden: o.includeHidden,
		}))
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// labelsFor returns the labels of a labelable element in document order.
func labelsFor(n Node) []Node {
	if _, ok := labelableTags[n.TagName()]; !ok {
		return nil
	}
	if isTag(n, "input") && inputType(n) == "hidden" {
		return nil
	}

	var labels []Node
	walk(topElement(n), func(candidate Node) bool {
		if isTag(candidate, "label") && labeledControl(candidate) == n {
			labels = append(labels, candidate)
		}
		return true
	})
	return labels
}

// labeledControl returns the control a <label> labels: the target of its
// for attribute, or else its first labelable descendant.
func labeledControl(label Node) Node {
	if id, ok := label.Attribute("for"); ok {
		target := label.ElementByID(id)
		if target == nil {
			return nil
		}
		if _, labelable := labelableTags[target.TagName()]; !labelable {
			return nil
		}
		return target
	}

	var control Node
	for _, child := range elementChildren(label) {
		walk(child, func(d Node) bool {
			if _, labelable := labelableTags[d.TagName()]; labelable {
				if !(isTag(d, "input") && inputType(d) == "hidden") {
					control = d
					return false
				}
			}
			return true
		})
		if control != nil {
			break
		}
	}
	return control
}

// childName returns the name of the first child element with the given tag,
// such as the <caption> of a table or the <legend> of a fieldset.
func (c *computation) childName(n Node, tag string, o nameOptions) string {
	for _, child := range elementChildren(n) {
		if !isTag(child, tag) {
			continue
		}
		if !c.visit(child) {
			return ""
		}
		return Normalize(c.name(child, nameOptions{
			withinLabel:   o.withinLabel,
			recurse:       true,
			includeHidden: o.includeHidden,
		}))
	}
	return ""
}

// figureCaptionName names an image by the caption of the figure it fills.
func (c *computation) figureCaptionName(n Node, o nameOptions) string {
	figure := n.Parent()
	if !isTag(figure, "figure") {
		return ""
	}
	for _, child := range figure.Children() {
		if !child.IsElement() {
			if !isBlank(child.Text()) {
				return ""
			}
			continue
		}
		if child != n && !isTag(child, "figcaption") {
			return ""
		}
	}
	return c.childName(figure, "figcaption", o)
}

// nameFromContent concatenates the text alternatives of the children of n.
func (c *computation) nameFromContent(n Node, o nameOptions) string {
	childOptions := nameOptions{
		withinLabel:   o.withinLabel,
		recurse:       true,
		includeHidden: o.includeHidden,
	}

	var text strings.Builder
	for _, child := range n.Children() {
		if !c.visit(child) {
			continue
		}
		if !child.IsElement() {
			text.WriteString(child.Text())
			continue
		}

		childText := c.name(child, childOptions)
		if _, block := blockTags[child.TagName()]; block {
			text.WriteString(" " + childText + " ")
		} else {
			text.WriteString(childText)
		}
	}
	return text.String()
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if !isBlank(v) {
			return v
		}
	}
	return ""
}

// headingLevel returns the level of a heading, from aria-level or the tag.
func headingLevel(n Node) int {
	if level, err := strconv.Atoi(trimSpace(attribute(n, "aria-level"))); err == nil && level > 0 {
		return level
	}
	tag := n.TagName()
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}
