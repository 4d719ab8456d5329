package accessibility

import "strings"

// AccessibleDescription returns the accessible description of n, or "".
// A description never repeats the accessible name: any candidate equal to
// the name is skipped in favour of the next one.
func AccessibleDescription(n Node) string {
	return newComputation().accessibleDescription(n)
}

func (c *computation) accessibleDescription(n Node) string {
	if n == nil || !n.IsElement() || IsInert(n) || IsHidden(n) || IsAriaHidden(n) {
		return ""
	}

	// The name gets its own computation so that nodes it visits stay
	// available to the description.
	var (
		name        string
		fromTooltip bool
		nameKnown   bool
	)
	accessibleName := func() string {
		if !nameKnown {
			raw, source := newComputation().nameWithSource(n, nameOptions{})
			name, fromTooltip, nameKnown = Normalize(raw), source == sourceTooltip, true
		}
		return name
	}

	steps := []func() string{
		func() string { return c.descriptionFromDescribedBy(n, nameOptions{}) },
		func() string { return attribute(n, "aria-description") },
		func() string { return c.descriptionFromHostLanguage(n) },
		func() string {
			accessibleName()
			if fromTooltip {
				return ""
			}
			return attribute(n, "title")
		},
	}

	for _, step := range steps {
		candidate := Normalize(step())
		if candidate == "" || candidate == accessibleName() {
			continue
		}
		return candidate
	}
	return ""
}

// description computes the description text of a node reached through
// aria-describedby or content recursion.
func (c *computation) description(n Node, o nameOptions) string {
	if n == nil {
		return ""
	}
	if !n.IsElement() {
		return n.Text()
	}
	if IsInert(n) {
		return ""
	}
	if !o.includeHidden && (IsHidden(n) || IsAriaHidden(n)) {
		return ""
	}

	if !o.withinLabel {
		if v := c.descriptionFromDescribedBy(n, o); !isBlank(v) {
			return v
		}
	}
	if v := attribute(n, "aria-description"); !isBlank(v) {
		return v
	}
	if v := c.descriptionFromHostLanguage(n); !isBlank(v) {
		return v
	}
	if o.recurse {
		if v := c.descriptionFromContent(n, o); !isBlank(v) {
			return v
		}
	}
	if v := attribute(n, "title"); !isBlank(v) {
		if o.recurse {
			return " " + v + " "
		}
		return v
	}
	return ""
}

func (c *computation) descriptionFromDescribedBy(n Node, o nameOptions) string {
	var parts []string
	for _, id := range tokens(attribute(n, "aria-describedby")) {
		target := n.ElementByID(id)
		if target == nil || !c.visit(target) {
			continue
		}

		part := Normalize(c.description(target, nameOptions{
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

func (c *computation) descriptionFromHostLanguage(n Node) string {
	switch n.TagName() {
	case "table":
		for _, child := range elementChildren(n) {
			if isTag(child, "caption") {
				return child.Text()
			}
		}
	case "input":
		switch inputType(n) {
		case "button", "submit", "reset":
			return attribute(n, "value")
		}
	}
	return ""
}

func (c *computation) descriptionFromContent(n Node, o nameOptions) string {
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

		childText := c.description(child, childOptions)
		if _, block := blockTags[child.TagName()]; block {
			text.WriteString(" " + childText + " ")
		} else {
			text.WriteString(childText)
		}
	}
	return text.String()
}
