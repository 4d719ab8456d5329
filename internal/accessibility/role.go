package accessibility

import (
	"maps"
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
)

// Role returns the ARIA role of n, or "" when it has none.
//
// The explicit role attribute is combined with the implicit role of the
// tag, then the result is dropped inside an element whose children are
// presentational and finally remapped (presentation to none, img to image,
// directory to list).
func Role(n Node) string {
	return newComputation().role(n)
}

func (c *computation) role(n Node) string {
	if n == nil || !n.IsElement() {
		return ""
	}

	focusable := IsFocusable(n)
	if IsHidden(n) || (IsAriaHidden(n) && !focusable) {
		return ""
	}

	return c.exposedRole(n, focusable)
}

// exposedRole is the role of n regardless of whether n is hidden.
func (c *computation) exposedRole(n Node, focusable bool) string {
	role := c.baseRole(n, focusable)
	if role == "" {
		return ""
	}

	if !focusable && c.hasPresentationalAncestor(n) {
		return ""
	}

	if remapped, ok := roleRemap[role]; ok {
		return remapped
	}
	return role
}

// baseRole composes the explicit and implicit role without the
// presentational-children rule or remapping.
func (c *computation) baseRole(n Node, focusable bool) string {
	explicit := ExplicitRole(n)

	switch explicit {
	case "none", "presentation":
		if focusable || hasGlobalARIA(n) {
			explicit = ""
		}
	case "form", "region":
		if !c.hasName(n, explicit) {
			explicit = ""
		}
	}

	if explicit != "" {
		return explicit
	}
	return c.implicitRole(n, focusable)
}

// elementRole is the base role of an arbitrary element, used when a role
// depends on the role of a related element.
func (c *computation) elementRole(n Node) string {
	return c.baseRole(n, IsFocusable(n))
}

// ExplicitRole returns the first token of the role attribute that is a
// valid ARIA role, lowercased, or "".
func ExplicitRole(n Node) string {
	for _, token := range tokens(attribute(n, "role")) {
		token = strings.ToLower(token)
		if validRoles.has(token) {
			return token
		}
	}
	return ""
}

func hasGlobalARIA(n Node) bool {
	for _, attr := range globalARIAAttributes {
		if hasAttribute(n, attr) {
			return true
		}
	}
	return false
}

// hasName reports whether n has a name when it takes role. The check runs on
// a copy of the visited set: nodes it follows stay available to the name
// computation that asked for the role, while nested checks still see every
// node visited above them and so terminate on reference cycles.
func (c *computation) hasName(n Node, role string) bool {
	saved := c.visited
	c.visited = maps.Clone(saved)
	defer func() { c.visited = saved }()

	return !isBlank(c.name(n, nameOptions{role: role, roleKnown: true}))
}

// hasPresentationalAncestor reports whether an ancestor's role makes its
// children presentational. Ancestors are judged by their base role: if an
// ancestor lost its role to a presentational ancestor further up, that
// ancestor is caught on its own.
func (c *computation) hasPresentationalAncestor(n Node) bool {
	for _, ancestor := range Ancestors(n) {
		if childrenPresentational.has(c.elementRole(ancestor)) {
			return true
		}
	}
	return false
}

func (c *computation) implicitRole(n Node, focusable bool) string {
	switch atom.Lookup([]byte(n.TagName())) {
	case atom.A, atom.Area:
		if hasAttribute(n, "href") {
			return "link"
		}
	case atom.Article:
		return "article"
	case atom.Aside:
		return "complementary"
	case atom.Blockquote:
		return "blockquote"
	case atom.Button:
		return "button"
	case atom.Caption:
		return "caption"
	case atom.Code:
		return "code"
	case atom.Datalist:
		return "listbox"
	case atom.Dd:
		return "definition"
	case atom.Del, atom.S:
		return "deletion"
	case atom.Details:
		return "group"
	case atom.Dfn, atom.Dt:
		return "term"
	case atom.Dialog:
		return "dialog"
	case atom.Em:
		return "emphasis"
	case atom.Address, atom.Fieldset, atom.Hgroup, atom.Optgroup:
		return "group"
	case atom.Figure:
		return "figure"
	case atom.Footer:
		if c.inSectioningContent(n) {
			return "generic"
		}
		return "contentinfo"
	case atom.Form:
		if c.hasName(n, "form") {
			return "form"
		}
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return "heading"
	case atom.Header:
		if c.inSectioningContent(n) {
			return "generic"
		}
		return "banner"
	case atom.Hr:
		return "separator"
	case atom.Html:
		return "document"
	case atom.Img:
		return imageRole(n, focusable)
	case atom.Input:
		return inputRole(n)
	case atom.Ins:
		return "insertion"
	case atom.Li:
		parent := n.Parent()
		if parent != nil && listRole(c.elementRole(parent)) {
			return "listitem"
		}
	case atom.Main:
		return "main"
	case atom.Mark:
		return "mark"
	case atom.Math:
		return "math"
	case atom.Menu, atom.Ol, atom.Ul:
		return "list"
	case atom.Meter:
		return "meter"
	case atom.Nav:
		return "navigation"
	case atom.Option:
		if hasOptionContainer(n) {
			return "option"
		}
	case atom.Output:
		return "status"
	case atom.P:
		return "paragraph"
	case atom.Progress:
		return "progressbar"
	case atom.Section:
		if c.hasName(n, "region") {
			return "region"
		}
	case atom.Select:
		return selectRole(n)
	case atom.Strong:
		return "strong"
	case atom.Sub:
		return "subscript"
	case atom.Sup:
		return "superscript"
	case atom.Svg:
		return "graphics-document"
	case atom.Table:
		return "table"
	case atom.Tbody, atom.Tfoot, atom.Thead:
		if tableRoles.has(c.tableRole(n)) {
			return "rowgroup"
		}
		return "generic"
	case atom.Td:
		switch c.tableRole(n) {
		case "table":
			return "cell"
		case "grid", "treegrid":
			return "gridcell"
		}
		return "generic"
	case atom.Textarea:
		return "textbox"
	case atom.Th:
		return c.headerCellRole(n)
	case atom.Time:
		return "time"
	case atom.Tr:
		if tableRoles.has(c.tableRole(n)) {
			return "row"
		}
		return "generic"
	default:
		if n.TagName() == "search" {
			return "search"
		}
	}
	return ""
}

func listRole(role string) bool {
	return role == "list" || role == "directory"
}

// imageRole maps <img>: an empty alt marks the image as decorative unless
// something would make that presentational intent be ignored.
func imageRole(n Node, focusable bool) string {
	if alt, ok := n.Attribute("alt"); ok && alt == "" && !focusable && !hasGlobalARIA(n) {
		return "presentation"
	}
	return "img"
}

func inputRole(n Node) string {
	switch t := inputType(n); t {
	case "button", "image", "reset", "submit":
		return "button"
	case "checkbox":
		return "checkbox"
	case "radio":
		return "radio"
	case "range":
		return "slider"
	case "number":
		return "spinbutton"
	case "search":
		if hasDatalist(n) {
			return "combobox"
		}
		return "searchbox"
	default:
		if _, ok := textInputTypes[t]; ok {
			if hasDatalist(n) {
				return "combobox"
			}
			return "textbox"
		}
	}
	return ""
}

// hasDatalist reports whether the list attribute of an input points at an
// existing <datalist>.
func hasDatalist(n Node) bool {
	list := trimSpace(attribute(n, "list"))
	if list == "" {
		return false
	}
	return isTag(n.ElementByID(list), "datalist")
}

func hasOptionContainer(n Node) bool {
	for _, ancestor := range Ancestors(n) {
		if isTag(ancestor, "select", "datalist") {
			return true
		}
	}
	return false
}

func selectRole(n Node) string {
	if hasAttribute(n, "multiple") {
		return "listbox"
	}
	if size, err := strconv.Atoi(trimSpace(attribute(n, "size"))); err == nil && size > 1 {
		return "listbox"
	}
	return "combobox"
}

// tableRole returns the role of the table element that owns n, or "".
func (c *computation) tableRole(n Node) string {
	for _, ancestor := range Ancestors(n) {
		if isTag(ancestor, "table") {
			return c.elementRole(ancestor)
		}
	}
	return ""
}

func (c *computation) headerCellRole(n Node) string {
	if !tableRoles.has(c.tableRole(n)) {
		return "generic"
	}

	switch strings.ToLower(trimSpace(attribute(n, "scope"))) {
	case "col", "colgroup":
		return "columnheader"
	case "row", "rowgroup":
		return "rowheader"
	}

	row := n.Parent()
	if row == nil {
		return "columnheader"
	}
	if isTag(row.Parent(), "thead") {
		return "columnheader"
	}
	for _, sibling := range elementChildren(row) {
		if isTag(sibling, "td") {
			return "rowheader"
		}
	}
	return "columnheader"
}

// inSectioningContent reports whether a header or footer is scoped to a
// section of the page rather than the page itself.
func (c *computation) inSectioningContent(n Node) bool {
	for _, ancestor := range Ancestors(n) {
		if isTag(ancestor, "section") {
			if ExplicitRole(ancestor) == "" || c.elementRole(ancestor) == "region" {
				return true
			}
			continue
		}
		if sectioningRoles.has(c.elementRole(ancestor)) {
			return true
		}
	}
	return false
}
