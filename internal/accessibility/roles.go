package accessibility

// roleSet is a fixed set of ARIA role tokens.
type roleSet map[string]struct{}

func newRoleSet(roles ...string) roleSet {
	set := make(roleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s roleSet) has(role string) bool {
	_, ok := s[role]
	return ok
}

// validRoles is the WAI-ARIA 1.2 role vocabulary plus the graphics module
// roles and the ARIA 1.3 additions browsers already accept.
var validRoles = newRoleSet(
	"alert", "alertdialog", "application", "article", "banner", "blockquote",
	"button", "caption", "cell", "checkbox", "code", "columnheader", "combobox",
	"comment", "complementary", "contentinfo", "definition", "deletion",
	"dialog", "directory", "document", "emphasis", "feed", "figure", "form",
	"generic", "graphics-document", "graphics-object", "graphics-symbol",
	"grid", "gridcell", "group", "heading", "image", "img", "insertion", "link",
	"list", "listbox", "listitem", "log", "main", "mark", "marquee", "math",
	"menu", "menubar", "menuitem", "menuitemcheckbox", "menuitemradio", "meter",
	"navigation", "none", "note", "option", "paragraph", "presentation",
	"progressbar", "radio", "radiogroup", "region", "row", "rowgroup",
	"rowheader", "scrollbar", "search", "searchbox", "sectionfooter",
	"sectionheader", "separator", "slider", "spinbutton", "status", "strong",
	"subscript", "suggestion", "superscript", "switch", "tab", "table",
	"tablist", "tabpanel", "term", "textbox", "time", "timer", "toolbar",
	"tooltip", "tree", "treegrid", "treeitem",
)

// roleRemap maps synonyms and deprecated roles to the role that is reported.
var roleRemap = map[string]string{
	"presentation": "none",
	"img":          "image",
	"directory":    "list",
}

// globalARIAAttributes are the attributes whose presence makes an element
// keep its semantics despite role="none" or role="presentation".
var globalARIAAttributes = []string{
	"aria-atomic", "aria-busy", "aria-controls", "aria-current",
	"aria-describedby", "aria-description", "aria-details", "aria-dropeffect",
	"aria-flowto", "aria-grabbed", "aria-hidden", "aria-keyshortcuts",
	"aria-label", "aria-labelledby", "aria-live", "aria-owns", "aria-relevant",
	"aria-roledescription", "aria-braillelabel", "aria-brailleroledescription",
}

// childrenPresentational roles flatten their descendants: nothing inside
// them keeps a role unless it can take focus.
var childrenPresentational = newRoleSet(
	"button", "checkbox", "img", "image", "menuitemcheckbox", "menuitemradio",
	"meter", "option", "progressbar", "radio", "scrollbar", "separator",
	"slider", "switch", "tab",
)

// nameProhibited roles never expose a name of their own. Their content still
// contributes when an ancestor pulls it in.
var nameProhibited = newRoleSet(
	"caption", "code", "definition", "deletion", "emphasis", "generic",
	"insertion", "mark", "none", "paragraph", "presentation", "strong",
	"subscript", "suggestion", "superscript", "term", "time",
)

// nameFromContent roles take their name from their descendants.
var nameFromContent = newRoleSet(
	"button", "cell", "checkbox", "columnheader", "comment", "gridcell",
	"heading", "link", "menuitem", "menuitemcheckbox", "menuitemradio",
	"option", "radio", "row", "rowheader", "switch", "tab", "tooltip",
	"treeitem",
)

// sectioningRoles scope header and footer elements away from the page-level
// banner and contentinfo landmarks. <section> is handled separately.
var sectioningRoles = newRoleSet("main", "article", "complementary", "navigation")

var tableRoles = newRoleSet("table", "grid", "treegrid")

// blockTags are rendered as blocks by default, so their text never runs
// into the text of a neighbour.
var blockTags = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {}, "br": {},
	"dd": {}, "details": {}, "dialog": {}, "div": {}, "dl": {}, "dt": {},
	"fieldset": {}, "figcaption": {}, "figure": {}, "footer": {}, "form": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {}, "header": {},
	"hgroup": {}, "hr": {}, "li": {}, "main": {}, "nav": {}, "ol": {}, "p": {},
	"pre": {}, "section": {}, "summary": {}, "table": {}, "tbody": {},
	"td": {}, "tfoot": {}, "th": {}, "thead": {}, "tr": {}, "ul": {},
}

// labelableTags can be associated with a <label>.
var labelableTags = map[string]struct{}{
	"button": {}, "input": {}, "meter": {}, "output": {}, "progress": {},
	"select": {}, "textarea": {},
}

// textInputTypes are the input types exposed as a textbox (or a combobox when
// a datalist is attached).
var textInputTypes = map[string]struct{}{
	"text": {}, "email": {}, "tel": {}, "url": {},
}

// knownInputTypes lists every input type the HTML standard defines. Anything
// else behaves as type=text.
var knownInputTypes = map[string]struct{}{
	"button": {}, "checkbox": {}, "color": {}, "date": {},
	"datetime-local": {}, "email": {}, "file": {}, "hidden": {}, "image": {},
	"month": {}, "number": {}, "password": {}, "radio": {}, "range": {},
	"reset": {}, "search": {}, "submit": {}, "tel": {}, "text": {}, "time": {},
	"url": {}, "week": {},
}

// IsValidRole reports whether role is part of the ARIA role vocabulary.
func IsValidRole(role string) bool {
	return validRoles.has(role)
}
