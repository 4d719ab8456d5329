package accessibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected string
	}{
		// explicit roles
		{"explicit role", `<div id="target" role="button">x</div>`, "button"},
		{"first valid token", `<div id="target" role="foo switch button">x</div>`, "switch"},
		{"role is case insensitive", `<div id="target" role="BUTTON">x</div>`, "button"},
		{"no valid token", `<div id="target" role="foo bar">x</div>`, ""},
		{"invalid falls back to implicit", `<button id="target" role="foo">x</button>`, "button"},
		{"directory remapped", `<div id="target" role="directory">x</div>`, "list"},
		{"img remapped", `<div id="target" role="img" aria-label="x"></div>`, "image"},
		{"presentation remapped", `<h1 id="target" role="presentation">x</h1>`, "none"},
		{"none on heading", `<h1 id="target" role="none">x</h1>`, "none"},
		{"none ignored when focusable", `<button id="target" role="none">x</button>`, "button"},
		{"none ignored with tabindex", `<h2 id="target" role="presentation" tabindex="-1">x</h2>`, "heading"},
		{"none ignored with global aria", `<h1 id="target" role="none" aria-describedby="x">x</h1>`, "heading"},
		{"none with label on div", `<div id="target" role="none" aria-label="Name">contents</div>`, ""},
		{"region without name", `<div id="target" role="region">Contents</div>`, ""},
		{"region with aria-label", `<div id="target" role="region" aria-label="News">Contents</div>`, "region"},
		{"region named by labelledby", `<h2 id="h">News</h2><div id="target" role="region" aria-labelledby="h">Contents</div>`, "region"},
		{"form role without name", `<div id="target" role="form">x</div>`, ""},
		{"form role with title", `<div id="target" role="form" title="Signup">x</div>`, "form"},

		// implicit roles
		{"link", `<a id="target" href="http://example.com">contents</a>`, "link"},
		{"anchor without href", `<a id="target">contents</a>`, ""},
		{"plain div", `<div id="target">x</div>`, ""},
		{"span", `<span id="target">x</span>`, ""},
		{"heading", `<h3 id="target">x</h3>`, "heading"},
		{"paragraph", `<p id="target">x</p>`, "paragraph"},
		{"article", `<article id="target">x</article>`, "article"},
		{"aside", `<aside id="target">x</aside>`, "complementary"},
		{"nav", `<nav id="target">x</nav>`, "navigation"},
		{"main", `<main id="target">x</main>`, "main"},
		{"hr", `<hr id="target">`, "separator"},
		{"dialog", `<dialog id="target">x</dialog>`, "dialog"},
		{"details", `<details id="target"><summary>s</summary></details>`, "group"},
		{"fieldset", `<fieldset id="target"></fieldset>`, "group"},
		{"figure", `<figure id="target"></figure>`, "figure"},
		{"meter", `<meter id="target" value="1"></meter>`, "meter"},
		{"progress", `<progress id="target"></progress>`, "progressbar"},
		{"output", `<output id="target"></output>`, "status"},
		{"textarea", `<textarea id="target"></textarea>`, "textbox"},
		{"svg", `<svg id="target"></svg>`, "graphics-document"},
		{"search element", `<search id="target">x</search>`, "search"},
		{"form without name", `<form id="target"></form>`, ""},
		{"form with name", `<form id="target" aria-label="Login"></form>`, "form"},
		{"section without name", `<section id="target">x</section>`, ""},
		{"section with name", `<section id="target" aria-label="Intro">x</section>`, "region"},
		{"img with alt", `<img id="target" src="a.png" alt="A">`, "image"},
		{"img without alt", `<img id="target" src="a.png">`, "image"},
		{"decorative img", `<img id="target" src="a.png" alt="">`, "none"},
		{"decorative img with label", `<img id="target" src="a.png" alt="" aria-label="Logo">`, "image"},

		// header and footer
		{"page header", `<header id="target">x</header>`, "banner"},
		{"page footer", `<footer id="target">x</footer>`, "contentinfo"},
		{"header in article", `<article><header id="target">x</header></article>`, "generic"},
		{"footer in main", `<main><footer id="target">x</footer></main>`, "generic"},
		{"footer in nav role", `<div role="navigation"><footer id="target">x</footer></div>`, "generic"},
		{"header in section", `<section><header id="target">x</header></section>`, "generic"},
		{"header in section with other role", `<section role="group"><header id="target">x</header></section>`, "banner"},

		// lists
		{"list item", `<ul><li id="target">x</li></ul>`, "listitem"},
		{"ordered list item", `<ol><li id="target">x</li></ol>`, "listitem"},
		{"list item in presentational list", `<ul role="none"><li id="target">item</li></ul>`, ""},
		{"list item in directory", `<div role="directory"><li id="target">x</li></div>`, "listitem"},
		{"list", `<ul id="target"></ul>`, "list"},

		// forms
		{"text input", `<input id="target">`, "textbox"},
		{"email input", `<input id="target" type="email">`, "textbox"},
		{"unknown input type", `<input id="target" type="bogus">`, "textbox"},
		{"password input", `<input id="target" type="password">`, ""},
		{"checkbox", `<input id="target" type="checkbox" required>`, "checkbox"},
		{"radio", `<input id="target" type="radio">`, "radio"},
		{"range", `<input id="target" type="range">`, "slider"},
		{"number", `<input id="target" type="number">`, "spinbutton"},
		{"search input", `<input id="target" type="search">`, "searchbox"},
		{"submit", `<input id="target" type="submit">`, "button"},
		{"image input", `<input id="target" type="image" alt="Go">`, "button"},
		{"text with datalist", `<input id="target" list="l"><datalist id="l"></datalist>`, "combobox"},
		{"search with datalist", `<input id="target" type="search" list="l"><datalist id="l"></datalist>`, "combobox"},
		{"list attribute not a datalist", `<input id="target" list="l"><div id="l"></div>`, "textbox"},
		{"list attribute missing", `<input id="target" list="nope">`, "textbox"},
		{"select", `<select id="target"><option>a</option></select>`, "combobox"},
		{"select multiple", `<select id="target" multiple><option>a</option></select>`, "listbox"},
		{"select size", `<select id="target" size="4"><option>a</option></select>`, "listbox"},
		{"select size one", `<select id="target" size="1"><option>a</option></select>`, "combobox"},
		{"option in select", `<select><option id="target">a</option></select>`, "option"},
		{"option in datalist", `<datalist><option id="target">a</option></datalist>`, "option"},
		{"datalist", `<datalist id="target"></datalist>`, "listbox"},
		{"button", `<button id="target">x</button>`, "button"},

		// tables
		{"table", `<table id="target"><tr><td>x</td></tr></table>`, "table"},
		{"row", `<table><tr id="target"><td>x</td></tr></table>`, "row"},
		{"cell", `<table><tr><td id="target">x</td></tr></table>`, "cell"},
		{"grid cell", `<table role="grid"><tr><td id="target">x</td></tr></table>`, "gridcell"},
		{"rowgroup", `<table><tbody id="target"><tr><td>x</td></tr></tbody></table>`, "rowgroup"},
		{"cell in presentational table", `<table role="presentation"><tr><td id="target">x</td></tr></table>`, "generic"},
		{"row in presentational table", `<table role="none"><tr id="target"><td>x</td></tr></table>`, "generic"},
		{"th scope col", `<table><tr><th id="target" scope="col">H</th><td>x</td></tr></table>`, "columnheader"},
		{"th scope row", `<table><tr><th id="target" scope="row">H</th><td>x</td></tr></table>`, "rowheader"},
		{"th in thead", `<table><thead><tr><th id="target">H</th></tr></thead></table>`, "columnheader"},
		{"th beside td", `<table><tr><th id="target">H</th><td>x</td></tr></table>`, "rowheader"},
		{"th among th", `<table><tr><th id="target">A</th><th>B</th></tr></table>`, "columnheader"},
		{"th in presentational table", `<table role="none"><tr><th id="target">A</th></tr></table>`, "generic"},

		// children presentational
		{"inside button", `<button><span id="target" role="link">x</span></button>`, ""},
		{"image inside button", `<button><img id="target" src="a.png" alt="A"></button>`, ""},
		{"inside checkbox role", `<div role="checkbox"><h2 id="target">x</h2></div>`, ""},
		{"focusable inside button keeps role", `<div role="button"><a id="target" href="/x">x</a></div>`, "link"},
		{"nested presentational ancestor", `<div role="tab"><div><p id="target">x</p></div></div>`, ""},

		// hidden
		{"hidden", `<button id="target" hidden>x</button>`, ""},
		{"display none ancestor", `<div style="display:none"><button id="target">x</button></div>`, ""},
		{"aria-hidden non-focusable", `<h1 id="target" aria-hidden="true">x</h1>`, ""},
		{"aria-hidden focusable", `<button id="target" aria-hidden="true">x</button>`, "button"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Role(parseAndFind(t, tt.markup)))
		})
	}
}

func TestRoleDocumentAndText(t *testing.T) {
	doc := mustParse(t, `<p id="p">text</p>`)

	assert.Equal(t, "document", Role(doc.Root()))
	assert.Equal(t, "", Role(mustFind(t, doc, "p").Children()[0]))
	assert.Equal(t, "", Role(nil))
}

func TestExplicitRole(t *testing.T) {
	assert.Equal(t, "button", ExplicitRole(parseAndFind(t, `<div id="target" role="  button  link">x</div>`)))
	assert.Equal(t, "", ExplicitRole(parseAndFind(t, `<div id="target" role="">x</div>`)))
	assert.Equal(t, "", ExplicitRole(parseAndFind(t, `<div id="target">x</div>`)))
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{"button", "none", "presentation", "graphics-document", "image", "img"} {
		assert.True(t, IsValidRole(role), role)
	}
	for _, role := range []string{"", "Button", "widget", "roletype"} {
		assert.False(t, IsValidRole(role), role)
	}
}
