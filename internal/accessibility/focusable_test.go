package accessibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFocusable(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected bool
	}{
		{"plain div", `<div id="target">x</div>`, false},
		{"tabindex zero", `<div id="target" tabindex="0">x</div>`, true},
		{"negative tabindex", `<div id="target" tabindex="-1">x</div>`, true},
		{"signed tabindex with spaces", `<div id="target" tabindex=" +3 ">x</div>`, true},
		{"non-integer tabindex", `<div id="target" tabindex="abc">x</div>`, false},
		{"fractional tabindex", `<div id="target" tabindex="1.5">x</div>`, false},
		{"empty tabindex", `<div id="target" tabindex="">x</div>`, false},
		{"button", `<button id="target">x</button>`, true},
		{"disabled button", `<button id="target" disabled>x</button>`, false},
		{"disabled button with tabindex", `<button id="target" disabled tabindex="0">x</button>`, true},
		{"select", `<select id="target"><option>a</option></select>`, true},
		{"textarea", `<textarea id="target"></textarea>`, true},
		{"disabled textarea", `<textarea id="target" disabled></textarea>`, false},
		{"input", `<input id="target">`, true},
		{"hidden input", `<input id="target" type="HIDDEN">`, false},
		{"disabled input", `<input id="target" disabled>`, false},
		{"link", `<a id="target" href="/x">x</a>`, true},
		{"anchor without href", `<a id="target">x</a>`, false},
		{"area", `<map><area id="target" href="/x"></map>`, true},
		{"iframe", `<iframe id="target"></iframe>`, true},
		{"object", `<object id="target"></object>`, true},
		{"video with controls", `<video id="target" controls></video>`, true},
		{"video without controls", `<video id="target"></video>`, false},
		{"audio with controls", `<audio id="target" controls></audio>`, true},
		{"summary in details", `<details><summary id="target">More</summary></details>`, true},
		{"summary outside details", `<div><summary id="target">More</summary></div>`, false},
		{"contenteditable empty", `<div id="target" contenteditable>x</div>`, true},
		{"contenteditable true", `<div id="target" contenteditable="true">x</div>`, true},
		{"contenteditable plaintext", `<div id="target" contenteditable="plaintext-only">x</div>`, true},
		{"contenteditable false", `<div id="target" contenteditable="false">x</div>`, false},
		{"hidden button", `<button id="target" hidden>x</button>`, false},
		{"button in display none", `<div style="display:none"><button id="target">x</button></div>`, false},
		{"aria-hidden button stays focusable", `<button id="target" aria-hidden="true">x</button>`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsFocusable(parseAndFind(t, tt.markup)))
		})
	}
}

func TestInputType(t *testing.T) {
	tests := map[string]string{
		`<input id="target">`:                 "text",
		`<input id="target" type="Email">`:    "email",
		`<input id="target" type="unknown">`:  "text",
		`<input id="target" type=" range ">`:  "range",
		`<input id="target" type="checkbox">`: "checkbox",
	}

	for markup, expected := range tests {
		assert.Equal(t, expected, inputType(parseAndFind(t, markup)), markup)
	}
}
