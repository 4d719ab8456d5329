//go:build property

package accessibility

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var propertyTags = []string{"div", "span", "button", "a", "label", "h2", "section", "input", "form"}

// buildReferenceGraph renders one element per entry. Each element points at
// other elements through aria-labelledby, aria-describedby and
// aria-controls, so arbitrary reference cycles appear.
func buildReferenceGraph(tags []int, refs []int) string {
	var b strings.Builder
	b.WriteString("<html lang=\"en\"><body>")
	count := len(tags)
	for i, tag := range tags {
		name := propertyTags[tag%len(propertyTags)]
		labelled := refs[i%len(refs)] % count
		described := refs[(i+1)%len(refs)] % count
		controlled := refs[(i+2)%len(refs)] % count

		attrs := fmt.Sprintf(` id="n%d" aria-labelledby="n%d n%d" aria-describedby="n%d" aria-controls="n%d"`,
			i, labelled, i, described, controlled)
		if name == "a" {
			attrs += ` href="#"`
		}
		if name == "input" {
			fmt.Fprintf(&b, `<input%s role="combobox" value="v%d">`, attrs, i)
			continue
		}
		fmt.Fprintf(&b, "<%s%s>text %d</%s>", name, attrs, i, name)
	}
	b.WriteString("</body></html>")
	return b.String()
}

func referenceGraphGen() gopter.Gen {
	return gopter.CombineGens(
		gen.SliceOfN(6, gen.IntRange(0, len(propertyTags)-1)),
		gen.SliceOfN(6, gen.IntRange(0, 5)),
	)
}

// TestEngineProperties validates termination, idempotence and disjointness
// over random reference graphs.
func TestEngineProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4242)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("queries terminate and are idempotent", prop.ForAll(
		func(values []interface{}) bool {
			doc, err := ParseHTMLString(buildReferenceGraph(values[0].([]int), values[1].([]int)))
			if err != nil {
				return false
			}
			for _, n := range doc.Elements() {
				if Role(n) != Role(n) ||
					AccessibleName(n) != AccessibleName(n) ||
					AccessibleDescription(n) != AccessibleDescription(n) {
					return false
				}
			}
			return true
		},
		referenceGraphGen(),
	))

	properties.Property("description never repeats the name", prop.ForAll(
		func(values []interface{}) bool {
			doc, err := ParseHTMLString(buildReferenceGraph(values[0].([]int), values[1].([]int)))
			if err != nil {
				return false
			}
			for _, n := range doc.Elements() {
				name, description := AccessibleName(n), AccessibleDescription(n)
				if description != "" && description == name {
					return false
				}
			}
			return true
		},
		referenceGraphGen(),
	))

	properties.Property("resolving the role first leaves the name unchanged", prop.ForAll(
		func(values []interface{}) bool {
			doc, err := ParseHTMLString(buildReferenceGraph(values[0].([]int), values[1].([]int)))
			if err != nil {
				return false
			}
			for _, n := range doc.Elements() {
				c := newComputation()
				c.role(n)
				name, _ := c.nameWithSource(n, nameOptions{})
				if Normalize(name) != AccessibleName(n) {
					return false
				}
			}
			return true
		},
		referenceGraphGen(),
	))

	properties.Property("names are normalized", prop.ForAll(
		func(values []interface{}) bool {
			doc, err := ParseHTMLString(buildReferenceGraph(values[0].([]int), values[1].([]int)))
			if err != nil {
				return false
			}
			for _, n := range doc.Elements() {
				name := AccessibleName(n)
				if name != Normalize(name) {
					return false
				}
			}
			return true
		},
		referenceGraphGen(),
	))

	properties.TestingRun(t)
}

var visibilityValues = []string{"", "visibility:hidden", "visibility:visible", "visibility:collapse"}

// TestVisibilityCascadeProperties checks IsHidden against a direct model of
// the cascade: the nearest explicit visibility decides, display:none on any
// level hides.
func TestVisibilityCascadeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9001)
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	properties.Property("nested visibility follows the nearest declaration", prop.ForAll(
		func(levels []int, noneAt int) bool {
			var b strings.Builder
			for i, v := range levels {
				style := visibilityValues[v]
				if i == noneAt {
					style += ";display:none"
				}
				fmt.Fprintf(&b, `<div style="%s">`, style)
			}
			b.WriteString(`<span id="leaf">x</span>`)
			for range levels {
				b.WriteString("</div>")
			}

			doc, err := ParseHTMLString(b.String())
			if err != nil {
				return false
			}
			leaf := doc.ByID("leaf")
			if leaf == nil {
				return false
			}

			expected := noneAt < len(levels)
			if !expected {
				for i := len(levels) - 1; i >= 0; i-- {
					switch visibilityValues[levels[i]] {
					case "visibility:hidden", "visibility:collapse":
						expected = true
					case "visibility:visible":
					default:
						continue
					}
					break
				}
			}
			return IsHidden(leaf) == expected
		},
		gen.SliceOfN(5, gen.IntRange(0, len(visibilityValues)-1)),
		gen.IntRange(0, 8),
	))

	properties.TestingRun(t)
}
