//go:build property

package watcher

import (
	"fmt"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCoalesceProperties validates how a debounced batch is built.
func TestCoalesceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9876)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	toEvents := func(files []int, kinds []int) []ChangeEvent {
		events := make([]ChangeEvent, len(files))
		for i, f := range files {
			events[i] = ChangeEvent{
				Path: fmt.Sprintf("page%d.html", f),
				Type: EventType(kinds[i%len(kinds)]),
			}
		}
		return events
	}

	properties.Property("one event per path, sorted, last one wins", prop.ForAll(
		func(files []int, kinds []int) bool {
			if len(kinds) == 0 {
				return true
			}
			pending := toEvents(files, kinds)
			batch := coalesce(pending)

			last := map[string]EventType{}
			for _, e := range pending {
				last[e.Path] = e.Type
			}
			if len(batch) != len(last) {
				return false
			}
			if !sort.SliceIsSorted(batch, func(i, j int) bool { return batch[i].Path < batch[j].Path }) {
				return false
			}
			for _, e := range batch {
				if last[e.Path] != e.Type {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 5)),
		gen.SliceOfN(3, gen.IntRange(0, 3)),
	))

	properties.Property("extension filter ignores case", prop.ForAll(
		func(upper bool) bool {
			path := "index.html"
			if upper {
				path = "INDEX.HTML"
			}
			return HTMLFilter(path)
		},
		gen.Bool(),
	))

	properties.TestingRun(t)
}
