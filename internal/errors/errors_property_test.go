//go:build property

package errors

import (
	"fmt"
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestErrorCollectorProperties validates error collection properties
func TestErrorCollectorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("concurrent error addition is thread-safe", prop.ForAll(
		func(goroutineCount int, errorsPerGoroutine int) bool {
			collector := NewErrorCollector()

			var wg sync.WaitGroup
			for g := 0; g < goroutineCount; g++ {
				wg.Add(1)
				go func(id int) {
					defer wg.Done()
					for e := 0; e < errorsPerGoroutine; e++ {
						file := fmt.Sprintf("page_%d_%d.html", id, e)
						collector.Add(file, NewInputError(ErrCodeParseHTML, "bad input"))
					}
				}(g)
			}
			wg.Wait()

			return len(collector.GetErrors()) == goroutineCount*errorsPerGoroutine
		},
		gen.IntRange(1, 10),
		gen.IntRange(1, 20),
	))

	properties.Property("errors keep insertion order", prop.ForAll(
		func(count int) bool {
			collector := NewErrorCollector()
			for i := 0; i < count; i++ {
				collector.Add(fmt.Sprintf("page_%d.html", i), fmt.Errorf("error %d", i))
			}

			for i, fe := range collector.GetErrors() {
				if fe.File != fmt.Sprintf("page_%d.html", i) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}

// TestWrapProperties validates that wrapping never loses the cause
func TestWrapProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("wrapped message contains cause message", prop.ForAll(
		func(causeMsg, msg string) bool {
			cause := fmt.Errorf("%s", causeMsg)
			wrapped := WrapInput(cause, ErrCodeParseHTML, msg)
			return wrapped.Unwrap() == cause &&
				len(wrapped.Error()) >= len(causeMsg)
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
