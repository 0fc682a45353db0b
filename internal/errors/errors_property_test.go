//go:build property
// +build property

package errors

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestErrorTaxonomyProperties checks invariants of the MutationError
// taxonomy.
func TestErrorTaxonomyProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("restoration errors are always classified as restoration", prop.ForAll(
		func(file, message string) bool {
			err := NewRestorationError(file, message, nil)
			return IsRestoration(err) && err.Type == ErrorTypeRestoration
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("non-restoration constructors never satisfy IsRestoration", prop.ForAll(
		func(file, message string) bool {
			return !IsRestoration(NewWorkflowError(file, message, nil)) &&
				!IsRestoration(NewUserInputError(message)) &&
				!IsRestoration(NewParserError(file, 1, 1, message, nil))
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("collector length equals non-nil Add calls", prop.ForAll(
		func(messages []string) bool {
			c := NewCollector()
			for _, m := range messages {
				c.Add(NewUserInputError(m))
			}
			return len(c.Errors()) == len(messages)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
