//go:build property
// +build property

package mutation

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestScoreBounds checks the score-bounds invariant: 0 <= score <= 100.
func TestScoreBounds(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("score is always within [0, 100]", prop.ForAll(
		func(killed, survived, timedOut, errs int) bool {
			s := Stats{
				Killed:   killed,
				Survived: survived,
				TimedOut: timedOut,
				Errors:   errs,
				Total:    killed + survived + timedOut + errs,
			}
			sc := s.Score()
			return sc >= 0 && sc <= 100
		},
		gen.IntRange(0, 500), gen.IntRange(0, 500), gen.IntRange(0, 500), gen.IntRange(0, 500),
	))

	properties.Property("errors don't penalize score", prop.ForAll(
		func(killed, survived, timedOut, extraErrors int) bool {
			base := Stats{
				Killed:   killed,
				Survived: survived,
				TimedOut: timedOut,
				Total:    killed + survived + timedOut,
			}
			withErrors := base
			withErrors.Errors += extraErrors
			withErrors.Total += extraErrors
			return base.Score() == withErrors.Score()
		},
		gen.IntRange(0, 500), gen.IntRange(0, 500), gen.IntRange(0, 500), gen.IntRange(0, 500),
	))

	properties.Property("killed == effective implies score 100", prop.ForAll(
		func(killed, errs int) bool {
			s := Stats{Killed: killed, Errors: errs, Total: killed + errs}
			return s.Score() == 100
		},
		gen.IntRange(0, 500), gen.IntRange(0, 500),
	))

	properties.Property("killed == 0 and effective > 0 implies score 0", prop.ForAll(
		func(survived, timedOut int) bool {
			if survived+timedOut == 0 {
				return true
			}
			s := Stats{Survived: survived, TimedOut: timedOut, Total: survived + timedOut}
			return s.Score() == 0
		},
		gen.IntRange(0, 500), gen.IntRange(0, 500),
	))

	properties.TestingRun(t)
}
