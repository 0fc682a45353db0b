package report

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/leanmutator/internal/mutation"
)

var titleCaser = cases.Title(language.English)

// displayOperatorName renders a kebab-case operator name
// ("comparison-relational") as a human-readable title ("Comparison
// Relational") for the prose summary. The console and JSON reporters
// keep the raw kebab-case name verbatim since that's the stable
// identifier those machine-facing formats key off of.
func displayOperatorName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}

// WeakSpot names a location where surviving mutations cluster,
// generalized from "function containing the mutated line" to "file"
// since this parser does not track enclosing-declaration names the
// way go/ast does.
type WeakSpot struct {
	File        string
	Mutations   int
	Survivors   int
	WeakScore   float64
	Suggestions []string
}

// AnalyzeWeakSpots groups results by file and flags any file whose
// survival rate exceeds 50% as a weak spot.
func AnalyzeWeakSpots(results []mutation.Result) []WeakSpot {
	type counts struct{ mutations, survivors int }
	byFile := make(map[string]*counts)
	var order []string

	for _, r := range results {
		file := r.Mutation.File
		c, ok := byFile[file]
		if !ok {
			c = &counts{}
			byFile[file] = c
			order = append(order, file)
		}
		c.mutations++
		if r.Status == mutation.Survived {
			c.survivors++
		}
	}

	var spots []WeakSpot
	for _, file := range order {
		c := byFile[file]
		if c.mutations == 0 {
			continue
		}
		rate := float64(c.survivors) / float64(c.mutations)
		if rate <= 0.5 {
			continue
		}
		spots = append(spots, WeakSpot{
			File:        file,
			Mutations:   c.mutations,
			Survivors:   c.survivors,
			WeakScore:   rate * 100,
			Suggestions: suggestionsFor(c.survivors),
		})
	}

	sort.Slice(spots, func(i, j int) bool { return spots[i].WeakScore > spots[j].WeakScore })
	return spots
}

func suggestionsFor(survivors int) []string {
	suggestions := []string{"add a test asserting the exact boundary condition being mutated"}
	if survivors > 3 {
		suggestions = append(suggestions, "consider property-based tests to cover this file's input space more broadly")
	}
	return suggestions
}

// qualityTier buckets a score into an emoji-banded tier for quick
// scanning in the rendered summary.
func qualityTier(score float64) string {
	switch {
	case score >= 80:
		return "🟢 good"
	case score >= 60:
		return "🟡 fair"
	case score >= 40:
		return "🟠 weak"
	default:
		return "🔴 poor"
	}
}

// WriteMarkdown renders the verbose Markdown summary behind the
// --verbose flag: a score banner, weak-spot table, and up to ten
// detailed surviving-mutation entries.
func WriteMarkdown(results []mutation.Result, stats mutation.Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Mutation Testing Report\n\n")
	fmt.Fprintf(&b, "**Score:** %s%% (%s)\n\n", stats.ScoreString(), qualityTier(stats.Score()))
	fmt.Fprintf(&b, "| Killed | Survived | Timeout | Error | Total | Time |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %d | %dms |\n\n", stats.Killed, stats.Survived, stats.TimedOut, stats.Errors, stats.Total, stats.TotalTimeMs)

	weakSpots := AnalyzeWeakSpots(results)
	if len(weakSpots) > 0 {
		fmt.Fprintf(&b, "## Weak spots\n\n")
		fmt.Fprintf(&b, "| File | Mutations | Survivors | Weak score |\n|---|---|---|---|\n")
		for _, ws := range weakSpots {
			fmt.Fprintf(&b, "| %s | %d | %d | %.1f%% |\n", ws.File, ws.Mutations, ws.Survivors, ws.WeakScore)
		}
		b.WriteString("\n")
	}

	var survivors []mutation.Result
	for _, r := range results {
		if r.Status == mutation.Survived {
			survivors = append(survivors, r)
		}
	}
	if len(survivors) > 0 {
		fmt.Fprintf(&b, "## Surviving mutations\n\n")
		limit := len(survivors)
		if limit > 10 {
			limit = 10
		}
		for _, r := range survivors[:limit] {
			loc := r.Mutation.Location
			fmt.Fprintf(&b, "- `%s:%d:%d` (%s): `%s` → `%s`\n",
				loc.File, loc.StartLine, loc.StartCol, displayOperatorName(r.Mutation.OperatorName),
				r.Mutation.OriginalText, r.Mutation.MutatedText)
		}
		if len(survivors) > limit {
			fmt.Fprintf(&b, "\n_and %d more_\n", len(survivors)-limit)
		}
	}

	return b.String()
}
