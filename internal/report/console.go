// Package report implements the three primary reporters — console,
// JSON, and HTML — plus a supplemented Markdown summary and weak-spot
// analysis. The console score is colored green/yellow/red by score
// threshold when the caller asks for color; the CLI turns color off
// for --no-color or NO_COLOR.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/conneroisu/leanmutator/internal/mutation"
)

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
)

// scoreColor returns the ANSI color for a score per the fixed
// thresholds: green >= 80, yellow >= 50, red below.
func scoreColor(score float64) string {
	switch {
	case score >= 80:
		return ansiGreen
	case score >= 50:
		return ansiYellow
	default:
		return ansiRed
	}
}

// WriteConsole renders a header, a colored score, the five status
// counts, total time, and one line per surviving mutation.
func WriteConsole(w io.Writer, results []mutation.Result, stats mutation.Stats, useColor bool) {
	fmt.Fprintln(w, "LeanMutator mutation report")
	fmt.Fprintln(w, strings.Repeat("-", 27))

	scoreText := stats.ScoreString()
	if useColor {
		fmt.Fprintf(w, "Score: %s%s%%%s\n", scoreColor(stats.Score()), scoreText, ansiReset)
	} else {
		fmt.Fprintf(w, "Score: %s%%\n", scoreText)
	}

	fmt.Fprintf(w, "Killed: %d  Survived: %d  Timeout: %d  Error: %d  Total: %d\n",
		stats.Killed, stats.Survived, stats.TimedOut, stats.Errors, stats.Total)
	fmt.Fprintf(w, "Total time: %dms\n", stats.TotalTimeMs)

	var survivors []mutation.Result
	for _, r := range results {
		if r.Status == mutation.Survived {
			survivors = append(survivors, r)
		}
	}
	if len(survivors) == 0 {
		return
	}

	sort.Slice(survivors, func(i, j int) bool { return survivors[i].Mutation.ID < survivors[j].Mutation.ID })

	fmt.Fprintln(w, "\nSurviving mutations:")
	for _, r := range survivors {
		loc := r.Mutation.Location
		fmt.Fprintf(w, "  %s:%d - %s\n", loc.File, loc.StartCol, r.Mutation.OperatorName)
	}
}
