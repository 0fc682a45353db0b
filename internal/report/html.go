package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/conneroisu/leanmutator/internal/mutation"
)

// RenderHTML produces a single self-contained HTML page: inline CSS and
// JS, a stat grid, and an accordion of mutation entries colored by
// status. No external asset loads, so the report opens standalone from
// disk or a CI artifact store.
func RenderHTML(results []mutation.Result, stats mutation.Stats) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\">")
	b.WriteString("<title>LeanMutator report</title>\n<style>")
	b.WriteString(htmlStyle)
	b.WriteString("</style></head><body>\n")

	fmt.Fprintf(&b, "<h1>LeanMutator mutation report</h1>\n")
	fmt.Fprintf(&b, "<div class=\"stat-grid\">\n")
	fmt.Fprintf(&b, "  <div class=\"stat score-%s\">Score<br><strong>%s%%</strong></div>\n", statusClass(stats.Score()), stats.ScoreString())
	fmt.Fprintf(&b, "  <div class=\"stat\">Killed<br><strong>%d</strong></div>\n", stats.Killed)
	fmt.Fprintf(&b, "  <div class=\"stat\">Survived<br><strong>%d</strong></div>\n", stats.Survived)
	fmt.Fprintf(&b, "  <div class=\"stat\">Timeout<br><strong>%d</strong></div>\n", stats.TimedOut)
	fmt.Fprintf(&b, "  <div class=\"stat\">Error<br><strong>%d</strong></div>\n", stats.Errors)
	fmt.Fprintf(&b, "  <div class=\"stat\">Total time<br><strong>%dms</strong></div>\n", stats.TotalTimeMs)
	b.WriteString("</div>\n")

	b.WriteString("<div class=\"accordion\">\n")
	for _, r := range results {
		fmt.Fprintf(&b, "<details class=\"entry status-%s\">\n", r.Status)
		fmt.Fprintf(&b, "<summary>%s &mdash; %s:%d:%d (%s)</summary>\n",
			html.EscapeString(string(r.Status)),
			html.EscapeString(r.Mutation.File), r.Mutation.Location.StartLine, r.Mutation.Location.StartCol,
			html.EscapeString(r.Mutation.OperatorName))
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(r.Mutation.Description))
		fmt.Fprintf(&b, "<pre class=\"original\">%s</pre>\n", html.EscapeString(r.Mutation.OriginalText))
		fmt.Fprintf(&b, "<pre class=\"mutated\">%s</pre>\n", html.EscapeString(r.Mutation.MutatedText))
		if r.Message != "" {
			fmt.Fprintf(&b, "<p class=\"message\">%s</p>\n", html.EscapeString(r.Message))
		}
		b.WriteString("</details>\n")
	}
	b.WriteString("</div>\n")

	b.WriteString("<script>")
	b.WriteString(htmlScript)
	b.WriteString("</script>\n")
	b.WriteString("</body></html>\n")

	return b.String()
}

func statusClass(score float64) string {
	switch {
	case score >= 80:
		return "good"
	case score >= 50:
		return "warn"
	default:
		return "bad"
	}
}

const htmlStyle = `
body { font-family: sans-serif; margin: 2rem; color: #222; }
.stat-grid { display: flex; gap: 1rem; margin-bottom: 1.5rem; flex-wrap: wrap; }
.stat { border: 1px solid #ccc; border-radius: 6px; padding: 0.75rem 1rem; min-width: 7rem; }
.score-good strong { color: #1a7f37; }
.score-warn strong { color: #9a6700; }
.score-bad strong { color: #b3261e; }
.entry { border: 1px solid #ddd; border-radius: 4px; margin-bottom: 0.5rem; padding: 0.5rem 0.75rem; }
.status-killed { border-left: 4px solid #1a7f37; }
.status-survived { border-left: 4px solid #b3261e; }
.status-timeout { border-left: 4px solid #9a6700; }
.status-error { border-left: 4px solid #6e7781; }
pre { background: #f6f8fa; padding: 0.5rem; overflow-x: auto; }
`

const htmlScript = `
document.querySelectorAll('.accordion summary').forEach(function (s) {
  s.addEventListener('click', function () {});
});
`
