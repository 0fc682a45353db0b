package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/leanmutator/internal/mutation"
)

func sampleResults() ([]mutation.Result, mutation.Stats) {
	results := []mutation.Result{
		{
			Mutation: mutation.Mutation{ID: 0, File: "a.lean", Location: mutation.SourceLocation{File: "a.lean", StartLine: 1, StartCol: 20}, OriginalText: ">", MutatedText: "<", OperatorName: "comparison-relational"},
			Status:   mutation.Killed,
		},
		{
			Mutation: mutation.Mutation{ID: 1, File: "a.lean", Location: mutation.SourceLocation{File: "a.lean", StartLine: 1, StartCol: 20}, OriginalText: ">", MutatedText: "≥", OperatorName: "comparison-relational"},
			Status:   mutation.Survived,
		},
	}
	var stats mutation.Stats
	for _, r := range results {
		stats.Add(r)
	}
	return results, stats
}

func TestWriteConsoleListsSurvivors(t *testing.T) {
	results, stats := sampleResults()
	var buf bytes.Buffer
	WriteConsole(&buf, results, stats, false)
	out := buf.String()
	assert.Contains(t, out, "a.lean:20 - comparison-relational")
	assert.Contains(t, out, "Score: 50.00%")
}

func TestWriteConsoleColorsByThreshold(t *testing.T) {
	results, stats := sampleResults()
	var buf bytes.Buffer
	WriteConsole(&buf, results, stats, true)
	assert.Contains(t, buf.String(), ansiYellow) // score is 50, yellow threshold
}

func TestMarshalJSONSchema(t *testing.T) {
	results, stats := sampleResults()
	data, err := MarshalJSON(results, stats)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "1.0", decoded["version"])
	assert.Equal(t, "LeanMutator", decoded["generator"])

	statsMap := decoded["stats"].(map[string]interface{})
	assert.Equal(t, "50.00", statsMap["score"])

	muts := decoded["mutations"].([]interface{})
	assert.Len(t, muts, 2)
}

func TestRenderHTMLEscapesSourceText(t *testing.T) {
	results := []mutation.Result{
		{
			Mutation: mutation.Mutation{File: "a.lean", OriginalText: "<script>", MutatedText: "ok", OperatorName: "string-literal"},
			Status:   mutation.Survived,
		},
	}
	var stats mutation.Stats
	stats.Add(results[0])

	html := RenderHTML(results, stats)
	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
}

func TestAnalyzeWeakSpotsFlagsHighSurvivalRate(t *testing.T) {
	results, _ := sampleResults()
	spots := AnalyzeWeakSpots(results)
	require.Len(t, spots, 1)
	assert.Equal(t, "a.lean", spots[0].File)
	assert.Equal(t, 50.0, spots[0].WeakScore)
}

func TestWriteMarkdownIncludesWeakSpotsAndSurvivors(t *testing.T) {
	results, stats := sampleResults()
	md := WriteMarkdown(results, stats)
	assert.Contains(t, md, "# Mutation Testing Report")
	assert.Contains(t, md, "Weak spots")
	assert.Contains(t, md, "Surviving mutations")
	assert.Contains(t, md, "Comparison Relational")
}

func TestDisplayOperatorNameTitleCases(t *testing.T) {
	assert.Equal(t, "Comparison Relational", displayOperatorName("comparison-relational"))
	assert.Equal(t, "Boolean Flip", displayOperatorName("boolean-flip"))
}
