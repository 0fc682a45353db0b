package report

import (
	"encoding/json"

	"github.com/conneroisu/leanmutator/internal/mutation"
)

const schemaVersion = "1.0"
const generatorName = "LeanMutator"

// jsonStats mirrors mutation.Stats but serializes score as a string to
// sidestep float-format ambiguity across encoders.
type jsonStats struct {
	Total       int    `json:"total"`
	Killed      int    `json:"killed"`
	Survived    int    `json:"survived"`
	TimedOut    int    `json:"timedOut"`
	Errors      int    `json:"errors"`
	Score       string `json:"score"`
	TotalTimeMs int64  `json:"totalTime"`
}

type jsonResult struct {
	Mutation   mutation.Mutation `json:"mutation"`
	Status     mutation.Status   `json:"status"`
	DurationMs int64             `json:"duration"`
	Message    string            `json:"message,omitempty"`
}

type jsonReport struct {
	Version   string       `json:"version"`
	Generator string       `json:"generator"`
	Stats     jsonStats    `json:"stats"`
	Mutations []jsonResult `json:"mutations"`
}

// MarshalJSON renders the stable v1.0 JSON report schema.
func MarshalJSON(results []mutation.Result, stats mutation.Stats) ([]byte, error) {
	report := jsonReport{
		Version:   schemaVersion,
		Generator: generatorName,
		Stats: jsonStats{
			Total:       stats.Total,
			Killed:      stats.Killed,
			Survived:    stats.Survived,
			TimedOut:    stats.TimedOut,
			Errors:      stats.Errors,
			Score:       stats.ScoreString(),
			TotalTimeMs: stats.TotalTimeMs,
		},
		Mutations: make([]jsonResult, len(results)),
	}
	for i, r := range results {
		report.Mutations[i] = jsonResult{
			Mutation:   r.Mutation,
			Status:     r.Status,
			DurationMs: r.DurationMs,
			Message:    r.Message,
		}
	}
	return json.MarshalIndent(report, "", "  ")
}
