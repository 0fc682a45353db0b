// Package mutation defines the data model shared by every stage of the
// pipeline: the location and text of a single mutation, its lifecycle
// status, the result of judging it, and the aggregate statistics folded
// over a whole run. The package is pure data — no I/O, no parsing, no
// process control.
package mutation

import "fmt"

// SourceLocation pinpoints a byte range within a file, plus the 1-based
// line/column span it corresponds to. Invariant: byteStart <= byteEnd,
// and (startLine,startCol) <= (endLine,endCol) lexicographically.
type SourceLocation struct {
	File      string `json:"file"`
	StartLine int    `json:"startLine"`
	StartCol  int    `json:"startCol"`
	EndLine   int    `json:"endLine"`
	EndCol    int    `json:"endCol"`
	ByteStart int    `json:"-"`
	ByteEnd   int    `json:"-"`
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.StartLine, l.StartCol)
}

// Mutation is an immutable record of one candidate perturbation. id is
// monotonic within a run, assigned in traversal order so identity is
// stable regardless of later scheduling or completion order.
type Mutation struct {
	ID           int            `json:"id"`
	File         string         `json:"file"`
	Location     SourceLocation `json:"location"`
	OriginalText string         `json:"original"`
	MutatedText  string         `json:"mutated"`
	OperatorName string         `json:"operator"`
	Description  string         `json:"description"`
}

// Status is the closed set of lifecycle states a mutation result can
// reach. Transitions are write-once Pending -> {Killed,Survived,Timeout,Error}.
type Status string

const (
	Pending  Status = "pending"
	Killed   Status = "killed"
	Survived Status = "survived"
	Timeout  Status = "timeout"
	Error    Status = "error"
)

// Result is the outcome of judging one Mutation.
type Result struct {
	Mutation   Mutation      `json:"mutation"`
	Status     Status        `json:"status"`
	DurationMs int64         `json:"duration"`
	Message    string        `json:"message,omitempty"`
}

// Stats is a straight fold over a Result stream: commutative, so the
// reported score never depends on worker count or completion order.
type Stats struct {
	Total       int   `json:"total"`
	Killed      int   `json:"killed"`
	Survived    int   `json:"survived"`
	TimedOut    int   `json:"timedOut"`
	Errors      int   `json:"errors"`
	TotalTimeMs int64 `json:"totalTime"`
}

// Add folds one Result into the running Stats. It does not touch
// TotalTimeMs, which is wall-clock of the whole scheduler run, not a sum
// of per-mutant durations.
func (s *Stats) Add(r Result) {
	s.Total++
	switch r.Status {
	case Killed:
		s.Killed++
	case Survived:
		s.Survived++
	case Timeout:
		s.TimedOut++
	case Error:
		s.Errors++
	}
}

// Score computes the mutation score: errors are excluded from the
// denominator entirely (infrastructure failures must never degrade the
// score), timeouts count in the denominator but not the numerator (a
// weak test that merely hangs is not evidence of a kill). An
// empty-but-for-errors run scores 100, the conventional "nothing to
// prove wrong" baseline.
func (s Stats) Score() float64 {
	effective := s.Total - s.Errors
	if effective <= 0 {
		return 100
	}
	return 100 * float64(s.Killed) / float64(effective)
}

// ScoreString renders Score with two decimal digits and no trailing
// zeros ambiguity, the representation the JSON reporter embeds as a
// string to sidestep float-format ambiguity across decoders.
func (s Stats) ScoreString() string {
	return fmt.Sprintf("%.2f", s.Score())
}
