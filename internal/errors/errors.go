// Package errors implements the error taxonomy of the mutation testing
// workflow: user-input errors that abort a run before it starts, per-mutant
// workflow errors that are trapped locally and turned into a Status, parser
// errors on original sources, and restoration failures. The runner reports
// a restoration failure as the affected mutation's Error result; nothing in
// the pipeline stops the run on it.
package errors

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrorType classifies a MutationError by where in the pipeline it occurred.
type ErrorType string

const (
	// ErrorTypeUserInput covers missing files, unknown operator names, and
	// malformed CLI input. Reported to stderr, exit 1, no partial run.
	ErrorTypeUserInput ErrorType = "user_input"
	// ErrorTypeWorkflow covers temp-dir creation, backup write, and
	// build-tool spawn failures for a single mutant. Trapped locally.
	ErrorTypeWorkflow ErrorType = "workflow"
	// ErrorTypeParser covers a failure to parse the original source of a
	// file, fatal for that file only.
	ErrorTypeParser ErrorType = "parser"
	// ErrorTypeRestoration covers a failure to restore a file's original
	// bytes after a mutation. The runner records it as that mutation's
	// Error result; the run is not aborted.
	ErrorTypeRestoration ErrorType = "restoration"
	ErrorTypeInternal     ErrorType = "internal"
)

// MutationError is a structured error type carrying file/line context
// through the pipeline.
type MutationError struct {
	Type      ErrorType
	File      string
	Line      int
	Column    int
	Message   string
	Cause     error
	Timestamp time.Time
}

func (e *MutationError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	loc := e.File
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", e.File, e.Line, e.Column)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", loc, e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", loc, e.Type, e.Message)
}

func (e *MutationError) Unwrap() error { return e.Cause }

func (e *MutationError) Is(target error) bool {
	var t *MutationError
	if errors.As(target, &t) {
		return e.Type == t.Type
	}
	return false
}

// New constructors, one per error class.

func NewUserInputError(message string) *MutationError {
	return &MutationError{Type: ErrorTypeUserInput, Message: message, Timestamp: time.Now()}
}

func NewWorkflowError(file, message string, cause error) *MutationError {
	return &MutationError{Type: ErrorTypeWorkflow, File: file, Message: message, Cause: cause, Timestamp: time.Now()}
}

func NewParserError(file string, line, column int, message string, cause error) *MutationError {
	return &MutationError{Type: ErrorTypeParser, File: file, Line: line, Column: column, Message: message, Cause: cause, Timestamp: time.Now()}
}

func NewRestorationError(file, message string, cause error) *MutationError {
	return &MutationError{Type: ErrorTypeRestoration, File: file, Message: message, Cause: cause, Timestamp: time.Now()}
}

// IsRestoration reports whether err is (or wraps) a restoration
// failure.
func IsRestoration(err error) bool {
	var me *MutationError
	if errors.As(err, &me) {
		return me.Type == ErrorTypeRestoration
	}
	return false
}

// Collector gathers user-input errors discovered while parsing CLI
// flags and config, so they can all be reported to stderr before
// exiting. Workflow errors never pass through here — they live on the
// MutationResult instead, so a single bad mutant can never affect exit
// status through this path.
type Collector struct {
	mu     sync.RWMutex
	errors []*MutationError
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Add(err *MutationError) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, err)
}

func (c *Collector) HasErrors() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.errors) > 0
}

func (c *Collector) Errors() []*MutationError {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*MutationError, len(c.errors))
	copy(out, c.errors)
	return out
}
