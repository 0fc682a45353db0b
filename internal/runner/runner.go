// Package runner implements the mutation judge: given one Mutation and
// the original bytes of its file, apply the mutation to disk, judge it
// by the configured mode, and restore the original bytes on every exit
// path. Judging dispatches through a pluggable parser or an external
// build command depending on mode.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	lmerrors "github.com/conneroisu/leanmutator/internal/errors"
	"github.com/conneroisu/leanmutator/internal/langparser"
	"github.com/conneroisu/leanmutator/internal/mutation"
)

// Mode selects how a mutant is judged.
type Mode string

const (
	// ModeIsolated re-parses the mutated source in memory; fast, only
	// catches mutants that break syntax.
	ModeIsolated Mode = "isolated"
	// ModeBuild writes the mutation to disk and runs the project's build
	// command against it.
	ModeBuild Mode = "build"
)

// Config controls one runner invocation.
type Config struct {
	Mode          Mode
	TimeoutMs     int
	BuildCommand  []string // default: target-language build driver's "build" subcommand
	WorkDir       string   // project root; defaults to the mutation's file directory
	KeepTempFiles bool
}

// DefaultBuildCommand is the target-language build driver invoked in
// build mode when the user supplies no override.
var DefaultBuildCommand = []string{"lean", "build"}

// Apply computes source[0:byteStart] ++ mutatedText ++ source[byteEnd:].
// If the mutation's byte range is inconsistent with source, it falls
// back to a single textual find-and-replace of originalText for
// mutatedText on the first occurrence — best-effort, only reached when
// indices are out of range.
func Apply(source []byte, m mutation.Mutation) []byte {
	start, end := m.Location.ByteStart, m.Location.ByteEnd
	if start < 0 || end > len(source) || start > end {
		return bytes.Replace(source, []byte(m.OriginalText), []byte(m.MutatedText), 1)
	}
	out := make([]byte, 0, len(source)-end+start+len(m.MutatedText))
	out = append(out, source[:start]...)
	out = append(out, m.MutatedText...)
	out = append(out, source[end:]...)
	return out
}

// Run judges a single mutation.
// Precondition: m.File's current on-disk content equals original.
// Postcondition: on every exit path the on-disk file equals original
// byte-for-byte.
func Run(ctx context.Context, m mutation.Mutation, original []byte, cfg Config) mutation.Result {
	start := time.Now()
	mutated := Apply(original, m)

	var status mutation.Status
	var message string

	switch cfg.Mode {
	case ModeIsolated:
		status, message = runIsolated(m, mutated)
	default:
		status, message = runBuild(ctx, m, original, mutated, cfg)
	}

	return mutation.Result{
		Mutation:   m,
		Status:     status,
		DurationMs: time.Since(start).Milliseconds(),
		Message:    message,
	}
}

func runIsolated(m mutation.Mutation, mutated []byte) (mutation.Status, string) {
	_, err := langparser.Parse(mutated, m.File)
	if err != nil {
		return mutation.Killed, ""
	}
	return mutation.Survived, ""
}

func runBuild(ctx context.Context, m mutation.Mutation, original, mutated []byte, cfg Config) (mutation.Status, string) {
	backupPath := m.File + ".bak"
	if err := os.WriteFile(backupPath, original, 0o644); err != nil {
		return mutation.Error, fmt.Sprintf("writing backup: %v", err)
	}
	defer func() {
		if !cfg.KeepTempFiles {
			os.Remove(backupPath)
		}
	}()

	if err := os.WriteFile(m.File, mutated, 0o644); err != nil {
		restoreOrDie(m.File, original)
		return mutation.Error, fmt.Sprintf("writing mutant: %v", err)
	}

	status, message := runBuildCommand(ctx, m, cfg)

	if err := restore(m.File, original); err != nil {
		lmErr := lmerrors.NewRestorationError(m.File, "failed to restore original bytes after mutation", err)
		return mutation.Error, lmErr.Error()
	}

	return status, message
}

func runBuildCommand(ctx context.Context, m mutation.Mutation, cfg Config) (mutation.Status, string) {
	cmdArgs := cfg.BuildCommand
	if len(cmdArgs) == 0 {
		cmdArgs = DefaultBuildCommand
	}

	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	workDir := cfg.WorkDir
	if workDir == "" {
		workDir = filepath.Dir(m.File)
	}

	cmd := exec.CommandContext(runCtx, cmdArgs[0], cmdArgs[1:]...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if runCtx.Err() == context.DeadlineExceeded {
		return mutation.Timeout, "build command exceeded timeout of " + strconv.Itoa(cfg.TimeoutMs) + "ms"
	}
	if runErr != nil {
		if _, ok := runErr.(*exec.ExitError); ok {
			return mutation.Killed, ""
		}
		return mutation.Error, fmt.Sprintf("build command failed to run: %v: %s", runErr, stderr.String())
	}
	return mutation.Survived, ""
}

func restore(path string, original []byte) error {
	return os.WriteFile(path, original, 0o644)
}

// restoreOrDie attempts a best-effort restore when an earlier failure
// already put the run in an error path; its own failure is absorbed
// into the caller's Error result rather than panicking, since the
// caller has already returned a diagnostic message.
func restoreOrDie(path string, original []byte) {
	_ = restore(path, original)
}
