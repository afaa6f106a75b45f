package git

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Committer runs the delegate commit and reports its exit code
type Committer interface {
	Commit(ctx context.Context, args []string) (int, error)
}

// ExecCommitter runs "git commit" as a child process attached to the
// terminal, so editors and hooks behave as if git was run directly.
type ExecCommitter struct {
	// Binary defaults to "git"
	Binary string
	// Dir is the working directory; empty means the current one
	Dir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecCommitter creates an ExecCommitter wired to the process stdio
func NewExecCommitter(dir string) *ExecCommitter {
	return &ExecCommitter{
		Binary: "git",
		Dir:    dir,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Commit runs "<binary> commit <args>" and waits for it. A non-zero exit is
// not an error: the code is returned as is. The child is not killed when
// ctx is cancelled; an interrupted editor is left to git to handle.
func (c *ExecCommitter) Commit(ctx context.Context, args []string) (int, error) {
	binary := c.Binary
	if binary == "" {
		binary = "git"
	}

	full := append([]string{"commit"}, args...)
	slog.DebugContext(ctx, "executing", "cmd", binary, "args", strings.Join(full, " "))

	cmd := exec.Command(binary, full...)
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal
			code = 1
		}
		slog.DebugContext(ctx, "commit exited", "code", code)
		return code, nil
	}

	return 1, &GitError{Command: "commit", Output: err.Error()}
}

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}
