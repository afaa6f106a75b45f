package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/wahlandcase/refcommit/internal/cliargs"
	"github.com/wahlandcase/refcommit/internal/clipboard"
	"github.com/wahlandcase/refcommit/internal/compose"
	"github.com/wahlandcase/refcommit/internal/config"
	"github.com/wahlandcase/refcommit/internal/extract"
	"github.com/wahlandcase/refcommit/internal/git"
	"github.com/wahlandcase/refcommit/internal/models"
	"github.com/wahlandcase/refcommit/internal/ui"
)

// previewPath stands in for the template file in preview output
const previewPath = "<template>"

// ExitError carries the exit code the process should end with
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// PickFunc lets the user narrow down the references
type PickFunc func(refs []models.Reference) ([]models.Reference, error)

// Params holds everything one run needs. Inputs come from the collaborators
// here and nowhere else.
type Params struct {
	Config *config.Config
	// Args are the raw command-line arguments meant for git commit
	Args []string
	// Dir is the repository working directory; empty means the current one
	Dir string
	// TempDir holds the commit template; empty means the system temp dir
	TempDir string

	Branch    func(dir string) string
	Clipboard clipboard.Reader
	Committer git.Committer
	Pick      PickFunc

	Stdout io.Writer
}

// Refs reads the branch and clipboard once and runs every extractor
func Refs(ctx context.Context, p Params) (models.Inputs, []models.Reference) {
	var in models.Inputs

	if p.Branch != nil {
		in.Branch = p.Branch(p.Dir)
	}
	if p.Clipboard != nil {
		in.Clipboard = p.Clipboard.Read(ctx)
	}

	refs := extract.Collect(extract.Default(p.Config), in)
	slog.DebugContext(ctx, "collected references", "branch", in.Branch, "count", len(refs))

	return in, refs
}

// Run composes the commit message and delegates to git commit. The returned
// code is git's exit code; the template file is removed before returning.
func Run(ctx context.Context, p Params) (int, error) {
	opts, passthrough, err := cliargs.Normalize(p.Args)
	if err != nil {
		return 2, &ExitError{Code: 2, Err: err}
	}

	_, refs := Refs(ctx, p)

	if opts.Pick && p.Pick != nil {
		refs, err = p.Pick(refs)
		if errors.Is(err, ui.ErrAborted) {
			return 1, &ExitError{Code: 1, Err: err}
		}
		if err != nil {
			return 1, err
		}
	}

	plan := compose.NewPlan(opts, refs)
	slog.DebugContext(ctx, "commit plan", "mode", plan.Mode.String(), "refs", len(refs))

	if opts.Preview {
		args := plan.Args(previewPath, passthrough)
		command := append([]string{"git", "commit"}, args...)
		if p.Stdout != nil {
			fmt.Fprintln(p.Stdout, ui.RenderPreview(plan.Template, command))
		}
		return 0, nil
	}

	templatePath := ""
	if plan.Mode.UsesTemplate() {
		path, cleanup, err := compose.WriteTemplate(p.TempDir, plan.Template)
		if err != nil {
			return 1, err
		}
		defer cleanup()
		templatePath = path
	}

	return p.Committer.Commit(ctx, plan.Args(templatePath, passthrough))
}
