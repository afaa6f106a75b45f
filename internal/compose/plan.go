package compose

import (
	"github.com/wahlandcase/refcommit/internal/cliargs"
	"github.com/wahlandcase/refcommit/internal/models"
)

// Plan describes the git commit invocation for one run
type Plan struct {
	Mode models.CommitMode
	// Message is the literal message for ModeLiteral
	Message string
	// Template is the generated content for ModeFile and ModeTemplate
	Template string
}

// NewPlan picks the commit mode from the message and references found
func NewPlan(opts cliargs.Options, refs []models.Reference) Plan {
	switch {
	case len(refs) == 0 && opts.HasMessage:
		return Plan{Mode: models.ModeLiteral, Message: opts.Message}
	case len(refs) == 0:
		return Plan{Mode: models.ModeInteractive}
	case opts.HasMessage:
		return Plan{Mode: models.ModeFile, Template: Template(opts.Message, true, refs)}
	default:
		return Plan{Mode: models.ModeTemplate, Template: Template("", false, refs)}
	}
}

// Args returns the arguments after "git commit". The mode flag comes first
// so a "--" in passthrough cannot turn it into a pathspec.
func (p Plan) Args(templatePath string, passthrough []string) []string {
	args := make([]string, 0, len(passthrough)+2)

	switch p.Mode {
	case models.ModeLiteral:
		args = append(args, "-m", p.Message)
	case models.ModeFile:
		args = append(args, "-F", templatePath)
	case models.ModeTemplate:
		args = append(args, "-t", templatePath)
	}

	return append(args, passthrough...)
}
