package extract

import (
	"regexp"

	"github.com/valyala/fasttemplate"

	"github.com/wahlandcase/refcommit/internal/models"
)

// storyBranch matches "<type>/<slug>/<id>" with an optional "#" before the id,
// e.g. "b/login-redirect/#4821"
var storyBranch = regexp.MustCompile(`^./[^/]+/#?(\d+)$`)

// StoryExtractor turns a story number at the end of the branch into a URL
type StoryExtractor struct {
	tpl   *fasttemplate.Template
	label string
}

// NewStoryExtractor creates a StoryExtractor. urlTemplate must contain {{id}}.
func NewStoryExtractor(urlTemplate, label string) *StoryExtractor {
	return &StoryExtractor{
		tpl:   fasttemplate.New(urlTemplate, "{{", "}}"),
		label: label,
	}
}

func (e *StoryExtractor) Extract(in models.Inputs) (models.Reference, bool) {
	m := storyBranch.FindStringSubmatch(in.Branch)
	if m == nil {
		return models.Reference{}, false
	}
	url := e.tpl.ExecuteString(map[string]any{"id": m[1]})
	return models.NewReference(models.StoryRef, e.label+": "+url), true
}

func (*StoryExtractor) sealed() {}
