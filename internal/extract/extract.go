package extract

import (
	"github.com/wahlandcase/refcommit/internal/config"
	"github.com/wahlandcase/refcommit/internal/models"
)

// Extractor derives zero or one reference from the inputs
type Extractor interface {
	Extract(in models.Inputs) (models.Reference, bool)

	sealed()
}

// Default returns the built-in extractors in registration order
func Default(cfg *config.Config) []Extractor {
	return []Extractor{
		NewIssueExtractor(cfg.TicketRegex(), cfg.Tickets.Label, cfg.Tickets.PluralLabel),
		NewStoryExtractor(cfg.Stories.URLTemplate, cfg.Stories.Label),
		NewMergeRequestExtractor(cfg.GitLab.MergeRequestLabel),
		NewDiscussionExtractor(cfg.GitLab.DiscussionLabel),
	}
}

// Collect runs every extractor and keeps the references they produce, in
// extractor order. Duplicates are kept.
func Collect(extractors []Extractor, in models.Inputs) []models.Reference {
	var refs []models.Reference
	for _, ex := range extractors {
		if ref, ok := ex.Extract(in); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}
