package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wahlandcase/refcommit/internal/models"
)

// IssueExtractor finds issue keys such as ABC-123 in the branch name
type IssueExtractor struct {
	re          *regexp.Regexp
	label       string
	pluralLabel string
}

// NewIssueExtractor creates an IssueExtractor. A nil regex disables it.
func NewIssueExtractor(re *regexp.Regexp, label, pluralLabel string) *IssueExtractor {
	return &IssueExtractor{re: re, label: label, pluralLabel: pluralLabel}
}

// Extract returns every key in order of appearance; one key uses the
// singular label, several the plural label with a comma-joined list.
func (e *IssueExtractor) Extract(in models.Inputs) (models.Reference, bool) {
	keys := ExtractTickets(in.Branch, e.re)
	switch len(keys) {
	case 0:
		return models.Reference{}, false
	case 1:
		return models.NewReference(models.IssueRef, fmt.Sprintf("%s: %s", e.label, keys[0])), true
	default:
		return models.NewReference(models.IssueRef, fmt.Sprintf("%s: %s", e.pluralLabel, strings.Join(keys, ", "))), true
	}
}

func (*IssueExtractor) sealed() {}

// ExtractTickets returns all non-overlapping matches of ticketRegex in text.
// Unlike a sorted set, order and repeats are kept exactly as matched.
func ExtractTickets(text string, ticketRegex *regexp.Regexp) []string {
	if ticketRegex == nil || text == "" {
		return nil
	}
	return ticketRegex.FindAllString(text, -1)
}
