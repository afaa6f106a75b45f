package extract

import (
	"fmt"
	"regexp"

	"github.com/wahlandcase/refcommit/internal/models"
)

// mergeRequestURL matches GitLab merge request links on hosts named git.* or
// gitlab.*, with or without the "/-" segment and an optional comment anchor.
var mergeRequestURL = regexp.MustCompile(
	`(?i)https?://(?:[\w-]+\.)*git(?:lab)?\.[\w.-]+(?::\d+)?` +
		`/([\w.-]+)/([\w.-]+)(?:/-)?/merge_requests/(\d+)(#note_\d+)?`,
)

type mergeRequestMatch struct {
	url     string
	group   string
	project string
	id      string
	note    string
}

func matchMergeRequest(text string) (mergeRequestMatch, bool) {
	m := mergeRequestURL.FindStringSubmatch(text)
	if m == nil {
		return mergeRequestMatch{}, false
	}
	return mergeRequestMatch{url: m[0], group: m[1], project: m[2], id: m[3], note: m[4]}, true
}

// MergeRequestExtractor recognises a merge request URL in the clipboard
type MergeRequestExtractor struct {
	label string
}

func NewMergeRequestExtractor(label string) *MergeRequestExtractor {
	return &MergeRequestExtractor{label: label}
}

func (e *MergeRequestExtractor) Extract(in models.Inputs) (models.Reference, bool) {
	mr, ok := matchMergeRequest(in.Clipboard)
	if !ok {
		return models.Reference{}, false
	}
	text := fmt.Sprintf("%s: %s/%s!%s", e.label, mr.group, mr.project, mr.id)
	return models.NewReference(models.MergeRequestRef, text), true
}

func (*MergeRequestExtractor) sealed() {}

// DiscussionExtractor recognises a link to a merge request comment
type DiscussionExtractor struct {
	label string
}

func NewDiscussionExtractor(label string) *DiscussionExtractor {
	return &DiscussionExtractor{label: label}
}

func (e *DiscussionExtractor) Extract(in models.Inputs) (models.Reference, bool) {
	mr, ok := matchMergeRequest(in.Clipboard)
	if !ok || mr.note == "" {
		return models.Reference{}, false
	}
	return models.NewReference(models.DiscussionRef, e.label+": "+mr.url), true
}

func (*DiscussionExtractor) sealed() {}
