package models

// RefKind identifies which extractor produced a reference
type RefKind int

const (
	// IssueRef is an issue tracker key taken from the branch name (e.g. ABC-123)
	IssueRef RefKind = iota
	// StoryRef is a hosted story URL built from a numeric branch suffix
	StoryRef
	// MergeRequestRef is a GitLab merge request found in the clipboard
	MergeRequestRef
	// DiscussionRef is a GitLab merge request comment URL found in the clipboard
	DiscussionRef
)

// String returns a short display name for the kind
func (k RefKind) String() string {
	switch k {
	case IssueRef:
		return "issue"
	case StoryRef:
		return "story"
	case MergeRequestRef:
		return "merge request"
	case DiscussionRef:
		return "discussion"
	default:
		return "unknown"
	}
}

// Reference is one formatted line destined for the refs block of a commit message
type Reference struct {
	Kind RefKind
	// Text is the formatted line without the bullet (e.g. "JIRA Issue: ABC-123")
	Text string
}

// NewReference creates a new Reference
func NewReference(kind RefKind, text string) Reference {
	return Reference{Kind: kind, Text: text}
}

// Line returns the reference as a template bullet
func (r Reference) Line() string {
	return "* " + r.Text
}
