package models

// Inputs holds the text the extractors inspect. Both values are read once
// at startup and never change for the rest of the run.
type Inputs struct {
	// Branch is the current branch name, empty when detached or outside a repo
	Branch string
	// Clipboard is the clipboard contents, empty when unavailable
	Clipboard string
}
