package models

// CommitMode is the way the delegate git commit receives its message
type CommitMode int

const (
	// ModeInteractive runs git commit with neither message nor template
	ModeInteractive CommitMode = iota
	// ModeLiteral passes the user message with -m
	ModeLiteral
	// ModeFile passes a generated message file with -F
	ModeFile
	// ModeTemplate opens the editor pre-filled from a generated template (-t)
	ModeTemplate
)

// String returns a display string for this mode
func (m CommitMode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeLiteral:
		return "message"
	case ModeFile:
		return "file"
	case ModeTemplate:
		return "template"
	default:
		return ""
	}
}

// UsesTemplate reports whether the mode needs a generated template file
func (m CommitMode) UsesTemplate() bool {
	return m == ModeFile || m == ModeTemplate
}
