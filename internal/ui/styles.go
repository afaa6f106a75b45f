package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/refcommit/internal/models"
)

// Note: NO_COLOR and the Warp terminal fix live in internal/termfix, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorPurple   = lipgloss.Color("#AA55FF")
	ColorOrange   = lipgloss.Color("#FFA500")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")
)

// KindColor returns the accent color for a reference kind
func KindColor(kind models.RefKind) lipgloss.Color {
	switch kind {
	case models.IssueRef:
		return ColorGreen
	case models.StoryRef:
		return ColorYellow
	case models.MergeRequestRef:
		return ColorOrange
	case models.DiscussionRef:
		return ColorPurple
	default:
		return ColorWhite
	}
}
