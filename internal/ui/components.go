package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/refcommit/internal/models"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// RenderReferences lists references under a header, one per line
func RenderReferences(branch string, refs []models.Reference) string {
	lines := []string{SectionHeader("REFERENCES", ColorCyan)}

	branchLabel := lipgloss.NewStyle().Foreground(ColorDarkGray).Render("    branch: ")
	if branch == "" {
		branch = "(none)"
	}
	lines = append(lines, branchLabel+branch, "")

	if len(refs) == 0 {
		empty := lipgloss.NewStyle().Foreground(ColorDarkGray).Italic(true)
		lines = append(lines, empty.Render("    no references found"))
		return strings.Join(lines, "\n")
	}

	for _, ref := range refs {
		bullet := lipgloss.NewStyle().Foreground(KindColor(ref.Kind)).Render("    ● ")
		lines = append(lines, bullet+ref.Text)
	}

	return strings.Join(lines, "\n")
}

// RenderPreview shows the generated template and the git command line
func RenderPreview(template string, command []string) string {
	var lines []string

	if template != "" {
		lines = append(lines, SectionHeader("TEMPLATE", ColorGreen), "")
		for _, l := range strings.Split(strings.TrimRight(template, "\n"), "\n") {
			lines = append(lines, "    "+l)
		}
		lines = append(lines, "")
	}

	lines = append(lines, SectionHeader("COMMAND", ColorYellow), "")
	lines = append(lines, "    "+lipgloss.NewStyle().Bold(true).Render(shellJoin(command)))

	return strings.Join(lines, "\n")
}

// shellJoin quotes arguments containing spaces or quotes for display
func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n'\"") {
			quoted[i] = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		} else {
			quoted[i] = a
		}
	}
	return strings.Join(quoted, " ")
}
