package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/refcommit/internal/models"
)

// ErrAborted is returned when the user quits the picker without confirming
var ErrAborted = errors.New("reference selection aborted")

// Picker is a bubbletea model that lets the user drop references before
// they are written into the commit message
type Picker struct {
	refs      []models.Reference
	selected  []bool
	cursor    int
	confirmed bool
	aborted   bool
}

// NewPicker creates a Picker with every reference selected
func NewPicker(refs []models.Reference) Picker {
	selected := make([]bool, len(refs))
	for i := range selected {
		selected[i] = true
	}
	return Picker{refs: refs, selected: selected}
}

func (p Picker) Init() tea.Cmd {
	return nil
}

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		p.aborted = true
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.refs)-1 {
			p.cursor++
		}
	case " ", "x":
		if len(p.selected) > 0 {
			p.selected[p.cursor] = !p.selected[p.cursor]
		}
	case "a":
		all := !p.allSelected()
		for i := range p.selected {
			p.selected[i] = all
		}
	case "enter":
		p.confirmed = true
		return p, tea.Quit
	}

	return p, nil
}

func (p Picker) allSelected() bool {
	for _, s := range p.selected {
		if !s {
			return false
		}
	}
	return true
}

func (p Picker) View() string {
	if p.confirmed || p.aborted {
		return ""
	}

	lines := []string{SectionHeader("SELECT REFERENCES", ColorCyan), ""}

	for i, ref := range p.refs {
		cursor := "  "
		if i == p.cursor {
			cursor = lipgloss.NewStyle().Foreground(ColorCyan).Render("▸ ")
		}

		check := lipgloss.NewStyle().Foreground(ColorDarkGray).Render("[ ]")
		if p.selected[i] {
			check = lipgloss.NewStyle().Foreground(KindColor(ref.Kind)).Render("[✓]")
		}

		lines = append(lines, fmt.Sprintf("  %s%s %s", cursor, check, ref.Text))
	}

	help := lipgloss.NewStyle().Foreground(ColorDarkGray)
	lines = append(lines, "", help.Render("  space toggle • a all • enter commit • q abort"))

	return strings.Join(lines, "\n") + "\n"
}

// Selected returns the references still ticked, in their original order
func (p Picker) Selected() []models.Reference {
	var refs []models.Reference
	for i, ref := range p.refs {
		if p.selected[i] {
			refs = append(refs, ref)
		}
	}
	return refs
}

// Aborted reports whether the user quit without confirming
func (p Picker) Aborted() bool {
	return p.aborted
}

// Pick runs the picker on the terminal and returns the chosen references.
// Nothing is shown when refs is empty.
func Pick(refs []models.Reference, in io.Reader, out io.Writer) ([]models.Reference, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	prog := tea.NewProgram(NewPicker(refs), tea.WithInput(in), tea.WithOutput(out))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("running reference picker: %w", err)
	}

	picker := final.(Picker)
	if picker.Aborted() {
		return nil, ErrAborted
	}
	return picker.Selected(), nil
}
