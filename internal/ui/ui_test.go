package ui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wahlandcase/refcommit/internal/models"
	"github.com/wahlandcase/refcommit/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refs = []models.Reference{
	models.NewReference(models.IssueRef, "JIRA Issue: ABC-9"),
	models.NewReference(models.MergeRequestRef, "GitLab Merge Request: g/p!1"),
	models.NewReference(models.DiscussionRef, "GitLab Discussion: https://gitlab.example.com/g/p/merge_requests/1#note_2"),
}

func press(tb testing.TB, p ui.Picker, keys ...tea.KeyMsg) (ui.Picker, tea.Cmd) {
	tb.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var model tea.Model
		model, cmd = p.Update(k)
		var ok bool
		p, ok = model.(ui.Picker)
		require.True(tb, ok)
	}
	return p, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPicker_all_selected_by_default(t *testing.T) {
	t.Parallel()

	p, cmd := press(t, ui.NewPicker(refs), tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.False(t, p.Aborted())
	assert.Equal(t, refs, p.Selected())
}

func TestPicker_toggle_keeps_order(t *testing.T) {
	t.Parallel()

	p, _ := press(t, ui.NewPicker(refs),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, []models.Reference{refs[0], refs[2]}, p.Selected())
}

func TestPicker_toggle_all(t *testing.T) {
	t.Parallel()

	p, _ := press(t, ui.NewPicker(refs), runes("a"))
	assert.Empty(t, p.Selected())

	p, _ = press(t, p, runes("a"))
	assert.Equal(t, refs, p.Selected())
}

func TestPicker_cursor_bounds(t *testing.T) {
	t.Parallel()

	p, _ := press(t, ui.NewPicker(refs),
		tea.KeyMsg{Type: tea.KeyUp},
		runes("x"),
	)
	assert.Equal(t, refs[1:], p.Selected())

	p, _ = press(t, ui.NewPicker(refs),
		runes("j"), runes("j"), runes("j"), runes("j"),
		runes("x"),
	)
	assert.Equal(t, refs[:2], p.Selected())
}

func TestPicker_abort(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		p, cmd := press(t, ui.NewPicker(refs), key)
		assert.True(t, p.Aborted())
		assert.NotNil(t, cmd)
	}
}

func TestPicker_view(t *testing.T) {
	t.Parallel()

	view := ui.NewPicker(refs).View()

	assert.Contains(t, view, "SELECT REFERENCES")
	assert.Contains(t, view, "JIRA Issue: ABC-9")
	assert.Contains(t, view, "enter commit")
}

func TestPick_no_refs(t *testing.T) {
	t.Parallel()

	got, err := ui.Pick(nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRenderReferences(t *testing.T) {
	t.Parallel()

	out := ui.RenderReferences("ABC-9", refs[:1])
	assert.Contains(t, out, "ABC-9")
	assert.Contains(t, out, "JIRA Issue: ABC-9")

	empty := ui.RenderReferences("", nil)
	assert.Contains(t, empty, "(none)")
	assert.Contains(t, empty, "no references found")
}

func TestRenderPreview_quotes_arguments(t *testing.T) {
	t.Parallel()

	out := ui.RenderPreview("refs:\n\n* x\n", []string{"git", "commit", "-m", "Quick fix", "it's"})

	assert.Contains(t, out, "* x")
	assert.Contains(t, out, "git commit -m 'Quick fix' 'it'\\''s'")
}
