package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/wahlandcase/refcommit/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(tb testing.TB, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), config.FileName)
	require.NoError(tb, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFile_missing_file_uses_defaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultConfig().Tickets, cfg.Tickets)
	assert.True(t, cfg.Clipboard.Enabled)
	require.NotNil(t, cfg.TicketRegex())
	assert.Equal(t, []string{"ABC-1", "XY-22"}, cfg.TicketRegex().FindAllString("ABC-1-XY-22-ab-3", -1))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "loading must not create the file")
}

func TestLoadFile_overrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[tickets]
pattern = "ATT-[0-9]+"
label = "Linear"

[clipboard]
enabled = false
command = ["wl-paste", "--no-newline"]

[log]
level = "debug"
`)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ATT-[0-9]+", cfg.Tickets.Pattern)
	assert.Equal(t, "Linear", cfg.Tickets.Label)
	assert.Equal(t, "JIRA Issues", cfg.Tickets.PluralLabel, "unset keys keep defaults")
	assert.False(t, cfg.Clipboard.Enabled)
	assert.Equal(t, []string{"wl-paste", "--no-newline"}, cfg.Clipboard.Command)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadFile_empty_pattern_disables_tickets(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "[tickets]\npattern = \"\"\n")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.TicketRegex())
}

func TestLoadFile_invalid_pattern(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "[tickets]\npattern = \"([A-Z\"\n")

	_, err := config.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tickets.pattern")
}

func TestLoadFile_story_template_needs_placeholder(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "[stories]\nurl_template = \"https://example.com/stories/\"\n")

	_, err := config.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{{id}}")
}

func TestLoadFile_malformed_toml(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "[tickets\n")

	_, err := config.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestSaveFile_roundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", config.FileName)

	cfg := config.DefaultConfig()
	cfg.Stories.Label = "Shortcut Story"
	require.NoError(t, cfg.SaveFile(path))

	loaded, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Shortcut Story", loaded.Stories.Label)
}

func TestSlogLevel_default_is_warn(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Log.Level = "loud"

	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestTicketRegex_hand_built_config(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Tickets: config.TicketsConfig{Pattern: "ATT-[0-9]+"}}
	require.NotNil(t, cfg.TicketRegex())
	assert.Equal(t, "ATT-12", cfg.TicketRegex().FindString("feat/ATT-12"))

	cfg.Tickets.Pattern = "[A-Z]{2,}-[0-9]+"
	assert.Equal(t, "ABC-1", cfg.TicketRegex().FindString("ABC-1"), "pattern changes are picked up")

	cfg.Tickets.Pattern = ""
	assert.Nil(t, cfg.TicketRegex())
}

func TestTicketRegex_invalid_hand_built_pattern(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	require.NotNil(t, cfg.TicketRegex())

	cfg.Tickets.Pattern = "([A-Z"
	assert.Nil(t, cfg.TicketRegex(), "a broken pattern disables extraction instead of keeping the old regex")
}
