package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/valyala/fasttemplate"
)

// FileName is the config file name inside the user config directory
const FileName = "git-refcommit.toml"

type Config struct {
	Tickets   TicketsConfig   `toml:"tickets"`
	Stories   StoriesConfig   `toml:"stories"`
	GitLab    GitLabConfig    `toml:"gitlab"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Log       LogConfig       `toml:"log"`
	Update    UpdateConfig    `toml:"update"`

	// Compiled regex from Tickets.Pattern (not serialized)
	ticketRegex *regexp.Regexp
}

type TicketsConfig struct {
	Pattern     string `toml:"pattern"`
	Label       string `toml:"label"`
	PluralLabel string `toml:"plural_label"`
}

type StoriesConfig struct {
	// URLTemplate receives the story number through the {{id}} placeholder
	URLTemplate string `toml:"url_template"`
	Label       string `toml:"label"`
}

type GitLabConfig struct {
	MergeRequestLabel string `toml:"merge_request_label"`
	DiscussionLabel   string `toml:"discussion_label"`
}

type ClipboardConfig struct {
	Enabled bool `toml:"enabled"`
	// Command overrides platform detection, e.g. ["wl-paste", "--no-newline"]
	Command []string `toml:"command"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type UpdateConfig struct {
	Repo string `toml:"repo"`
}

func DefaultConfig() *Config {
	return &Config{
		Tickets: TicketsConfig{
			Pattern:     "[A-Z]{2,}-[0-9]+",
			Label:       "JIRA Issue",
			PluralLabel: "JIRA Issues",
		},
		Stories: StoriesConfig{
			URLTemplate: "https://www.pivotaltracker.com/n/projects/stories/{{id}}",
			Label:       "Story",
		},
		GitLab: GitLabConfig{
			MergeRequestLabel: "GitLab Merge Request",
			DiscussionLabel:   "GitLab Discussion",
		},
		Clipboard: ClipboardConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Update: UpdateConfig{
			Repo: "wahlandcase/refcommit",
		},
	}
}

// Path returns the location of the config file
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, FileName), nil
}

// Load reads the config file if there is one. A missing file (or no config
// directory at all) yields the defaults; nothing is written.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		slog.Debug("no user config directory, using defaults", "error", err)
		cfg := DefaultConfig()
		if err := cfg.compileRegex(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads the config from path, falling back to defaults if it does not exist
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("config file not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := cfg.compileRegex(); err != nil {
		return nil, err
	}
	if err := cfg.validateStoryTemplate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) compileRegex() error {
	// Empty pattern = issue extraction disabled
	if c.Tickets.Pattern == "" {
		c.ticketRegex = nil
		return nil
	}
	// Case-sensitive on purpose: lowercase words joined by a hyphen are not keys
	re, err := regexp.Compile(c.Tickets.Pattern)
	if err != nil {
		return fmt.Errorf("invalid tickets.pattern %q: %w", c.Tickets.Pattern, err)
	}
	c.ticketRegex = re
	return nil
}

func (c *Config) validateStoryTemplate() error {
	if !strings.Contains(c.Stories.URLTemplate, "{{id}}") {
		return fmt.Errorf("invalid stories.url_template %q: missing {{id}} placeholder", c.Stories.URLTemplate)
	}
	if _, err := fasttemplate.NewTemplate(c.Stories.URLTemplate, "{{", "}}"); err != nil {
		return fmt.Errorf("invalid stories.url_template %q: %w", c.Stories.URLTemplate, err)
	}
	return nil
}

// TicketRegex returns the compiled ticket pattern regex (nil if disabled)
func (c *Config) TicketRegex() *regexp.Regexp {
	// Configs built in code are compiled on first use, and again after
	// Tickets.Pattern changes
	stale := c.ticketRegex == nil || c.ticketRegex.String() != c.Tickets.Pattern
	if c.Tickets.Pattern != "" && stale {
		if err := c.compileRegex(); err != nil {
			slog.Warn("issue extraction disabled", "error", err)
			c.ticketRegex = nil
		}
	}
	if c.Tickets.Pattern == "" {
		return nil
	}
	return c.ticketRegex
}

// SlogLevel maps Log.Level to a slog level, defaulting to warn
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SaveFile writes the config to path, creating parent directories
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the config as TOML
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
