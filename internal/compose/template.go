package compose

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/wahlandcase/refcommit/internal/models"
)

// ErrTemplate wraps failures to create the template file
var ErrTemplate = errors.New("creating commit template")

const (
	refsHeader      = "refs:"
	templatePattern = "refcommit-*.txt"
)

// Template renders the message followed by the refs block:
//
//	<message>
//
//	refs:
//
//	* <ref>
//
// The message and its blank line are left out when hasMessage is false.
func Template(message string, hasMessage bool, refs []models.Reference) string {
	var sb strings.Builder

	if hasMessage {
		sb.WriteString(message)
		sb.WriteString("\n\n")
	}

	sb.WriteString(refsHeader)
	sb.WriteString("\n\n")

	for _, ref := range refs {
		sb.WriteString(ref.Line())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// WriteTemplate writes content to a new uniquely named file in dir (the
// system temp dir if empty). The returned cleanup removes the file and is
// safe to call more than once.
func WriteTemplate(dir, content string) (string, func(), error) {
	f, err := os.CreateTemp(dir, templatePattern)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	path := f.Name()

	cleanup := func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn("failed to remove commit template", "path", path, "error", err)
		}
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}

	slog.Debug("wrote commit template", "path", path, "bytes", len(content))
	return path, cleanup, nil
}
