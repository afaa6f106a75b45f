// Package clipboard reads the system clipboard through the platform's
// command-line tools. Reading never fails: any problem means "empty".
package clipboard

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// DefaultTimeout bounds how long a clipboard tool may take
const DefaultTimeout = 2 * time.Second

// Reader returns the clipboard contents, or "" if unavailable
type Reader interface {
	Read(ctx context.Context) string
}

// Static is a Reader returning fixed text
type Static string

func (s Static) Read(context.Context) string {
	return string(s)
}

// CommandReader runs a clipboard paste command
type CommandReader struct {
	// Command overrides platform detection when non-empty
	Command []string
	Timeout time.Duration

	goos     string
	lookPath func(string) (string, error)
	isWSL    func() bool
}

// NewCommandReader creates a CommandReader for the running platform
func NewCommandReader(command []string) *CommandReader {
	return &CommandReader{
		Command:  command,
		Timeout:  DefaultTimeout,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		isWSL:    isWSL,
	}
}

// Read runs the paste command and returns its stdout
func (r *CommandReader) Read(ctx context.Context) string {
	argv := r.Command
	if len(argv) == 0 {
		argv = r.detect()
	}
	if len(argv) == 0 {
		slog.Debug("no clipboard tool found")
		return ""
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).Output()
	if err != nil {
		slog.Debug("clipboard read failed", "cmd", strings.Join(argv, " "), "error", err)
		return ""
	}

	// PowerShell appends CRLF
	return strings.TrimRight(string(out), "\r\n")
}

// detect returns the paste command for the platform
func (r *CommandReader) detect() []string {
	switch r.goos {
	case "darwin":
		return []string{"pbpaste"}
	case "windows":
		return []string{"powershell", "-NoProfile", "-Command", "Get-Clipboard"}
	}

	if r.isWSL != nil && r.isWSL() {
		// WSL: use powershell.exe to reach Windows clipboard
		return []string{"powershell.exe", "-NoProfile", "-Command", "Get-Clipboard"}
	}

	candidates := [][]string{
		{"xclip", "-selection", "clipboard", "-o"},
		{"xsel", "--clipboard", "--output"},
		{"wl-paste", "--no-newline"},
	}
	for _, c := range candidates {
		if _, err := r.lookPath(c[0]); err == nil {
			return c
		}
	}
	return nil
}

// isWSL checks if running under Windows Subsystem for Linux
func isWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}
