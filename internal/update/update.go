// Package update replaces the running binary with the latest GitHub release,
// using the gh CLI for both the lookup and the download.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const binaryName = "git-refcommit"

// Release represents a GitHub release
type Release struct {
	TagName string `json:"tagName"`
}

// Runner executes gh and returns its stdout
type Runner func(ctx context.Context, args ...string) ([]byte, error)

// GhRunner runs the real gh CLI
func GhRunner(ctx context.Context, args ...string) ([]byte, error) {
	slog.DebugContext(ctx, "executing", "cmd", "gh", "args", strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, "gh", args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("gh %s: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("gh %s: %w", args[0], err)
	}
	return out, nil
}

// CheckForUpdate returns the latest release if it is newer than currentVersion
func CheckForUpdate(ctx context.Context, run Runner, currentVersion, repo string) (*Release, error) {
	output, err := run(ctx, "release", "list",
		"--repo", repo,
		"--json", "tagName",
		"--limit", "1",
	)
	if err != nil {
		return nil, fmt.Errorf("listing releases: %w", err)
	}

	var releases []Release
	if err := json.Unmarshal(output, &releases); err != nil {
		return nil, fmt.Errorf("failed to parse releases: %w", err)
	}

	if len(releases) == 0 {
		return nil, nil
	}

	latest := &releases[0]
	if IsNewer(latest.TagName, currentVersion) {
		return latest, nil
	}
	return nil, nil
}

// IsNewer reports whether tag is a later version than current. A "dev"
// build is older than any release; a tag that is not semver never is newer.
func IsNewer(tag, current string) bool {
	latestVer, err := semver.NewVersion(normalizeVersion(tag))
	if err != nil {
		slog.Debug("ignoring release with non-semver tag", "tag", tag, "error", err)
		return false
	}

	currentVer, err := semver.NewVersion(normalizeVersion(current))
	if err != nil {
		// "dev" and unversioned builds
		return true
	}

	return latestVer.GreaterThan(currentVer)
}

// normalizeVersion strips the tag prefix used for releases
func normalizeVersion(v string) string {
	return strings.TrimPrefix(v, binaryName+"/")
}

// AssetName returns the expected binary name for the current platform
func AssetName() string {
	return fmt.Sprintf("%s-%s-%s", binaryName, runtime.GOOS, runtime.GOARCH)
}

// DownloadAndInstall downloads the release asset and replaces binaryPath
func DownloadAndInstall(ctx context.Context, run Runner, release *Release, repo, binaryPath string) error {
	tmpDir, err := os.MkdirTemp("", binaryName+"-update-*")
	if err != nil {
		return fmt.Errorf("creating download dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, AssetName())

	if _, err := run(ctx, "release", "download",
		release.TagName,
		"--repo", repo,
		"--pattern", AssetName(),
		"--output", tmpPath,
		"--clobber",
	); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	info, err := os.Stat(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to stat downloaded file: %w", err)
	}
	if info.Size() < 1000 {
		return fmt.Errorf("downloaded file too small (%d bytes), likely invalid", info.Size())
	}

	return replaceFile(tmpPath, binaryPath)
}

// BinaryPath returns the resolved path of the running executable
func BinaryPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}

// replaceFile copies src next to dst and renames it over dst, so dst is
// never left half written
func replaceFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	tmpFile, err := os.CreateTemp(filepath.Dir(dst), binaryName+"-update-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	if _, err := io.Copy(tmpFile, srcFile); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return err
	}
	tmpFile.Close()

	if err := os.Chmod(tmpPath, 0755); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
