package git

import (
	"log/slog"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

func openRepo(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}

// CurrentBranch returns the short name of the branch HEAD points at. It
// reads HEAD without resolving it so a branch with no commits yet still has
// a name. Detached HEAD, a missing repo or any read error yield "".
func CurrentBranch(path string) string {
	repo, err := openRepo(path)
	if err != nil {
		slog.Debug("no git repository", "path", path, "error", err)
		return ""
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		slog.Debug("cannot read HEAD", "path", path, "error", err)
		return ""
	}

	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		slog.Debug("HEAD is detached", "path", path, "hash", head.Hash().String())
		return ""
	}

	return head.Target().Short()
}
