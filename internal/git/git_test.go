package git_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/wahlandcase/refcommit/internal/git"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(tb testing.TB, branch string) (string, *gogit.Repository) {
	tb.Helper()

	dir := tb.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(tb, err)

	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))
	require.NoError(tb, repo.Storer.SetReference(head))

	return dir, repo
}

func TestCurrentBranch_unborn_branch(t *testing.T) {
	t.Parallel()

	dir, _ := initRepo(t, "feature/ABC-123-and-XYZ-45")

	assert.Equal(t, "feature/ABC-123-and-XYZ-45", git.CurrentBranch(dir))
}

func TestCurrentBranch_from_subdirectory(t *testing.T) {
	t.Parallel()

	dir, _ := initRepo(t, "ABC-9")
	sub := filepath.Join(dir, "pkg", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	assert.Equal(t, "ABC-9", git.CurrentBranch(sub))
}

func TestCurrentBranch_detached(t *testing.T) {
	t.Parallel()

	dir, repo := initRepo(t, "main")
	detached := plumbing.NewHashReference(
		plumbing.HEAD, plumbing.NewHash("0123456789abcdef0123456789abcdef01234567"),
	)
	require.NoError(t, repo.Storer.SetReference(detached))

	assert.Empty(t, git.CurrentBranch(dir))
}

func TestCurrentBranch_not_a_repo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	assert.Empty(t, git.CurrentBranch(dir))
}

// fakeGit returns a committer whose "commit" is a shell script recording its
// arguments into args.txt and exiting with code.
func fakeGit(tb testing.TB, code string) (*git.ExecCommitter, string) {
	tb.Helper()

	dir := tb.TempDir()
	script := "printf '%s\\n' \"$@\" > args.txt\nexit " + code + "\n"
	require.NoError(tb, os.WriteFile(filepath.Join(dir, "commit"), []byte(script), 0o600))

	var out bytes.Buffer
	return &git.ExecCommitter{
		Binary: "sh",
		Dir:    dir,
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &out,
	}, dir
}

func TestExecCommitter_passes_args(t *testing.T) {
	t.Parallel()

	committer, dir := fakeGit(t, "0")

	code, err := committer.Commit(context.Background(), []string{"-m", "Quick fix", "-a"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	data, err := os.ReadFile(filepath.Join(dir, "args.txt")) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "-m\nQuick fix\n-a\n", string(data))
}

func TestExecCommitter_propagates_exit_code(t *testing.T) {
	t.Parallel()

	committer, _ := fakeGit(t, "3")

	code, err := committer.Commit(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestExecCommitter_missing_binary(t *testing.T) {
	t.Parallel()

	committer := &git.ExecCommitter{Binary: filepath.Join(t.TempDir(), "no-such-git")}

	code, err := committer.Commit(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 1, code)

	var gitErr *git.GitError
	require.ErrorAs(t, err, &gitErr)
	assert.Equal(t, "commit", gitErr.Command)
}
