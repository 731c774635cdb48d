// Package git wraps the git operations the commit workflow needs.
package git

import (
	"errors"

	"github.com/michaelmagan/vuku/internal/gitcmd"
	"github.com/michaelmagan/vuku/internal/gitutil"
	"github.com/michaelmagan/vuku/internal/stringsutil"
)

// DefaultRemote is the remote used for publish checks and pushes.
const DefaultRemote = "origin"

// FileStatus describes one modified file and whether it is staged.
type FileStatus struct {
	Path   string
	Staged bool
}

// Options configures a Client.
type Options struct {
	Verbose bool
	Dir     string
}

// Client executes git operations through a shared runner.
type Client struct {
	runner gitcmd.Runner
}

func NewClient(opts Options) *Client {
	return &Client{
		runner: gitcmd.Runner{Verbose: opts.Verbose, Dir: opts.Dir},
	}
}

// IsGitRepository reports whether the working directory is inside a git repo.
func (c *Client) IsGitRepository() bool {
	_, err := c.runner.Run("rev-parse", "--git-dir")
	return err == nil
}

// CheckGitRepository returns an error when not inside a git repository.
func (c *Client) CheckGitRepository() error {
	if !c.IsGitRepository() {
		return errors.New("not a git repository (or any of the parent directories)")
	}
	return nil
}

// CurrentBranch returns the name of the checked-out branch.
func (c *Client) CurrentBranch() (string, error) {
	result, err := c.runner.RunLogged("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", gitutil.WrapGitError("failed to read current branch", result, err)
	}
	return result.StdoutString(true), nil
}

// UnstagedFiles returns paths with unstaged modifications, including
// untracked files. The result is a fresh snapshot on every call.
func (c *Client) UnstagedFiles() ([]string, error) {
	modified, err := c.runner.RunLogged("diff", "--name-only")
	if err != nil {
		return nil, gitutil.WrapGitError("failed to list unstaged files", modified, err)
	}

	untracked, err := c.runner.RunLogged("ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, gitutil.WrapGitError("failed to list untracked files", untracked, err)
	}

	files := stringsutil.SplitNonEmpty(modified.StdoutString(true), "\n")
	files = append(files, stringsutil.SplitNonEmpty(untracked.StdoutString(true), "\n")...)
	return stringsutil.UniqueStrings(files), nil
}

// StagedFiles returns paths with staged changes. Fresh snapshot on every call.
func (c *Client) StagedFiles() ([]string, error) {
	result, err := c.runner.RunLogged("diff", "--cached", "--name-only")
	if err != nil {
		return nil, gitutil.WrapGitError("failed to list staged files", result, err)
	}
	return stringsutil.SplitNonEmpty(result.StdoutString(true), "\n"), nil
}

// Status returns the union of staged and unstaged files as FileStatus records.
func (c *Client) Status() ([]FileStatus, error) {
	staged, err := c.StagedFiles()
	if err != nil {
		return nil, err
	}
	unstaged, err := c.UnstagedFiles()
	if err != nil {
		return nil, err
	}

	statuses := make([]FileStatus, 0, len(staged)+len(unstaged))
	for _, path := range staged {
		statuses = append(statuses, FileStatus{Path: path, Staged: true})
	}
	for _, path := range unstaged {
		if !stringsutil.Contains(staged, path) {
			statuses = append(statuses, FileStatus{Path: path, Staged: false})
		}
	}
	return statuses, nil
}

// StageFiles adds the given paths to the index. Staging an already-staged
// file is a no-op.
func (c *Client) StageFiles(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	result, err := c.runner.RunLogged(args...)
	if err != nil {
		return gitutil.WrapGitError("failed to stage files", result, err)
	}
	return nil
}

// UnstageFiles removes the given paths from the index. Unstaging an
// already-unstaged file is a no-op.
func (c *Client) UnstageFiles(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"reset", "HEAD", "--"}, paths...)
	result, err := c.runner.RunLogged(args...)
	if err != nil {
		return gitutil.WrapGitError("failed to unstage files", result, err)
	}
	return nil
}

// StageAll stages every change in the working tree.
func (c *Client) StageAll() error {
	result, err := c.runner.RunLogged("add", ".")
	if err != nil {
		return gitutil.WrapGitError("failed to stage all files", result, err)
	}
	return nil
}

// CreateAndSwitchBranch creates the branch and checks it out.
func (c *Client) CreateAndSwitchBranch(name string) error {
	if err := gitutil.ValidateBranchName(name); err != nil {
		return err
	}
	result, err := c.runner.RunLogged("checkout", "-b", name)
	if err != nil {
		return gitutil.WrapGitError("failed to create branch", result, err)
	}
	return nil
}

// Commit records the staged changes with the given message.
func (c *Client) Commit(message string) error {
	result, err := c.runner.RunLogged("commit", "-m", message)
	if err != nil {
		return gitutil.WrapGitError("failed to commit changes", result, err)
	}
	return nil
}

// IsBranchPublished reports whether the branch exists on the default remote.
// Any query failure (no remote, network down) is treated as not published.
func (c *Client) IsBranchPublished(name string) bool {
	result, err := c.runner.RunLogged("ls-remote", "--exit-code", "--heads", DefaultRemote, name)
	if err != nil {
		return false
	}
	return result.StdoutString(true) != ""
}

// Push uploads the branch, setting up upstream tracking on first publish.
func (c *Client) Push(name string, published bool) error {
	args := []string{"push"}
	if !published {
		args = append(args, "--set-upstream", DefaultRemote, name)
	}
	result, err := c.runner.RunLogged(args...)
	if err != nil {
		return gitutil.WrapGitError("failed to push branch", result, err)
	}
	return nil
}
