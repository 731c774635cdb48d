package workflow

import (
	"errors"

	"github.com/michaelmagan/vuku/internal/config"
	"github.com/michaelmagan/vuku/internal/formatter"
	"github.com/michaelmagan/vuku/internal/git"
	"github.com/michaelmagan/vuku/internal/stringsutil"
	"github.com/michaelmagan/vuku/internal/ui"
)

// Sentinel errors for the clean-exit paths. They never reach the user as
// failures; Run translates them into status lines and a nil return.
var (
	ErrCancelled       = errors.New("cancelled by user")
	ErrNothingToCommit = errors.New("nothing to commit")
	ErrNoFilesStaged   = errors.New("no files staged")
)

// protectedBranches are the branches direct commits are discouraged on.
var protectedBranches = map[string]bool{
	"main":   true,
	"master": true,
}

// IsProtectedBranch reports whether name is a protected primary branch.
func IsProtectedBranch(name string) bool {
	return protectedBranches[name]
}

// Flow runs the interactive commit workflow once. Each decision point is
// visited at most once; there are no retry loops for declined actions.
type Flow struct {
	git      GitClient
	prompter Prompter
	opts     config.Options
	printer  *ui.Printer
}

func New(gitClient GitClient, prompter Prompter, opts config.Options, printer *ui.Printer) *Flow {
	return &Flow{
		git:      gitClient,
		prompter: prompter,
		opts:     opts,
		printer:  printer,
	}
}

// Run executes the workflow. User cancellations and an empty working
// tree end the run cleanly with a nil error; git failures propagate.
func (f *Flow) Run() error {
	err := f.run()
	switch {
	case errors.Is(err, ErrCancelled):
		f.printer.Info("Operation cancelled.")
		return nil
	case errors.Is(err, ErrNothingToCommit):
		f.printer.Info("Nothing to commit, working tree clean.")
		return nil
	case errors.Is(err, ErrNoFilesStaged):
		f.printer.Info("No files staged, nothing to commit.")
		return nil
	}
	return err
}

func (f *Flow) run() error {
	if err := f.git.CheckGitRepository(); err != nil {
		return err
	}

	branch, err := f.git.CurrentBranch()
	if err != nil {
		return err
	}

	branch, err = f.decideBranch(branch)
	if err != nil {
		return err
	}

	if err := f.reconcileStaging(); err != nil {
		return err
	}

	answers, err := f.prompter.CommitDetails(f.opts.Detailed)
	if err != nil {
		return err
	}

	message := formatter.Message(answers, formatter.Options{
		SkipEmoji:         f.opts.SkipEmoji,
		BreakingParagraph: f.opts.BreakingParagraph,
	})
	f.printer.Preview(message)

	if err := f.git.Commit(message); err != nil {
		return err
	}
	f.printer.Success("Successfully committed changes!")

	return f.decidePush(branch)
}

// decideBranch handles the branch-creation decision and returns the
// branch the commit will land on.
func (f *Flow) decideBranch(current string) (string, error) {
	protected := IsProtectedBranch(current)
	if protected {
		f.printer.Warn("You are on the protected branch %q.", current)
	}

	create, err := f.prompter.ConfirmBranchCreation(current, protected)
	if err != nil {
		return "", err
	}

	if !create {
		if protected {
			confirmed, err := f.prompter.ConfirmProtectedCommit(current)
			if err != nil {
				return "", err
			}
			if !confirmed {
				return "", ErrCancelled
			}
		}
		return current, nil
	}

	branchType, name, err := f.prompter.BranchDetails()
	if err != nil {
		return "", err
	}

	branchName := formatter.BranchName(branchType, name)
	if err := f.git.CreateAndSwitchBranch(branchName); err != nil {
		return "", err
	}
	f.printer.Success("Switched to new branch %q.", branchName)
	return branchName, nil
}

// reconcileStaging brings the index in line with the user's selection.
// Every snapshot is taken fresh; nothing is reused across mutations.
func (f *Flow) reconcileStaging() error {
	statuses, err := f.git.Status()
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		return ErrNothingToCommit
	}

	unstagedCount := 0
	stagedPaths := make([]string, 0, len(statuses))
	for _, fs := range statuses {
		if fs.Staged {
			stagedPaths = append(stagedPaths, fs.Path)
		} else {
			unstagedCount++
		}
	}

	// Everything already staged: nothing to reconcile.
	if unstagedCount == 0 {
		return nil
	}

	action, err := f.prompter.StagingChoice()
	if err != nil {
		return err
	}

	switch action {
	case StageEverything:
		if err := f.git.StageAll(); err != nil {
			return err
		}
	case PickFiles:
		selected, err := f.prompter.SelectFiles(statuses)
		if err != nil {
			return err
		}

		toStage := stringsutil.Difference(selected, stagedPaths)
		toUnstage := stringsutil.Difference(stagedPaths, selected)
		if err := f.git.StageFiles(toStage); err != nil {
			return err
		}
		if err := f.git.UnstageFiles(toUnstage); err != nil {
			return err
		}
	case CancelStaging:
		return ErrCancelled
	}

	staged, err := f.git.StagedFiles()
	if err != nil {
		return err
	}
	if len(staged) == 0 {
		return ErrNoFilesStaged
	}
	return nil
}

func (f *Flow) decidePush(branch string) error {
	push, err := f.prompter.ConfirmPush(branch)
	if err != nil {
		return err
	}
	if !push {
		f.printer.Info("Skipping push. Run 'git push' when you are ready.")
		return nil
	}

	published := f.git.IsBranchPublished(branch)

	sp := ui.NewSpinner("Pushing to " + git.DefaultRemote + "...")
	sp.Start()
	err = f.git.Push(branch, published)
	sp.Stop()
	if err != nil {
		return err
	}

	if published {
		f.printer.Success("Pushed %q to %s.", branch, git.DefaultRemote)
	} else {
		f.printer.Success("Published %q to %s with upstream tracking.", branch, git.DefaultRemote)
	}
	return nil
}
