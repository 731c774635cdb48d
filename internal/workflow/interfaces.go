// Package workflow sequences the interactive commit flow: branch
// decision, staging reconciliation, commit details, commit and push.
package workflow

import (
	"github.com/michaelmagan/vuku/internal/committype"
	"github.com/michaelmagan/vuku/internal/formatter"
	"github.com/michaelmagan/vuku/internal/git"
)

// GitClient abstracts git operations for testability.
type GitClient interface {
	CheckGitRepository() error
	CurrentBranch() (string, error)
	Status() ([]git.FileStatus, error)
	StagedFiles() ([]string, error)
	StageFiles(paths []string) error
	UnstageFiles(paths []string) error
	StageAll() error
	CreateAndSwitchBranch(name string) error
	Commit(message string) error
	IsBranchPublished(name string) bool
	Push(name string, published bool) error
}

// StagingAction is the user's choice at the staging step.
type StagingAction int

const (
	StageEverything StagingAction = iota
	PickFiles
	CancelStaging
)

// Prompter collects the user's decisions. Implementations loop on
// invalid input; validation failures never surface as errors. A
// cancelled prompt returns ErrCancelled.
type Prompter interface {
	ConfirmBranchCreation(currentBranch string, protected bool) (bool, error)
	ConfirmProtectedCommit(branch string) (bool, error)
	BranchDetails() (committype.BranchType, string, error)
	StagingChoice() (StagingAction, error)
	SelectFiles(files []git.FileStatus) ([]string, error)
	CommitDetails(detailed bool) (formatter.CommitAnswers, error)
	ConfirmPush(branch string) (bool, error)
}
