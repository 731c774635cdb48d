// Package prompt implements the interactive prompter on charmbracelet/huh.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/michaelmagan/vuku/internal/committype"
	"github.com/michaelmagan/vuku/internal/formatter"
	"github.com/michaelmagan/vuku/internal/git"
	"github.com/michaelmagan/vuku/internal/gitutil"
	"github.com/michaelmagan/vuku/internal/workflow"
)

// CheckInteractive returns an error when stdin is not a terminal, since
// every run of the workflow requires interactive answers.
func CheckInteractive() error {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil
	}
	return errors.New("stdin is not a terminal; vuku is an interactive tool")
}

// HuhPrompter implements workflow.Prompter with huh forms. Invalid input
// is re-prompted by huh and never escapes; Esc/ctrl-c surfaces as
// workflow.ErrCancelled.
type HuhPrompter struct{}

func New() *HuhPrompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) ConfirmBranchCreation(currentBranch string, protected bool) (bool, error) {
	title := fmt.Sprintf("Create a new branch? (currently on %q)", currentBranch)
	if protected {
		title = fmt.Sprintf("Commits directly to %q are discouraged. Create a new branch?", currentBranch)
	}

	// On a protected branch creation is the default offer.
	create := protected
	err := huh.NewConfirm().Title(title).Value(&create).Run()
	return create, mapCancel(err)
}

func (p *HuhPrompter) ConfirmProtectedCommit(branch string) (bool, error) {
	confirmed := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Really commit directly to %q?", branch)).
		Value(&confirmed).
		Run()
	return confirmed, mapCancel(err)
}

func (p *HuhPrompter) BranchDetails() (committype.BranchType, string, error) {
	var branchType committype.BranchType
	err := huh.NewSelect[committype.BranchType]().
		Title("Branch type").
		Options(branchTypeOptions()...).
		Value(&branchType).
		Run()
	if err != nil {
		return "", "", mapCancel(err)
	}

	var name string
	err = huh.NewInput().
		Title("Branch name").
		Placeholder("short-description").
		Validate(gitutil.ValidateBranchName).
		Value(&name).
		Run()
	if err != nil {
		return "", "", mapCancel(err)
	}

	return branchType, name, nil
}

func (p *HuhPrompter) StagingChoice() (workflow.StagingAction, error) {
	var action workflow.StagingAction
	err := huh.NewSelect[workflow.StagingAction]().
		Title("You have unstaged changes").
		Options(stagingOptions()...).
		Value(&action).
		Run()
	return action, mapCancel(err)
}

func (p *HuhPrompter) SelectFiles(files []git.FileStatus) ([]string, error) {
	var selected []string
	err := huh.NewMultiSelect[string]().
		Title("Select files to stage").
		Options(fileOptions(files)...).
		Value(&selected).
		Run()
	return selected, mapCancel(err)
}

func (p *HuhPrompter) CommitDetails(detailed bool) (formatter.CommitAnswers, error) {
	var answers formatter.CommitAnswers

	err := huh.NewSelect[committype.CommitType]().
		Title("Type of change").
		Options(commitTypeOptions()...).
		Value(&answers.Type).
		Run()
	if err != nil {
		return formatter.CommitAnswers{}, mapCancel(err)
	}

	if detailed {
		err = huh.NewInput().
			Title("Scope (optional)").
			Placeholder("component or area, e.g. auth").
			Value(&answers.Scope).
			Run()
		if err != nil {
			return formatter.CommitAnswers{}, mapCancel(err)
		}
		answers.Scope = strings.TrimSpace(answers.Scope)
	}

	err = huh.NewInput().
		Title("Short description").
		Validate(validateDescription).
		Value(&answers.Description).
		Run()
	if err != nil {
		return formatter.CommitAnswers{}, mapCancel(err)
	}
	answers.Description = strings.TrimSpace(answers.Description)

	err = huh.NewConfirm().
		Title("Does this change break existing behavior?").
		Value(&answers.Breaking).
		Run()
	if err != nil {
		return formatter.CommitAnswers{}, mapCancel(err)
	}

	if detailed {
		err = huh.NewText().
			Title("Longer body (optional)").
			Value(&answers.Body).
			Run()
		if err != nil {
			return formatter.CommitAnswers{}, mapCancel(err)
		}
		answers.Body = strings.TrimSpace(answers.Body)

		err = huh.NewText().
			Title("Footer (optional)").
			Placeholder("Closes #123").
			Value(&answers.Footer).
			Run()
		if err != nil {
			return formatter.CommitAnswers{}, mapCancel(err)
		}
		answers.Footer = strings.TrimSpace(answers.Footer)
	}

	return answers, nil
}

func (p *HuhPrompter) ConfirmPush(branch string) (bool, error) {
	push := true
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Push %q to %s?", branch, git.DefaultRemote)).
		Value(&push).
		Run()
	return push, mapCancel(err)
}

func validateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("description cannot be empty")
	}
	return nil
}

func commitTypeOptions() []huh.Option[committype.CommitType] {
	types := committype.CommitTypes()
	options := make([]huh.Option[committype.CommitType], 0, len(types))
	for _, t := range types {
		options = append(options, huh.NewOption(fmt.Sprintf("%s: %s", t, t.Label()), t))
	}
	return options
}

func branchTypeOptions() []huh.Option[committype.BranchType] {
	types := committype.BranchTypes()
	options := make([]huh.Option[committype.BranchType], 0, len(types))
	for _, t := range types {
		options = append(options, huh.NewOption(fmt.Sprintf("%s: %s", t, t.Label()), t))
	}
	return options
}

func stagingOptions() []huh.Option[workflow.StagingAction] {
	return []huh.Option[workflow.StagingAction]{
		huh.NewOption("Stage all changed files", workflow.StageEverything),
		huh.NewOption("Choose which files to stage", workflow.PickFiles),
		huh.NewOption("Cancel", workflow.CancelStaging),
	}
}

// fileOptions pre-checks files that are already staged, so unchecking one
// unstages it and checking a new one stages it.
func fileOptions(files []git.FileStatus) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(files))
	for _, fs := range files {
		options = append(options, huh.NewOption(fs.Path, fs.Path).Selected(fs.Staged))
	}
	return options
}

func mapCancel(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return workflow.ErrCancelled
	}
	return err
}
