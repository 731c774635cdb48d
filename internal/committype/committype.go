// Package committype defines the fixed commit and branch type tables
// used throughout the prompt flow.
package committype

// CommitType is a Conventional Commits change type.
type CommitType string

const (
	Feat     CommitType = "feat"
	Fix      CommitType = "fix"
	Docs     CommitType = "docs"
	Style    CommitType = "style"
	Refactor CommitType = "refactor"
	Perf     CommitType = "perf"
	Test     CommitType = "test"
	Build    CommitType = "build"
	CI       CommitType = "ci"
	Chore    CommitType = "chore"
	Revert   CommitType = "revert"
)

// commitTypes holds the selectable types in display order.
var commitTypes = []CommitType{
	Feat, Fix, Docs, Style, Refactor, Perf, Test, Build, CI, Chore, Revert,
}

var commitLabels = map[CommitType]string{
	Feat:     "A new feature",
	Fix:      "A bug fix",
	Docs:     "Documentation only changes",
	Style:    "Changes that do not affect the meaning of the code",
	Refactor: "A code change that neither fixes a bug nor adds a feature",
	Perf:     "A code change that improves performance",
	Test:     "Adding missing tests or correcting existing tests",
	Build:    "Changes that affect the build system or external dependencies",
	CI:       "Changes to CI configuration files and scripts",
	Chore:    "Other changes that don't modify src or test files",
	Revert:   "Reverts a previous commit",
}

// emojiMap maps commit types to their presentation glyphs.
var emojiMap = map[CommitType]string{
	Feat:     "✨",
	Fix:      "🐛",
	Docs:     "📝",
	Style:    "💄",
	Refactor: "♻️",
	Perf:     "⚡",
	Test:     "✅",
	Build:    "🏗️",
	CI:       "🤖",
	Chore:    "🔧",
	Revert:   "🔙",
}

// String returns the type tag as used in the commit header.
func (t CommitType) String() string {
	return string(t)
}

// Label returns the human-readable description shown in the type picker.
func (t CommitType) Label() string {
	return commitLabels[t]
}

// Emoji returns the glyph for the type, or empty string if none is mapped.
func (t CommitType) Emoji() string {
	return emojiMap[t]
}

// Valid reports whether t is one of the known commit types.
func (t CommitType) Valid() bool {
	_, ok := commitLabels[t]
	return ok
}

// CommitTypes returns all selectable commit types in display order.
func CommitTypes() []CommitType {
	types := make([]CommitType, len(commitTypes))
	copy(types, commitTypes)
	return types
}

// BranchType is the prefix category for a new branch.
type BranchType string

const (
	Feature BranchType = "feature"
	Bugfix  BranchType = "bugfix"
	Hotfix  BranchType = "hotfix"
	Release BranchType = "release"
	Support BranchType = "support"
)

var branchTypes = []BranchType{Feature, Bugfix, Hotfix, Release, Support}

var branchLabels = map[BranchType]string{
	Feature: "New functionality",
	Bugfix:  "Fix for a bug on an existing branch",
	Hotfix:  "Urgent fix against a release",
	Release: "Prepare a new release",
	Support: "Long-lived support line",
}

// String returns the branch prefix.
func (t BranchType) String() string {
	return string(t)
}

// Label returns the human-readable description shown in the branch picker.
func (t BranchType) Label() string {
	return branchLabels[t]
}

// BranchTypes returns all selectable branch types in display order.
func BranchTypes() []BranchType {
	types := make([]BranchType, len(branchTypes))
	copy(types, branchTypes)
	return types
}
