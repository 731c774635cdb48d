// Package formatter builds Conventional Commits messages and branch names
// from collected answers. All functions are pure.
package formatter

import (
	"regexp"
	"strings"

	"github.com/michaelmagan/vuku/internal/committype"
)

// BreakingChangePrefix starts the paragraph appended for breaking changes.
const BreakingChangePrefix = "BREAKING CHANGE: "

var whitespaceRunRegex = regexp.MustCompile(`\s+`)

// CommitAnswers holds the fields collected from the user for one commit.
// Scope, Body and Footer are optional and empty outside detailed mode.
type CommitAnswers struct {
	Type        committype.CommitType
	Scope       string
	Description string
	Breaking    bool
	Body        string
	Footer      string
}

// Options controls message rendering.
type Options struct {
	// SkipEmoji omits the type glyph from the header line.
	SkipEmoji bool
	// BreakingParagraph appends a "BREAKING CHANGE:" paragraph when the
	// breaking flag is set, in addition to the "!" header marker.
	BreakingParagraph bool
}

// Message renders the final commit message:
//
//	[emoji ]type[(scope)][!]: description
//
//	[body]
//
//	[BREAKING CHANGE: ...]
//
//	[footer]
//
// Empty optional sections are omitted together with their separators.
func Message(answers CommitAnswers, opts Options) string {
	var header strings.Builder

	if !opts.SkipEmoji {
		if emoji := answers.Type.Emoji(); emoji != "" {
			header.WriteString(emoji)
			header.WriteString(" ")
		}
	}

	header.WriteString(answers.Type.String())
	if answers.Scope != "" {
		header.WriteString("(")
		header.WriteString(answers.Scope)
		header.WriteString(")")
	}
	if answers.Breaking {
		header.WriteString("!")
	}
	header.WriteString(": ")
	header.WriteString(answers.Description)

	sections := []string{header.String()}
	if answers.Body != "" {
		sections = append(sections, answers.Body)
	}
	if answers.Breaking && opts.BreakingParagraph {
		sections = append(sections, BreakingChangePrefix+answers.Description)
	}
	if answers.Footer != "" {
		sections = append(sections, answers.Footer)
	}

	return strings.Join(sections, "\n\n")
}

// BranchName builds "type/name" with the name lower-cased and whitespace
// runs collapsed to single hyphens.
func BranchName(branchType committype.BranchType, name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = whitespaceRunRegex.ReplaceAllString(normalized, "-")
	return branchType.String() + "/" + normalized
}
