package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/michaelmagan/vuku/internal/committype"
	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		answers  CommitAnswers
		opts     Options
		expected string
	}{
		{
			name: "minimal",
			answers: CommitAnswers{
				Type:        committype.Fix,
				Description: "handle nil pointer",
			},
			opts:     Options{SkipEmoji: true},
			expected: "fix: handle nil pointer",
		},
		{
			name: "with emoji",
			answers: CommitAnswers{
				Type:        committype.Fix,
				Description: "handle nil pointer",
			},
			expected: "🐛 fix: handle nil pointer",
		},
		{
			name: "with scope",
			answers: CommitAnswers{
				Type:        committype.Feat,
				Scope:       "api",
				Description: "add pagination",
			},
			opts:     Options{SkipEmoji: true},
			expected: "feat(api): add pagination",
		},
		{
			name: "breaking marker only",
			answers: CommitAnswers{
				Type:        committype.Refactor,
				Scope:       "core",
				Description: "rename public API",
				Breaking:    true,
			},
			opts:     Options{SkipEmoji: true},
			expected: "refactor(core)!: rename public API",
		},
		{
			name: "breaking with paragraph",
			answers: CommitAnswers{
				Type:        committype.Feat,
				Description: "drop legacy endpoint",
				Breaking:    true,
			},
			opts:     Options{SkipEmoji: true, BreakingParagraph: true},
			expected: "feat!: drop legacy endpoint\n\nBREAKING CHANGE: drop legacy endpoint",
		},
		{
			name: "full message",
			answers: CommitAnswers{
				Type:        committype.Feat,
				Scope:       "auth",
				Description: "add OAuth2 support",
				Body:        "Implemented OAuth2 flow",
				Footer:      "Closes #123",
			},
			expected: "✨ feat(auth): add OAuth2 support\n\nImplemented OAuth2 flow\n\nCloses #123",
		},
		{
			name: "body without footer",
			answers: CommitAnswers{
				Type:        committype.Docs,
				Description: "rewrite install guide",
				Body:        "Covers homebrew and scoop",
			},
			opts:     Options{SkipEmoji: true},
			expected: "docs: rewrite install guide\n\nCovers homebrew and scoop",
		},
		{
			name: "footer without body",
			answers: CommitAnswers{
				Type:        committype.Chore,
				Description: "bump deps",
				Footer:      "Refs #42",
			},
			opts:     Options{SkipEmoji: true},
			expected: "chore: bump deps\n\nRefs #42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Message(tt.answers, tt.opts))
		})
	}
}

func TestMessageHeaderShape(t *testing.T) {
	headerPattern := regexp.MustCompile(`^[a-z]+(\([^)]+\))?!?: .+$`)

	answersCombos := []CommitAnswers{
		{Type: committype.Feat, Description: "x"},
		{Type: committype.Feat, Scope: "s", Description: "x"},
		{Type: committype.Feat, Scope: "s", Description: "x", Breaking: true},
		{Type: committype.Fix, Description: "x", Breaking: true, Body: "b", Footer: "f"},
	}

	for _, answers := range answersCombos {
		msg := Message(answers, Options{SkipEmoji: true, BreakingParagraph: true})
		header := strings.SplitN(msg, "\n", 2)[0]
		assert.Regexp(t, headerPattern, header)
	}
}

func TestMessageIsDeterministic(t *testing.T) {
	answers := CommitAnswers{
		Type:        committype.Perf,
		Scope:       "parser",
		Description: "cache token lookups",
		Breaking:    true,
		Body:        "Avoids re-tokenizing on every call",
		Footer:      "Closes #9",
	}
	opts := Options{BreakingParagraph: true}

	assert.Equal(t, Message(answers, opts), Message(answers, opts))
}

func TestMessageSkipEmojiNeverEmitsGlyph(t *testing.T) {
	for _, ct := range committype.CommitTypes() {
		msg := Message(CommitAnswers{Type: ct, Description: "x"}, Options{SkipEmoji: true})
		assert.True(t, strings.HasPrefix(msg, ct.String()), "message %q should start with the bare type", msg)
		assert.NotContains(t, msg, ct.Emoji())
	}
}

func TestMessageBreakingParagraphAppearsOnce(t *testing.T) {
	answers := CommitAnswers{
		Type:        committype.Feat,
		Description: "remove v1 API",
		Breaking:    true,
		Body:        "The v1 endpoints are gone",
		Footer:      "Refs #100",
	}

	msg := Message(answers, Options{SkipEmoji: true, BreakingParagraph: true})
	assert.Equal(t, 1, strings.Count(msg, BreakingChangePrefix))

	msg = Message(answers, Options{SkipEmoji: true})
	assert.NotContains(t, msg, BreakingChangePrefix)
	assert.Contains(t, strings.SplitN(msg, "\n", 2)[0], "!")
}

func TestBranchName(t *testing.T) {
	tests := []struct {
		name       string
		branchType committype.BranchType
		branchName string
		expected   string
	}{
		{name: "spaces to hyphens", branchType: committype.Feature, branchName: "Add New Thing", expected: "feature/add-new-thing"},
		{name: "already clean", branchType: committype.Bugfix, branchName: "login-retry", expected: "bugfix/login-retry"},
		{name: "whitespace runs", branchType: committype.Hotfix, branchName: "fix   the \t thing", expected: "hotfix/fix-the-thing"},
		{name: "surrounding whitespace", branchType: committype.Release, branchName: "  1-2-0  ", expected: "release/1-2-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BranchName(tt.branchType, tt.branchName))
		})
	}
}
