package committype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitTypes(t *testing.T) {
	types := CommitTypes()

	assert.Len(t, types, 11)
	assert.Equal(t, Feat, types[0])
	assert.Equal(t, Revert, types[len(types)-1])

	for _, ct := range types {
		assert.True(t, ct.Valid(), "type %q should be valid", ct)
		assert.NotEmpty(t, ct.Label(), "type %q should have a label", ct)
		assert.NotEmpty(t, ct.Emoji(), "type %q should have an emoji", ct)
	}
}

func TestCommitTypeEmoji(t *testing.T) {
	tests := []struct {
		name     string
		input    CommitType
		expected string
	}{
		{name: "feat type", input: Feat, expected: "✨"},
		{name: "fix type", input: Fix, expected: "🐛"},
		{name: "docs type", input: Docs, expected: "📝"},
		{name: "revert type", input: Revert, expected: "🔙"},
		{name: "unknown type", input: CommitType("wip"), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Emoji())
		})
	}
}

func TestCommitTypeValid(t *testing.T) {
	assert.True(t, Chore.Valid())
	assert.False(t, CommitType("").Valid())
	assert.False(t, CommitType("unknown").Valid())
}

func TestBranchTypes(t *testing.T) {
	types := BranchTypes()

	assert.Equal(t, []BranchType{Feature, Bugfix, Hotfix, Release, Support}, types)

	for _, bt := range types {
		assert.NotEmpty(t, bt.Label(), "branch type %q should have a label", bt)
	}
}

func TestTablesAreCopies(t *testing.T) {
	types := CommitTypes()
	types[0] = CommitType("mutated")

	assert.Equal(t, Feat, CommitTypes()[0])
}
