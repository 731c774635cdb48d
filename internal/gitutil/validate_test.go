package gitutil

import (
	"errors"
	"testing"

	"github.com/michaelmagan/vuku/internal/gitcmd"
	"github.com/stretchr/testify/assert"
)

func TestValidateBranchName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "add-oauth", wantErr: false},
		{name: "with prefix", input: "feature/add-oauth", wantErr: false},
		{name: "underscores and digits", input: "fix_issue_123", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "spaces", input: "add oauth", wantErr: true},
		{name: "leading dash", input: "-branch", wantErr: true},
		{name: "tilde", input: "branch~1", wantErr: true},
		{name: "double dots", input: "a..b", wantErr: true},
		{name: "empty segment", input: "feature//x", wantErr: true},
		{name: "trailing slash", input: "feature/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBranchName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapGitError(t *testing.T) {
	base := errors.New("exit status 1")

	t.Run("prefers stderr", func(t *testing.T) {
		result := gitcmd.Result{Stderr: []byte("fatal: not a git repository\n")}
		err := WrapGitError("failed to read status", result, base)

		assert.ErrorIs(t, err, base)
		assert.Contains(t, err.Error(), "fatal: not a git repository")
		assert.Contains(t, err.Error(), "failed to read status")
	})

	t.Run("falls back to action only", func(t *testing.T) {
		err := WrapGitError("failed to read status", gitcmd.Result{}, base)

		assert.ErrorIs(t, err, base)
		assert.Equal(t, "failed to read status: exit status 1", err.Error())
	})
}
