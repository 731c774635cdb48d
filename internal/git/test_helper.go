//go:build !prod

package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/michaelmagan/vuku/internal/gitcmd"
)

// newTestRepo creates an isolated git repository with one initial commit
// and returns a Client bound to it. The repository lives in a temp
// directory that is removed when the test ends.
func newTestRepo(t *testing.T) (*Client, string) {
	t.Helper()

	dir := t.TempDir()
	runner := gitcmd.Runner{Dir: dir}

	mustRun(t, runner, "init", "-b", "main")
	mustRun(t, runner, "config", "user.email", "vuku-test@example.com")
	mustRun(t, runner, "config", "user.name", "vuku test")
	mustRun(t, runner, "config", "commit.gpgsign", "false")

	writeFile(t, dir, "README.md", "# test repo\n")
	mustRun(t, runner, "add", ".")
	mustRun(t, runner, "commit", "-m", "initial commit")

	return NewClient(Options{Dir: dir}), dir
}

func mustRun(t *testing.T, runner gitcmd.Runner, args ...string) {
	t.Helper()

	result, err := runner.Run(args...)
	if err != nil {
		t.Fatalf("git %v failed: %v\nstderr: %s", args, err, result.StderrString(true))
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}
