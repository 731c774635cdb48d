package gitutil

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var branchNamePattern = regexp.MustCompile(`^[A-Za-z0-9\-_/]+$`)

// ValidateBranchName validates a branch name against the allowed character
// set and common git-illegal patterns.
func ValidateBranchName(name string) error {
	if name == "" {
		return errors.New("branch name cannot be empty")
	}
	if !branchNamePattern.MatchString(name) {
		return fmt.Errorf("branch name may only contain letters, digits, '-', '_' and '/': %s", name)
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("branch name cannot start with '-': %s", name)
	}
	if strings.Contains(name, "//") {
		return fmt.Errorf("branch name cannot contain empty path segments: %s", name)
	}
	if strings.HasSuffix(name, "/") {
		return fmt.Errorf("branch name cannot end with '/': %s", name)
	}
	return nil
}
