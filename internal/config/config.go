// Package config builds the immutable per-run options from the bound
// command-line flags. There is no config file and no environment lookup;
// viper only carries the flag values.
package config

import "github.com/spf13/viper"

// Viper keys, matching the root command flag names.
const (
	KeySkipEmoji         = "skip-emoji"
	KeyDetailed          = "detailed"
	KeyBreakingParagraph = "breaking-paragraph"
	KeyVerbose           = "verbose"
)

// Options is read once at startup and passed explicitly to the
// orchestrator and formatter. It never changes during a run.
type Options struct {
	// SkipEmoji omits the commit-type glyph from the message header.
	SkipEmoji bool
	// Detailed enables the scope, body and footer prompts.
	Detailed bool
	// BreakingParagraph appends a BREAKING CHANGE paragraph when the
	// breaking flag is set.
	BreakingParagraph bool
	// Verbose logs the underlying git invocations.
	Verbose bool
}

// FromViper reads the bound flag values into an Options value.
func FromViper(v *viper.Viper) Options {
	return Options{
		SkipEmoji:         v.GetBool(KeySkipEmoji),
		Detailed:          v.GetBool(KeyDetailed),
		BreakingParagraph: v.GetBool(KeyBreakingParagraph),
		Verbose:           v.GetBool(KeyVerbose),
	}
}
