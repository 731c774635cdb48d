package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()

	opts := FromViper(v)

	assert.False(t, opts.SkipEmoji)
	assert.False(t, opts.Detailed)
	assert.False(t, opts.BreakingParagraph)
	assert.False(t, opts.Verbose)
}

func TestFromViperReadsBoundValues(t *testing.T) {
	v := viper.New()
	v.Set(KeySkipEmoji, true)
	v.Set(KeyDetailed, true)
	v.Set(KeyBreakingParagraph, true)
	v.Set(KeyVerbose, true)

	opts := FromViper(v)

	assert.True(t, opts.SkipEmoji)
	assert.True(t, opts.Detailed)
	assert.True(t, opts.BreakingParagraph)
	assert.True(t, opts.Verbose)
}

func TestKeysMatchFlagNames(t *testing.T) {
	assert.Equal(t, "skip-emoji", KeySkipEmoji)
	assert.Equal(t, "detailed", KeyDetailed)
	assert.Equal(t, "breaking-paragraph", KeyBreakingParagraph)
	assert.Equal(t, "verbose", KeyVerbose)
}
