package cmd

import (
	"context"
	"fmt"

	"github.com/michaelmagan/vuku/internal/config"
	"github.com/michaelmagan/vuku/internal/git"
	"github.com/michaelmagan/vuku/internal/prompt"
	"github.com/michaelmagan/vuku/internal/ui"
	"github.com/michaelmagan/vuku/internal/workflow"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCtx = context.Background()

	skipEmoji         bool
	detailed          bool
	breakingParagraph bool
	verbose           bool

	rootCmd = &cobra.Command{
		Use:   "vuku",
		Short: "vuku - Conventional Commits assistant",
		Long: `vuku walks you through creating a git branch and a Conventional ` +
			`Commits message, stages the files you pick, commits, and optionally pushes.`,
		Version: fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkflow()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// SetContext installs the signal-aware context used for command execution.
func SetContext(ctx context.Context) {
	rootCtx = ctx
}

// RootCmd exposes the root command for documentation generation.
func RootCmd() *cobra.Command {
	return rootCmd
}

func Execute() error {
	return rootCmd.ExecuteContext(rootCtx)
}

func init() {
	rootCmd.Flags().BoolVarP(&skipEmoji, "skip-emoji", "s", false,
		"Omit the type emoji from the commit header")
	rootCmd.Flags().BoolVarP(&detailed, "detailed", "d", false,
		"Also prompt for scope, body and footer")
	rootCmd.Flags().BoolVar(&breakingParagraph, "breaking-paragraph", true,
		"Append a BREAKING CHANGE paragraph when the change is breaking")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false,
		"Show the underlying git commands")
	rootCmd.Flags().BoolP("version", "V", false, "Print version information")

	cobra.CheckErr(viper.BindPFlags(rootCmd.Flags()))
}

func runWorkflow() error {
	if err := prompt.CheckInteractive(); err != nil {
		return err
	}

	opts := config.FromViper(viper.GetViper())
	gitClient := git.NewClient(git.Options{Verbose: opts.Verbose})
	printer := ui.NewPrinter(outWriter(), errWriter())

	return workflow.New(gitClient, prompt.New(), opts, printer).Run()
}
