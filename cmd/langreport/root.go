package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for langreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langreport",
		Short: "Keep a repository language table in README.md up to date",
		Long: `langreport fetches the per-language byte counts of a GitHub repository
and rewrites the block between <!--LANGUAGE_SECTION_START--> and
<!--LANGUAGE_SECTION_END--> in README.md with a percentage table.

The repository is read from GITHUB_REPOSITORY and an optional access token
from GITHUB_TOKEN, so the tool runs unconfigured inside GitHub Actions.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewUpdateCmd())
	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if code := execute(NewRootCmd(), os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// execute runs cmd, prints any error to stderr and returns the exit status.
func execute(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
