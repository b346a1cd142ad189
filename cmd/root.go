// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/naka-gawa/github-analyzer/internal/gateway"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd(gateway.NewGitHubGateway)

// newRootCmd builds the command tree. newFetcher is only called once the arguments are valid.
func newRootCmd(newFetcher fetcherFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "github-analyzer <owner/repo | username>",
		Short: "A CLI tool to summarize a GitHub repository or user.",
		Long: `github-analyzer looks up a GitHub repository (owner/repo) or a user (username)
through the public REST API and prints a short summary.
Use --output to also save the decoded result as JSON.
An empty or whitespace-only target is rejected before any request is sent.`,
		Example: `  github-analyzer rust-lang/rust
  github-analyzer octocat --output report.json`,
		Args:          cobra.MatchAll(cobra.ExactArgs(1), nonEmptyTarget),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], newFetcher)
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	cmd.Flags().StringP("output", "o", "", "Optional output file for the JSON result (e.g. report.json)")
	cmd.Flags().String("base-url", gateway.DefaultBaseURL, "GitHub REST API base URL")
	_ = cmd.Flags().MarkHidden("base-url")
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		errorColor(os.Stderr).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// errorColor decides on color for f itself; color.NoColor only reflects stdout.
func errorColor(f *os.File) *color.Color {
	c := color.New(color.FgRed)
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}
