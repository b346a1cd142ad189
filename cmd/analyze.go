package cmd

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/naka-gawa/github-analyzer/internal/gateway"
	"github.com/naka-gawa/github-analyzer/internal/usecase"
	"github.com/spf13/cobra"
)

type fetcherFactory func(baseURL string, logger *log.Logger) (gateway.Fetcher, error)

func nonEmptyTarget(_ *cobra.Command, args []string) error {
	if strings.TrimSpace(args[0]) == "" {
		return errors.New("target must not be empty")
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, target string, newFetcher fetcherFactory) error {
	// Arguments are valid from here on; runtime failures should not print usage.
	cmd.SilenceUsage = true
	ctx := context.Background()

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
	if verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	output, _ := cmd.Flags().GetString("output")
	baseURL, _ := cmd.Flags().GetString("base-url")

	// Inject dependencies and run the main business logic.
	fetcher, err := newFetcher(baseURL, logger)
	if err != nil {
		return err
	}
	analyzer := usecase.NewAnalyzer(fetcher, cmd.OutOrStdout(), logger)
	return analyzer.Analyze(ctx, target, output)
}
