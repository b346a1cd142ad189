// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"io"
	"log"

	"github.com/naka-gawa/github-analyzer/internal/domain"
	"github.com/naka-gawa/github-analyzer/internal/gateway"
	"github.com/naka-gawa/github-analyzer/internal/report"
)

// Analyzer is the use case for summarizing one repository or user.
// It runs fetch, decode, render and the optional save strictly in that order.
type Analyzer struct {
	fetcher gateway.Fetcher
	out     io.Writer
	logger  *log.Logger
}

// NewAnalyzer creates a new Analyzer instance writing its report to out.
func NewAnalyzer(fetcher gateway.Fetcher, out io.Writer, logger *log.Logger) *Analyzer {
	return &Analyzer{
		fetcher: fetcher,
		out:     out,
		logger:  logger,
	}
}

// Analyze looks up target and prints its summary. When outputPath is not empty the decoded
// record is also written there as JSON. Any error aborts the remaining steps; the report has
// already been printed when a save fails.
func (a *Analyzer) Analyze(ctx context.Context, target, outputPath string) error {
	mode := domain.SelectMode(target)
	a.logger.Printf("Usecase: analyzing %q as %s", target, mode)

	var record any
	switch mode {
	case domain.ModeRepository:
		body, err := a.fetcher.FetchRepository(ctx, target)
		if err != nil {
			return err
		}
		repo, err := domain.DecodeRepository(body)
		if err != nil {
			return err
		}
		if err := report.RenderRepository(a.out, target, repo); err != nil {
			return err
		}
		record = repo
	default:
		body, err := a.fetcher.FetchUser(ctx, target)
		if err != nil {
			return err
		}
		user, err := domain.DecodeUser(body)
		if err != nil {
			return err
		}
		if err := report.RenderUser(a.out, target, user); err != nil {
			return err
		}
		record = user
	}

	if outputPath == "" {
		a.logger.Println("Usecase: no output path, skipping save.")
		return nil
	}
	if err := report.WriteJSON(outputPath, record); err != nil {
		return err
	}
	a.logger.Printf("Usecase: saved %s record to %s", mode, outputPath)
	return report.RenderSaved(a.out, mode, outputPath)
}
