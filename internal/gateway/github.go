// Package gateway provides a gateway to the GitHub REST API,
// abstracting away the underlying go-github client.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
)

const (
	// DefaultBaseURL is the public GitHub REST API root.
	DefaultBaseURL = "https://api.github.com/"
	// UserAgent identifies this client as required by the GitHub API usage policy.
	UserAgent = "github-repo-analyzer"
)

// Fetcher defines the behavior of a gateway for fetching raw documents from GitHub.
type Fetcher interface {
	FetchRepository(ctx context.Context, target string) ([]byte, error)
	FetchUser(ctx context.Context, login string) ([]byte, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The client is unauthenticated and uses the default http.Client.
func NewGitHubGateway(baseURL string, logger *log.Logger) (Fetcher, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL %q: %w", baseURL, err)
	}
	restClient := github.NewClient(nil)
	restClient.BaseURL = u
	restClient.UserAgent = UserAgent
	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

// FetchRepository issues GET repos/{target}. The target is used verbatim.
func (g *GitHubGateway) FetchRepository(ctx context.Context, target string) ([]byte, error) {
	body, err := g.get(ctx, "repos/"+target)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository %q: %w", target, err)
	}
	return body, nil
}

// FetchUser issues GET users/{login}.
func (g *GitHubGateway) FetchUser(ctx context.Context, login string) ([]byte, error) {
	body, err := g.get(ctx, "users/"+login)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %q: %w", login, err)
	}
	return body, nil
}

// get performs exactly one request. Non-2xx statuses come back as *github.ErrorResponse.
// go-github also reports 202 Accepted as *github.AcceptedError; neither endpoint answers 202.
func (g *GitHubGateway) get(ctx context.Context, path string) ([]byte, error) {
	req, err := g.restClient.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	g.logger.Printf("GET %s", req.URL)

	var buf bytes.Buffer
	resp, err := g.restClient.Do(ctx, req, &buf)
	if err != nil {
		return nil, err
	}
	g.logger.Printf("Received %s (%d bytes)", resp.Status, buf.Len())
	return buf.Bytes(), nil
}
