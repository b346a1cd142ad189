// Package report renders decoded records for the terminal and persists them as JSON.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/naka-gawa/github-analyzer/internal/domain"
)

const notAvailable = "N/A"

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// RenderRepository writes the repository summary for target to w.
func RenderRepository(w io.Writer, target string, repo *domain.Repository) error {
	license := notAvailable
	if repo.License != nil {
		license = repo.License.Name
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "🔍 Analyzing GitHub repo: %s\n\n", target)
	fmt.Fprintf(&buf, "📄 Name       : %s\n", repo.Name)
	fmt.Fprintf(&buf, "💬 Description: %s\n", valueOr(repo.Description, ""))
	fmt.Fprintf(&buf, "⭐ Stars      : %d\n", repo.StargazersCount)
	fmt.Fprintf(&buf, "🍴 Forks      : %d\n", repo.ForksCount)
	fmt.Fprintf(&buf, "👀 Watchers   : %d\n", repo.WatchersCount)
	fmt.Fprintf(&buf, "🐛 Issues     : %d\n", repo.OpenIssuesCount)
	fmt.Fprintf(&buf, "📝 License    : %s\n", license)
	fmt.Fprintf(&buf, "💻 Language   : %s\n", valueOr(repo.Language, "Unknown"))
	fmt.Fprintf(&buf, "🔗 URL        : %s\n", repo.HTMLURL)
	return flush(w, &buf)
}

// RenderUser writes the user summary for target to w.
func RenderUser(w io.Writer, target string, user *domain.User) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "👤 GitHub User: %s\n\n", target)
	fmt.Fprintf(&buf, "🧑 Name       : %s\n", valueOr(user.Name, notAvailable))
	fmt.Fprintf(&buf, "🏢 Company    : %s\n", valueOr(user.Company, notAvailable))
	fmt.Fprintf(&buf, "📍 Location   : %s\n", valueOr(user.Location, notAvailable))
	fmt.Fprintf(&buf, "📦 Public Repos: %d\n", user.PublicRepos)
	fmt.Fprintf(&buf, "👥 Followers  : %d\n", user.Followers)
	fmt.Fprintf(&buf, "🤝 Following  : %d\n", user.Following)
	fmt.Fprintf(&buf, "🗓️  Joined     : %s\n", user.CreatedAt)
	fmt.Fprintf(&buf, "🔗 URL        : %s\n", user.HTMLURL)
	return flush(w, &buf)
}

// RenderSaved writes the confirmation shown after the JSON file was written.
func RenderSaved(w io.Writer, mode domain.Mode, path string) error {
	kind := "User"
	if mode == domain.ModeRepository {
		kind = "Repo"
	}
	_, err := color.New(color.FgGreen).Fprintf(w, "\n✅ %s output saved to '%s'\n", kind, path)
	return err
}

func flush(w io.Writer, buf *bytes.Buffer) error {
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
