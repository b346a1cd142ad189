package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSelectMode(t *testing.T) {
	testCases := []struct {
		target   string
		expected Mode
	}{
		{target: "a/b", expected: ModeRepository},
		{target: "rust-lang/rust", expected: ModeRepository},
		{target: "not/a/real/repo", expected: ModeRepository},
		{target: "/", expected: ModeRepository},
		{target: "alice", expected: ModeUser},
		{target: "octo-cat", expected: ModeUser},
	}
	for _, tc := range testCases {
		t.Run(tc.target, func(t *testing.T) {
			assert.Equal(t, tc.expected, SelectMode(tc.target))
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "repository", ModeRepository.String())
	assert.Equal(t, "user", ModeUser.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestDecodeRepository(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		expected    *Repository
		expectError bool
		missing     bool
	}{
		{
			name: "happy path - ignores unknown fields",
			body: `{"id": 1, "name": "rust", "full_name": "rust-lang/rust", "description": "Empowering everyone",
				"stargazers_count": 42, "forks_count": 7, "open_issues_count": 3, "watchers_count": 42,
				"language": "Rust", "license": {"key": "mit", "name": "MIT License"}, "html_url": "https://github.com/rust-lang/rust"}`,
			expected: &Repository{
				Name:            "rust",
				Description:     strPtr("Empowering everyone"),
				StargazersCount: 42,
				ForksCount:      7,
				OpenIssuesCount: 3,
				WatchersCount:   42,
				Language:        strPtr("Rust"),
				License:         &License{Name: "MIT License"},
				HTMLURL:         "https://github.com/rust-lang/rust",
			},
		},
		{
			name: "optional fields null or absent",
			body: `{"name": "r", "license": null, "language": null,
				"stargazers_count": 0, "forks_count": 0, "open_issues_count": 0, "watchers_count": 0, "html_url": "u"}`,
			expected: &Repository{Name: "r", HTMLURL: "u"},
		},
		{
			name:        "missing name",
			body:        `{"stargazers_count": 1, "forks_count": 1, "open_issues_count": 1, "watchers_count": 1, "html_url": "u"}`,
			expectError: true,
			missing:     true,
		},
		{
			name:        "null html_url",
			body:        `{"name": "r", "stargazers_count": 1, "forks_count": 1, "open_issues_count": 1, "watchers_count": 1, "html_url": null}`,
			expectError: true,
			missing:     true,
		},
		{
			name:        "license without name",
			body:        `{"name": "r", "stargazers_count": 1, "forks_count": 1, "open_issues_count": 1, "watchers_count": 1, "license": {}, "html_url": "u"}`,
			expectError: true,
			missing:     true,
		},
		{
			name:        "negative count",
			body:        `{"name": "r", "stargazers_count": -1, "forks_count": 1, "open_issues_count": 1, "watchers_count": 1, "html_url": "u"}`,
			expectError: true,
		},
		{
			name:        "error body from the API",
			body:        `{"message": "Not Found", "documentation_url": "https://docs.github.com"}`,
			expectError: true,
			missing:     true,
		},
		{
			name:        "not JSON",
			body:        `<html></html>`,
			expectError: true,
		},
		{
			name:        "null body",
			body:        `null`,
			expectError: true,
			missing:     true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := DecodeRepository([]byte(tc.body))
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, repo)
				assert.Contains(t, err.Error(), "failed to decode repository response")
				assert.Equal(t, tc.missing, errors.Is(err, ErrMissingField))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, repo)
		})
	}
}

func TestDecodeUser(t *testing.T) {
	body := `{"login": "octocat", "id": 583231, "name": "The Octocat", "company": null, "location": "San Francisco",
		"public_repos": 8, "followers": 9000, "following": 9, "created_at": "2011-01-25T18:44:36Z",
		"html_url": "https://github.com/octocat"}`

	user, err := DecodeUser([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, &User{
		Login:       "octocat",
		Name:        strPtr("The Octocat"),
		Location:    strPtr("San Francisco"),
		PublicRepos: 8,
		Followers:   9000,
		Following:   9,
		CreatedAt:   "2011-01-25T18:44:36Z",
		HTMLURL:     "https://github.com/octocat",
	}, user)

	_, err = DecodeUser([]byte(`{"login": "octocat", "public_repos": 1, "followers": 1, "following": 1, "html_url": "u"}`))
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), `"created_at"`)
}

func TestRoundTrip(t *testing.T) {
	repos := []*Repository{
		{
			Name:            "full",
			Description:     strPtr("desc"),
			StargazersCount: 42,
			ForksCount:      7,
			OpenIssuesCount: 1,
			WatchersCount:   42,
			Language:        strPtr("Go"),
			License:         &License{Name: "Apache License 2.0"},
			HTMLURL:         "https://github.com/a/full",
		},
		{Name: "bare", HTMLURL: "https://github.com/a/bare"},
	}
	for _, repo := range repos {
		t.Run("repository "+repo.Name, func(t *testing.T) {
			data, err := json.Marshal(repo)
			require.NoError(t, err)
			decoded, err := DecodeRepository(data)
			require.NoError(t, err)
			assert.Equal(t, repo, decoded)
		})
	}

	users := []*User{
		{
			Login:       "full",
			Name:        strPtr("Full Name"),
			Company:     strPtr("@github"),
			Location:    strPtr("Earth"),
			PublicRepos: 3,
			Followers:   2,
			Following:   1,
			CreatedAt:   "2020-01-01T00:00:00Z",
			HTMLURL:     "https://github.com/full",
		},
		{Login: "bare", CreatedAt: "not-a-date", HTMLURL: "https://github.com/bare"},
	}
	for _, user := range users {
		t.Run("user "+user.Login, func(t *testing.T) {
			data, err := json.Marshal(user)
			require.NoError(t, err)
			decoded, err := DecodeUser(data)
			require.NoError(t, err)
			assert.Equal(t, user, decoded)
		})
	}
}

func TestRepository_MarshalKeepsNulls(t *testing.T) {
	data, err := json.Marshal(&Repository{Name: "r", HTMLURL: "u"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "r", "description": null, "stargazers_count": 0, "forks_count": 0,
		"open_issues_count": 0, "watchers_count": 0, "language": null, "license": null, "html_url": "u"}`, string(data))
}
