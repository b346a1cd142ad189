// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is returned when a required field is absent or null in a response body.
var ErrMissingField = errors.New("missing required field")

// Mode is the kind of lookup selected for a target.
type Mode int

const (
	ModeUser Mode = iota
	ModeRepository
)

func (m Mode) String() string {
	switch m {
	case ModeRepository:
		return "repository"
	case ModeUser:
		return "user"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// SelectMode treats any target containing "/" as owner/repo and everything else as a login.
// It does not validate the target; a bogus repository is only detected by the API.
func SelectMode(target string) Mode {
	if strings.Contains(target, "/") {
		return ModeRepository
	}
	return ModeUser
}

// License is the license block attached to a repository.
type License struct {
	Name string `json:"name"`
}

// Repository is a snapshot of the /repos/{owner}/{repo} response.
// Optional fields are pointers and serialize as null when absent.
type Repository struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	StargazersCount uint32   `json:"stargazers_count"`
	ForksCount      uint32   `json:"forks_count"`
	OpenIssuesCount uint32   `json:"open_issues_count"`
	WatchersCount   uint32   `json:"watchers_count"`
	Language        *string  `json:"language"`
	License         *License `json:"license"`
	HTMLURL         string   `json:"html_url"`
}

// User is a snapshot of the /users/{login} response.
type User struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	PublicRepos uint32  `json:"public_repos"`
	Followers   uint32  `json:"followers"`
	Following   uint32  `json:"following"`
	CreatedAt   string  `json:"created_at"`
	HTMLURL     string  `json:"html_url"`
}

var (
	licenseRequired    = []string{"name"}
	repositoryRequired = []string{"name", "stargazers_count", "forks_count", "open_issues_count", "watchers_count", "html_url"}
	userRequired       = []string{"login", "public_repos", "followers", "following", "created_at", "html_url"}
)

func (l *License) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, licenseRequired); err != nil {
		return fmt.Errorf("license: %w", err)
	}
	type plain License
	return json.Unmarshal(data, (*plain)(l))
}

func (r *Repository) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, repositoryRequired); err != nil {
		return err
	}
	type plain Repository
	return json.Unmarshal(data, (*plain)(r))
}

func (u *User) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, userRequired); err != nil {
		return err
	}
	type plain User
	return json.Unmarshal(data, (*plain)(u))
}

// DecodeRepository decodes a repository response body. Unknown fields are ignored.
func DecodeRepository(data []byte) (*Repository, error) {
	var repo Repository
	if err := json.Unmarshal(data, &repo); err != nil {
		return nil, fmt.Errorf("failed to decode repository response: %w", err)
	}
	return &repo, nil
}

// DecodeUser decodes a user response body. Unknown fields are ignored.
func DecodeUser(data []byte) (*User, error) {
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}
	return &user, nil
}

// requireFields checks that data is a JSON object carrying a non-null value for every key.
func requireFields(data []byte, keys []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			return fmt.Errorf("%w %q", ErrMissingField, key)
		}
	}
	return nil
}
