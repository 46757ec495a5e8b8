package ghcli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ericfisherdev/reviewloop/internal/domain/model"
	"github.com/ericfisherdev/reviewloop/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubClient = (*Client)(nil)

// Client implements the driven.GitHubClient port on top of the `gh` CLI.
type Client struct {
	runner driven.CommandRunner
}

// NewClient creates a gh-backed GitHub client using the given runner.
func NewClient(runner driven.CommandRunner) *Client {
	return &Client{runner: runner}
}

// repoViewResponse is the shape of `gh repo view --json owner,name`.
type repoViewResponse struct {
	Owner struct {
		Login string `json:"login"`
	} `json:"owner"`
	Name string `json:"name"`
}

// RepoIdentity resolves the current repository's owner and name.
func (c *Client) RepoIdentity(ctx context.Context) (model.RepoIdentity, error) {
	out, err := c.runner.Run(ctx, "gh", "repo", "view", "--json", "owner,name")
	if err != nil {
		return model.RepoIdentity{}, fmt.Errorf("resolving repository: %w", err)
	}

	var resp repoViewResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		return model.RepoIdentity{}, fmt.Errorf("parsing repository JSON: %w", err)
	}
	if resp.Owner.Login == "" || resp.Name == "" {
		return model.RepoIdentity{}, fmt.Errorf("incomplete repository identity in response %q", string(out))
	}

	return model.RepoIdentity{Owner: resp.Owner.Login, Name: resp.Name}, nil
}

// CurrentPRNumber resolves the PR number for the current branch.
// It fails with a descriptive error when no PR exists.
func (c *Client) CurrentPRNumber(ctx context.Context) (int, error) {
	out, err := c.runner.Run(ctx, "gh", "pr", "view", "--json", "number", "-q", ".number")
	if err != nil {
		return 0, fmt.Errorf("resolving PR for current branch: %w", err)
	}

	raw := strings.TrimSpace(string(out))
	if raw == "" {
		return 0, fmt.Errorf("no PR found for current branch")
	}

	number, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid PR number %q", raw)
	}

	return number, nil
}

// CurrentUser returns the authenticated user's login.
func (c *Client) CurrentUser(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "gh", "api", "user", "-q", ".login")
	if err != nil {
		return "", fmt.Errorf("resolving current user: %w", err)
	}

	login := strings.TrimSpace(string(out))
	if login == "" {
		return "", fmt.Errorf("empty login in gh api user response")
	}

	return login, nil
}

// checkJSON is one entry of `gh pr checks --json name,state`.
type checkJSON struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// ListChecks fetches the CI check snapshots for a PR. Any fetch or decode
// failure is returned to the caller; there is no retry here.
func (c *Client) ListChecks(ctx context.Context, prNumber int) ([]model.Check, error) {
	out, err := c.runner.Run(ctx, "gh", "pr", "checks", strconv.Itoa(prNumber), "--json", "name,state")
	if err != nil {
		return nil, fmt.Errorf("fetching PR checks: %w", err)
	}

	var raw []checkJSON
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("parsing PR checks JSON %q: %w", string(out), err)
	}

	checks := make([]model.Check, 0, len(raw))
	for _, entry := range raw {
		checks = append(checks, model.Check{Name: entry.Name, State: entry.State})
	}

	return checks, nil
}
