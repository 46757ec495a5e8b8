package driven

import (
	"context"

	"github.com/ericfisherdev/reviewloop/internal/domain/model"
)

// GitHubClient defines the driven port for the GitHub lookups the tool
// needs. Implementations delegate all authentication and transport to an
// external CLI; none of these methods retry on failure.
type GitHubClient interface {
	// RepoIdentity resolves the owner and name of the current repository.
	RepoIdentity(ctx context.Context) (model.RepoIdentity, error)
	// CurrentPRNumber resolves the PR associated with the current branch.
	// It fails when no PR exists for the branch.
	CurrentPRNumber(ctx context.Context) (int, error)
	// CurrentUser returns the login of the authenticated user.
	CurrentUser(ctx context.Context) (string, error)
	// ListChecks returns the CI check snapshots for the given PR.
	ListChecks(ctx context.Context, prNumber int) ([]model.Check, error)
	// FetchPRComments performs the single structured query for a PR's
	// reviews (with reactions) and review threads (with first comments).
	FetchPRComments(ctx context.Context, repo model.RepoIdentity, prNumber int) (*model.PRComments, error)
}
