package ghcli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ericfisherdev/reviewloop/internal/domain/model"
)

// prCommentsQuery fetches up to 50 PR-level reviews (with up to 10 reactions
// each) and up to 100 review threads with their first comment, in one call.
const prCommentsQuery = `query($owner: String!, $repo: String!, $pr: Int!) {
	repository(owner: $owner, name: $repo) {
		pullRequest(number: $pr) {
			reviews(first: 50) {
				nodes {
					id
					author { login }
					body
					reactions(first: 10) {
						nodes { user { login } content }
					}
				}
			}
			reviewThreads(first: 100) {
				nodes {
					id
					isResolved
					comments(first: 1) {
						nodes { author { login } path line body }
					}
				}
			}
		}
	}
}`

// actorJSON is a GraphQL actor; the pointer distinguishes a deleted account
// (null author) from an empty login.
type actorJSON struct {
	Login string `json:"login"`
}

// prCommentsResponse is the expected shape of the review-comment query.
// pullRequest is a pointer so a null (PR not found) is distinguishable from
// an empty object; decoding rejects that case instead of defaulting.
type prCommentsResponse struct {
	Data struct {
		Repository *struct {
			PullRequest *struct {
				Reviews struct {
					Nodes []struct {
						ID        string     `json:"id"`
						Author    *actorJSON `json:"author"`
						Body      string     `json:"body"`
						Reactions struct {
							Nodes []struct {
								User    *actorJSON `json:"user"`
								Content string     `json:"content"`
							} `json:"nodes"`
						} `json:"reactions"`
					} `json:"nodes"`
				} `json:"reviews"`
				ReviewThreads struct {
					Nodes []struct {
						ID         string `json:"id"`
						IsResolved bool   `json:"isResolved"`
						Comments   struct {
							Nodes []struct {
								Author *actorJSON `json:"author"`
								Path   string     `json:"path"`
								Line   *int       `json:"line"`
								Body   string     `json:"body"`
							} `json:"nodes"`
						} `json:"comments"`
					} `json:"nodes"`
				} `json:"reviewThreads"`
			} `json:"pullRequest"`
		} `json:"repository"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchPRComments runs the review-comment GraphQL query through
// `gh api graphql` and maps the response to domain types. A response whose
// shape does not match the query (missing repository or pullRequest) is an
// error rather than an empty result, so upstream schema drift surfaces
// instead of masking itself as "no comments".
func (c *Client) FetchPRComments(ctx context.Context, repo model.RepoIdentity, prNumber int) (*model.PRComments, error) {
	out, err := c.runner.Run(ctx, "gh", "api", "graphql",
		"-F", "owner="+repo.Owner,
		"-F", "repo="+repo.Name,
		"-F", "pr="+strconv.Itoa(prNumber),
		"-f", "query="+prCommentsQuery,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching review comments: %w", err)
	}

	var resp prCommentsResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, fmt.Errorf("parsing review comments JSON: %w", err)
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("review comments query: %s", resp.Errors[0].Message)
	}
	if resp.Data.Repository == nil {
		return nil, fmt.Errorf("repository %s not found in query response", repo.FullName())
	}
	if resp.Data.Repository.PullRequest == nil {
		return nil, fmt.Errorf("PR #%d not found in query response", prNumber)
	}

	pr := resp.Data.Repository.PullRequest

	result := &model.PRComments{}

	for _, node := range pr.Reviews.Nodes {
		review := model.Review{
			ID:     node.ID,
			Author: loginOf(node.Author),
			Body:   node.Body,
		}
		for _, reaction := range node.Reactions.Nodes {
			review.Reactions = append(review.Reactions, model.Reaction{
				User:    loginOf(reaction.User),
				Content: reaction.Content,
			})
		}
		result.Reviews = append(result.Reviews, review)
	}

	for _, node := range pr.ReviewThreads.Nodes {
		thread := model.ReviewThread{
			ID:       node.ID,
			Resolved: node.IsResolved,
		}
		for _, comment := range node.Comments.Nodes {
			line := 0
			if comment.Line != nil {
				line = *comment.Line
			}
			thread.Comments = append(thread.Comments, model.ThreadComment{
				Author: loginOf(comment.Author),
				Path:   comment.Path,
				Line:   line,
				Body:   comment.Body,
			})
		}
		result.Threads = append(result.Threads, thread)
	}

	return result, nil
}

// loginOf returns the actor's login, or "unknown" for deleted accounts.
func loginOf(actor *actorJSON) string {
	if actor == nil || actor.Login == "" {
		return "unknown"
	}
	return actor.Login
}
