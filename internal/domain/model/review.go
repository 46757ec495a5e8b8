package model

// ReactionThumbsUp is the reaction content used as the "review has been
// handled" acknowledgment marker.
const ReactionThumbsUp = "THUMBS_UP"

// Reaction is a single emoji reaction left on a review.
type Reaction struct {
	User    string
	Content string // GraphQL reaction content enum value, e.g. "THUMBS_UP".
}

// Review is a top-level, non-location-anchored review body posted on a PR.
type Review struct {
	ID        string // GraphQL node ID.
	Author    string
	Body      string
	Reactions []Reaction
}

// HasReactionFrom reports whether the given user left a reaction with the
// given content on this review.
func (r Review) HasReactionFrom(user, content string) bool {
	for _, reaction := range r.Reactions {
		if reaction.User == user && reaction.Content == content {
			return true
		}
	}
	return false
}

// ThreadComment is a single comment inside a review thread.
type ThreadComment struct {
	Author string
	Path   string
	Line   int // 0 when the comment is not anchored to a specific line.
	Body   string
}

// ReviewThread is an inline, location-anchored comment conversation on a PR
// diff. Only the first comment is fetched; it represents the thread.
type ReviewThread struct {
	ID       string // GraphQL node ID.
	Resolved bool
	Comments []ThreadComment
}

// PRComments is the full result of one review-comment fetch for a PR.
type PRComments struct {
	Reviews []Review
	Threads []ReviewThread
}

// RepoIdentity identifies a repository by owner and name.
type RepoIdentity struct {
	Owner string
	Name  string
}

// FullName returns the repository's owner/name form.
func (r RepoIdentity) FullName() string {
	return r.Owner + "/" + r.Name
}
