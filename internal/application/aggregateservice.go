package application

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/ericfisherdev/reviewloop/internal/domain/model"
	"github.com/ericfisherdev/reviewloop/internal/domain/port/driven"
)

// htmlCommentPattern matches HTML comment markup, non-greedy, spanning
// newlines. Bot reviews hide bookkeeping metadata in such comments.
var htmlCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

// AggregateService assembles the unresolved-review report for the current
// PR: one structured fetch, two linear filter pipelines, no state between
// runs.
type AggregateService struct {
	gh       driven.GitHubClient
	botLogin string // Review author that identifies the bot, e.g. "coderabbitai".
}

// NewAggregateService creates an AggregateService watching reviews authored
// by botLogin.
func NewAggregateService(gh driven.GitHubClient, botLogin string) *AggregateService {
	return &AggregateService{gh: gh, botLogin: botLogin}
}

// Collect resolves the current repository, PR, and user, fetches the PR's
// review state, and returns the filtered report. Any lookup or fetch
// failure is fatal; no partial report is produced.
func (s *AggregateService) Collect(ctx context.Context) (*model.Report, error) {
	repo, err := s.gh.RepoIdentity(ctx)
	if err != nil {
		return nil, err
	}

	prNumber, err := s.gh.CurrentPRNumber(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.gh.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	comments, err := s.gh.FetchPRComments(ctx, repo, prNumber)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		PRNumber: prNumber,
		Threads:  s.filterThreads(comments.Threads),
		Reviews:  s.filterReviews(comments.Reviews, user),
	}

	slog.Debug("report collected",
		"repo", repo.FullName(),
		"pr", prNumber,
		"unresolved_threads", len(report.Threads),
		"unreacted_reviews", len(report.Reviews),
	)

	return report, nil
}

// filterReviews keeps bot-authored reviews with a non-empty body that the
// current user has not acknowledged with a thumbs-up reaction, and whose
// body survives comment-markup stripping. Order of checks matters for
// correctness: the acknowledgment check runs against the raw review before
// markup is stripped.
func (s *AggregateService) filterReviews(reviews []model.Review, user string) []model.ReviewEntry {
	var entries []model.ReviewEntry

	for _, review := range reviews {
		if !strings.EqualFold(review.Author, s.botLogin) || review.Body == "" {
			continue
		}
		if review.HasReactionFrom(user, model.ReactionThumbsUp) {
			continue
		}

		body := StripHTMLComments(review.Body)
		if body == "" {
			continue
		}

		entries = append(entries, model.ReviewEntry{ID: review.ID, Body: body})
	}

	return entries
}

// filterThreads keeps unresolved threads with at least one comment, taking
// each thread's first comment as its representative content.
func (s *AggregateService) filterThreads(threads []model.ReviewThread) []model.ThreadEntry {
	var entries []model.ThreadEntry

	for _, thread := range threads {
		if thread.Resolved || len(thread.Comments) == 0 {
			continue
		}

		first := thread.Comments[0]
		entries = append(entries, model.ThreadEntry{
			ID:       thread.ID,
			Location: formatLocation(first.Path, first.Line),
			Author:   first.Author,
			Body:     first.Body,
		})
	}

	return entries
}

// StripHTMLComments removes `<!-- ... -->` markup from a body and trims the
// surrounding whitespace.
func StripHTMLComments(body string) string {
	return strings.TrimSpace(htmlCommentPattern.ReplaceAllString(body, ""))
}

// formatLocation renders "path:line", with "?" standing in for an absent
// line number.
func formatLocation(path string, line int) string {
	if line <= 0 {
		return fmt.Sprintf("%s:?", path)
	}
	return path + ":" + strconv.Itoa(line)
}
