package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/reviewloop/internal/domain/model"
)

func TestCheckIsRunning(t *testing.T) {
	for _, state := range []string{"pending", "in_progress", "queued", "waiting", "requested", "PENDING", "In_Progress"} {
		assert.True(t, model.Check{State: state}.IsRunning(), state)
	}

	for _, state := range []string{"success", "failure", "neutral", "cancelled", "skipped", ""} {
		assert.False(t, model.Check{State: state}.IsRunning(), state)
	}
}

func TestFindCheck(t *testing.T) {
	checks := []model.Check{
		{Name: "build", State: "success"},
		{Name: "CodeRabbit Review", State: "pending"},
		{Name: "coderabbit summary", State: "queued"},
	}

	found := model.FindCheck(checks, "coderabbit")
	assert.NotNil(t, found)
	assert.Equal(t, "CodeRabbit Review", found.Name, "first match wins")

	assert.Nil(t, model.FindCheck(checks, "sonar"))
	assert.Nil(t, model.FindCheck(nil, "coderabbit"))
}

func TestHasReactionFrom(t *testing.T) {
	review := model.Review{
		Reactions: []model.Reaction{
			{User: "alice", Content: "THUMBS_UP"},
			{User: "bob", Content: "HEART"},
		},
	}

	assert.True(t, review.HasReactionFrom("alice", model.ReactionThumbsUp))
	assert.False(t, review.HasReactionFrom("bob", model.ReactionThumbsUp))
	assert.False(t, review.HasReactionFrom("carol", model.ReactionThumbsUp))
}

func TestReportEmpty(t *testing.T) {
	assert.True(t, model.Report{}.Empty())
	assert.False(t, model.Report{Threads: []model.ThreadEntry{{}}}.Empty())
	assert.False(t, model.Report{Reviews: []model.ReviewEntry{{}}}.Empty())
}
