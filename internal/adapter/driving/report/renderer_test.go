package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/reviewloop/internal/adapter/driving/report"
	"github.com/ericfisherdev/reviewloop/internal/domain/model"
)

func TestRenderEmptyReport(t *testing.T) {
	doc := report.Render(&model.Report{PRNumber: 42})

	assert.Equal(t, "# Review Comments\n\n**PR:** #42\n\nNo unresolved comments.\n", doc)
}

func TestRenderFullReport(t *testing.T) {
	doc := report.Render(&model.Report{
		PRNumber: 7,
		Threads: []model.ThreadEntry{
			{ID: "TH1", Location: "a.py:10", Author: "coderabbitai", Body: "fix this"},
		},
		Reviews: []model.ReviewEntry{
			{ID: "RV1", Body: "Looks good"},
		},
	})

	assert.Contains(t, doc, "**PR:** #7\n")
	assert.Contains(t, doc, "**Inline threads (unresolved):** 1\n")
	assert.Contains(t, doc, "**Review comments (unreacted):** 1\n")

	// The two example commands are literal templates with placeholder IDs.
	assert.Contains(t, doc, `resolveReviewThread(input: {threadId: "THREAD_ID"})`)
	assert.Contains(t, doc, `addReaction(input: {subjectId: "REVIEW_ID", content: THUMBS_UP})`)

	assert.Contains(t, doc, "# Inline Comments (Unresolved)\n\n## a.py:10\n\n**Thread ID:** `TH1`\n**Author:** coderabbitai\n\nfix this")
	assert.Contains(t, doc, "# Review Comments (1)\n\n**Review ID:** `RV1`\n\nLooks good")
	assert.NotContains(t, doc, "No unresolved comments.")
}

func TestRenderSeparatesMultipleItems(t *testing.T) {
	doc := report.Render(&model.Report{
		PRNumber: 7,
		Threads: []model.ThreadEntry{
			{ID: "TH1", Location: "a.go:1", Author: "coderabbitai", Body: "one"},
			{ID: "TH2", Location: "b.go:2", Author: "coderabbitai", Body: "two"},
		},
	})

	assert.Contains(t, doc, "one\n\n---\n\n## b.go:2")
	assert.Contains(t, doc, "**Inline threads (unresolved):** 2\n")
	assert.Contains(t, doc, "**Review comments (unreacted):** 0\n")
	assert.NotContains(t, doc, "# Review Comments (0)", "empty review list renders no section")
}

func TestRenderReviewsOnly(t *testing.T) {
	doc := report.Render(&model.Report{
		PRNumber: 7,
		Reviews: []model.ReviewEntry{
			{ID: "RV1", Body: "Looks good"},
		},
	})

	assert.NotContains(t, doc, "# Inline Comments (Unresolved)")
	assert.Contains(t, doc, "# Review Comments (1)")
}

func TestRenderHTMLSanitizesReviewBodies(t *testing.T) {
	doc := report.Render(&model.Report{
		PRNumber: 7,
		Reviews: []model.ReviewEntry{
			{ID: "RV1", Body: "fine<script>alert(1)</script> **bold**"},
		},
	})

	html, err := report.RenderHTML(doc)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestWriteCreatesDirectoriesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".reviews", "prComments.md")

	require.NoError(t, report.Write(path, "first"))
	require.NoError(t, report.Write(path, "second"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content), "writes replace the whole file")
}

func TestRenderIsDeterministic(t *testing.T) {
	rep := &model.Report{
		PRNumber: 7,
		Threads:  []model.ThreadEntry{{ID: "TH1", Location: "a.go:1", Author: "bot", Body: "x"}},
	}

	assert.True(t, strings.HasPrefix(report.Render(rep), "# Review Comments\n"))
	assert.Equal(t, report.Render(rep), report.Render(rep))
}
