// Package report renders aggregated review reports to markdown and writes
// them to the output file.
package report

import (
	"fmt"
	"strings"

	"github.com/ericfisherdev/reviewloop/internal/domain/model"
)

// Literal example commands embedded in each report. The placeholder IDs are
// meant to be substituted by the operator; the commands are never executed
// by this tool.
const (
	resolveThreadCmd = `gh api graphql -f query='mutation { resolveReviewThread(input: {threadId: "THREAD_ID"}) { thread { isResolved } } }'`
	reactToReviewCmd = `gh api graphql -f query='mutation { addReaction(input: {subjectId: "REVIEW_ID", content: THUMBS_UP}) { reaction { content } } }'`
)

// itemSeparator divides rendered items and sections.
const itemSeparator = "\n\n---\n\n"

// Render produces the markdown document for a report. An empty report
// yields the minimal "No unresolved comments." document.
func Render(r *model.Report) string {
	if r.Empty() {
		return fmt.Sprintf("# Review Comments\n\n**PR:** #%d\n\nNo unresolved comments.\n", r.PRNumber)
	}

	var b strings.Builder

	fmt.Fprintf(&b, `# Review Comments

**PR:** #%d
**Inline threads (unresolved):** %d
**Review comments (unreacted):** %d

To resolve an inline thread after addressing it:
`+"```bash\n%s\n```"+`

To mark a review as addressed (adds reaction):
`+"```bash\n%s\n```"+`

`, r.PRNumber, len(r.Threads), len(r.Reviews), resolveThreadCmd, reactToReviewCmd)

	if len(r.Threads) > 0 {
		b.WriteString("---\n\n# Inline Comments (Unresolved)\n\n")

		parts := make([]string, 0, len(r.Threads))
		for _, t := range r.Threads {
			parts = append(parts, fmt.Sprintf(
				"## %s\n\n**Thread ID:** `%s`\n**Author:** %s\n\n%s",
				t.Location, t.ID, t.Author, t.Body,
			))
		}
		b.WriteString(strings.Join(parts, itemSeparator))
	}

	if len(r.Reviews) > 0 {
		fmt.Fprintf(&b, "%s# Review Comments (%d)\n\n", itemSeparator, len(r.Reviews))

		parts := make([]string, 0, len(r.Reviews))
		for _, rv := range r.Reviews {
			parts = append(parts, fmt.Sprintf("**Review ID:** `%s`\n\n%s", rv.ID, rv.Body))
		}
		b.WriteString(strings.Join(parts, itemSeparator))
	}

	return b.String()
}
