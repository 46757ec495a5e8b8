package model

// ThreadEntry is an unresolved inline thread as it appears in a report,
// represented by its first comment.
type ThreadEntry struct {
	ID       string
	Location string // "path:line", with "?" when the line is absent.
	Author   string
	Body     string
}

// ReviewEntry is an unacknowledged bot review as it appears in a report,
// with comment markup already stripped from the body.
type ReviewEntry struct {
	ID   string
	Body string
}

// Report is the aggregated review state for one PR, ready for rendering.
// It is assembled once per run from a single upstream fetch.
type Report struct {
	PRNumber int
	Threads  []ThreadEntry
	Reviews  []ReviewEntry
}

// Empty reports whether the report has no unresolved threads and no
// unacknowledged reviews.
func (r Report) Empty() bool {
	return len(r.Threads) == 0 && len(r.Reviews) == 0
}
