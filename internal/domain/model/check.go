package model

import "strings"

// Check is a snapshot of a single CI check on a pull request,
// as reported by `gh pr checks`.
type Check struct {
	Name  string
	State string // pending, in_progress, queued, waiting, requested, or a terminal state.
}

// runningStates are the check states that mean the check has not finished yet.
var runningStates = map[string]bool{
	"pending":     true,
	"in_progress": true,
	"queued":      true,
	"waiting":     true,
	"requested":   true,
}

// IsRunning reports whether the check is still in a running state.
// State comparison is case-insensitive.
func (c Check) IsRunning() bool {
	return runningStates[strings.ToLower(c.State)]
}

// FindCheck returns the first check whose name contains substr
// (case-insensitive), or nil if no check matches.
func FindCheck(checks []Check, substr string) *Check {
	needle := strings.ToLower(substr)
	for i := range checks {
		if strings.Contains(strings.ToLower(checks[i].Name), needle) {
			return &checks[i]
		}
	}
	return nil
}
