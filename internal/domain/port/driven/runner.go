package driven

import "context"

// CommandRunner defines the driven port for executing external commands.
// It is the tool's only I/O mechanism toward GitHub: every lookup goes
// through an invocation of the authenticated `gh` CLI.
type CommandRunner interface {
	// Run executes the named command with the given arguments and returns
	// captured stdout. A non-zero exit status is returned as an error that
	// carries the command's stderr output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
