// Package ghcli implements the GitHubClient port by shelling out to the
// authenticated `gh` CLI and decoding its JSON output.
package ghcli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/ericfisherdev/reviewloop/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CommandRunner = (*ExecRunner)(nil)

// ExecRunner runs commands as real subprocesses.
type ExecRunner struct{}

// NewExecRunner creates a CommandRunner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command, capturing stdout and stderr separately.
// On a non-zero exit the returned error carries the trimmed stderr text,
// falling back to the exec error when stderr is empty.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	slog.Debug("running command", "cmd", shellquote.Join(append([]string{name}, args...)...))

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %s", name, msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return stdout.Bytes(), nil
}
