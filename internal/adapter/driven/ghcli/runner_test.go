//go:build !windows

package ghcli_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/reviewloop/internal/adapter/driven/ghcli"
)

func TestExecRunnerCapturesStdout(t *testing.T) {
	runner := ghcli.NewExecRunner()

	out, err := runner.Run(context.Background(), "sh", "-c", "printf hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestExecRunnerReturnsStderrOnFailure(t *testing.T) {
	runner := ghcli.NewExecRunner()

	_, err := runner.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestExecRunnerFailureWithoutStderr(t *testing.T) {
	runner := ghcli.NewExecRunner()

	_, err := runner.Run(context.Background(), "sh", "-c", "exit 7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 7")
}
