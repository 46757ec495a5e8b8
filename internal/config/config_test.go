package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/reviewloop/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.LoadWithViper(config.NewViper())
	require.NoError(t, err)

	assert.Equal(t, "coderabbitai", cfg.Bot.Login)
	assert.Equal(t, "coderabbit", cfg.Bot.CheckName)

	assert.Equal(t, 10*time.Second, cfg.Wait.InitialDelay)
	assert.Equal(t, 15*time.Second, cfg.Wait.PollInterval)
	assert.Equal(t, 600*time.Second, cfg.Wait.Timeout)

	assert.Equal(t, ".reviews/prComments.md", cfg.Output.Path)
	assert.Equal(t, ".reviews/prComments.html", cfg.Output.HTMLPath)
}

func TestOverrides(t *testing.T) {
	v := config.NewViper()
	v.Set("bot.login", "otherbot[bot]")
	v.Set("wait.poll_interval", "5s")
	v.Set("output.path", "out/review.md")

	cfg, err := config.LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "otherbot[bot]", cfg.Bot.Login)
	assert.Equal(t, 5*time.Second, cfg.Wait.PollInterval)
	assert.Equal(t, "out/review.md", cfg.Output.Path)

	// Untouched keys keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Wait.InitialDelay)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("REVIEWLOOP_WAIT_TIMEOUT", "120s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 120*time.Second, cfg.Wait.Timeout)
}
