// Package application contains use-case orchestration services.
package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/ericfisherdev/reviewloop/internal/domain/model"
	"github.com/ericfisherdev/reviewloop/internal/domain/port/driven"
)

// WaitStatus is the outcome class of a CI wait run.
type WaitStatus int

const (
	// WaitNothingRunning means no matching check existed, or it had already
	// finished before the first poll. Nothing to wait for.
	WaitNothingRunning WaitStatus = iota
	// WaitCompleted means the check left its running state within the timeout.
	WaitCompleted
	// WaitTimedOut means the check was still running on every poll performed
	// within the configured timeout.
	WaitTimedOut
)

// WaitResult carries the outcome of a wait run. State holds the check's last
// observed state when one was observed; it is empty when the check
// disappeared between polls.
type WaitResult struct {
	Status WaitStatus
	State  string
}

// WaitProgress receives informational progress events from the poll loop.
// Implementations must not block; output here is cosmetic only.
type WaitProgress interface {
	// Delaying is emitted before the initial delay that lets CI register.
	Delaying(d time.Duration)
	// Polling is emitted once when the poll loop is entered.
	Polling(prNumber int)
	// Tick is emitted after each poll that found the check still running.
	Tick()
}

// NopProgress is a WaitProgress that discards all events.
type NopProgress struct{}

func (NopProgress) Delaying(time.Duration) {}
func (NopProgress) Polling(int)            {}
func (NopProgress) Tick()                  {}

// WaitService polls a PR's checks until the watched CI check leaves a
// running state or a timeout elapses. Each run is stateless.
type WaitService struct {
	gh           driven.GitHubClient
	progress     WaitProgress
	checkName    string // Case-insensitive substring matched against check names.
	initialDelay time.Duration
	pollInterval time.Duration

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// WaitOption customizes a WaitService; used by tests to substitute the
// clock and sleeper.
type WaitOption func(*WaitService)

// WithClock replaces the wall-clock source.
func WithClock(now func() time.Time) WaitOption {
	return func(s *WaitService) { s.now = now }
}

// WithSleep replaces the blocking delay implementation.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) WaitOption {
	return func(s *WaitService) { s.sleep = sleep }
}

// NewWaitService creates a WaitService. checkName is the substring that
// identifies the watched CI check; initialDelay runs once before the first
// fetch, pollInterval between subsequent fetches.
func NewWaitService(
	gh driven.GitHubClient,
	progress WaitProgress,
	checkName string,
	initialDelay time.Duration,
	pollInterval time.Duration,
	opts ...WaitOption,
) *WaitService {
	s := &WaitService{
		gh:           gh,
		progress:     progress,
		checkName:    checkName,
		initialDelay: initialDelay,
		pollInterval: pollInterval,
		now:          time.Now,
		sleep:        sleepCtx,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Wait blocks until the watched check is no longer running or the timeout
// elapses. A check that disappears between polls counts as completed.
// Fetch failures are fatal and returned as errors; only the running-state
// re-check is retried, never a failed fetch.
func (s *WaitService) Wait(ctx context.Context, prNumber int, timeout time.Duration) (WaitResult, error) {
	start := s.now()

	s.progress.Delaying(s.initialDelay)
	if err := s.sleep(ctx, s.initialDelay); err != nil {
		return WaitResult{}, err
	}

	check, err := s.fetchCheck(ctx, prNumber)
	if err != nil {
		return WaitResult{}, err
	}
	if check == nil || !check.IsRunning() {
		slog.Debug("no running check found", "pr", prNumber, "check_name", s.checkName)
		return WaitResult{Status: WaitNothingRunning, State: stateOf(check)}, nil
	}

	s.progress.Polling(prNumber)

	for s.now().Sub(start) < timeout {
		check, err := s.fetchCheck(ctx, prNumber)
		if err != nil {
			return WaitResult{}, err
		}

		// Re-matched by name on every poll; a check that vanished is
		// treated the same as one that finished.
		if check == nil || !check.IsRunning() {
			return WaitResult{Status: WaitCompleted, State: stateOf(check)}, nil
		}

		s.progress.Tick()
		if err := s.sleep(ctx, s.pollInterval); err != nil {
			return WaitResult{}, err
		}
	}

	return WaitResult{Status: WaitTimedOut}, nil
}

// fetchCheck lists the PR's checks and returns the first one matching the
// watched check name, or nil when none matches.
func (s *WaitService) fetchCheck(ctx context.Context, prNumber int) (*model.Check, error) {
	checks, err := s.gh.ListChecks(ctx, prNumber)
	if err != nil {
		return nil, err
	}
	return model.FindCheck(checks, s.checkName), nil
}

func stateOf(check *model.Check) string {
	if check == nil {
		return ""
	}
	return check.State
}

// sleepCtx blocks for d or until the context is canceled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
