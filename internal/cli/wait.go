package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/reviewloop/internal/adapter/driven/ghcli"
	"github.com/ericfisherdev/reviewloop/internal/application"
	"github.com/ericfisherdev/reviewloop/internal/config"
)

func newWaitCmd() *cobra.Command {
	var timeoutFlag string

	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait for the CodeRabbit CI check on the current PR to finish",
		Long: `Poll the current pull request's checks until the CodeRabbit CI check
leaves its running state. Exits immediately when no such check is running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			timeout, ok := parseTimeout(timeoutFlag, cfg.Wait.Timeout)
			if !ok {
				pterm.Warning.Println("Invalid timeout value, using default")
			}

			gh := ghcli.NewClient(ghcli.NewExecRunner())

			prNumber, err := gh.CurrentPRNumber(cmd.Context())
			if err != nil {
				return err
			}

			svc := application.NewWaitService(
				gh,
				waitProgress{},
				cfg.Bot.CheckName,
				cfg.Wait.InitialDelay,
				cfg.Wait.PollInterval,
			)

			result, err := svc.Wait(cmd.Context(), prNumber, timeout)
			if err != nil {
				return err
			}

			switch result.Status {
			case application.WaitNothingRunning:
				pterm.Info.Println("No CodeRabbit CI in progress")
			case application.WaitCompleted:
				suffix := ""
				if result.State != "" {
					suffix = fmt.Sprintf(" (%s)", result.State)
				}
				pterm.Println()
				pterm.Success.Printf("CodeRabbit CI completed%s\n", suffix)
			case application.WaitTimedOut:
				pterm.Println()
				pterm.Error.Printf("Timeout after %s\n", timeout)
				return ErrReported
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&timeoutFlag, "timeout", "", "Maximum seconds to wait for the check (default 600)")

	return cmd
}

// parseTimeout interprets the --timeout flag as a positive integer second
// count. Invalid or non-positive values fall back to the default; the
// second return value reports whether the input was usable (an empty flag
// counts as usable).
func parseTimeout(raw string, fallback time.Duration) (time.Duration, bool) {
	if raw == "" {
		return fallback, true
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return fallback, false
	}

	return time.Duration(seconds) * time.Second, true
}

// waitProgress prints poll-loop progress markers to the terminal.
type waitProgress struct{}

func (waitProgress) Delaying(d time.Duration) {
	pterm.Info.Printf("Waiting %s for CI to start...\n", d)
}

func (waitProgress) Polling(prNumber int) {
	pterm.Info.Printf("Waiting for CodeRabbit CI on PR #%d...\n", prNumber)
}

func (waitProgress) Tick() {
	pterm.Print(".")
}
