// Package cli is the driving adapter exposing the tool as a cobra command
// tree.
package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// ErrReported marks failures whose message was already printed to the
// terminal. The composition root translates them to a non-zero exit
// without printing an additional Error: line.
var ErrReported = errors.New("error already reported")

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "reviewloop",
	Short: "Autonomous review loop - automates the review-fix-push cycle",
	Long: `reviewloop automates the review-fix-push cycle for CodeRabbit-reviewed
pull requests.

Available commands:
  wait      - Wait for the CodeRabbit CI check on the current PR to finish
  comments  - Fetch unresolved review comments into .reviews/prComments.md
  init      - Scaffold reviewloop scripts into a project
  version   - Show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newWaitCmd())
	rootCmd.AddCommand(newCommentsCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the command tree under the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
