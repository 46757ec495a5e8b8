package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/reviewloop/internal/adapter/driven/ghcli"
	"github.com/ericfisherdev/reviewloop/internal/adapter/driving/report"
	"github.com/ericfisherdev/reviewloop/internal/application"
	"github.com/ericfisherdev/reviewloop/internal/config"
)

func newCommentsCmd() *cobra.Command {
	var htmlPreview bool

	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Fetch unresolved review comments into .reviews/prComments.md",
		Long: `Fetch the current PR's unresolved inline threads and unacknowledged
CodeRabbit reviews in one query, and write them as a markdown report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			gh := ghcli.NewClient(ghcli.NewExecRunner())
			svc := application.NewAggregateService(gh, cfg.Bot.Login)

			rep, err := svc.Collect(cmd.Context())
			if err != nil {
				return err
			}

			doc := report.Render(rep)
			if err := report.Write(cfg.Output.Path, doc); err != nil {
				return err
			}

			if htmlPreview {
				preview, err := report.RenderHTML(doc)
				if err != nil {
					return err
				}
				if err := report.Write(cfg.Output.HTMLPath, preview); err != nil {
					return err
				}
			}

			if rep.Empty() {
				pterm.Info.Println("No unresolved comments found on this PR")
				return nil
			}

			pterm.Success.Printf("Saved review comments to %s:\n", cfg.Output.Path)
			pterm.Printf("  - %d unresolved inline threads\n", len(rep.Threads))
			pterm.Printf("  - %d review comments\n", len(rep.Reviews))

			return nil
		},
	}

	cmd.Flags().BoolVar(&htmlPreview, "html", false, "Also write a sanitized HTML preview of the report")

	return cmd
}
