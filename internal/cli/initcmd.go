package cli

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/reviewloop/internal/application"
	"github.com/ericfisherdev/reviewloop/internal/scaffold"
)

func newInitCmd() *cobra.Command {
	var (
		here     bool
		force    bool
		modeFlag string
	)

	cmd := &cobra.Command{
		Use:   "init [NAME]",
		Short: "Scaffold reviewloop scripts into a project",
		Long: `Copy the reviewloop template scripts and skill definition into a target
project. Missing choices (target folder, mode) are prompted interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			req := application.InitRequest{
				Here:  here,
				Force: force,
			}
			if len(args) == 1 {
				req.ProjectName = args[0]
			}
			if modeFlag != "" {
				mode, err := application.ParseInitMode(modeFlag)
				if err != nil {
					return err
				}
				req.Mode = mode
			}

			svc := application.NewInitService(scaffold.Templates(), ptermPrompter{})

			result, err := svc.Run(req)
			if errors.Is(err, application.ErrInitAborted) {
				pterm.Warning.Println("Aborted.")
				return ErrReported
			}
			if err != nil {
				return err
			}

			pterm.Println()
			pterm.Success.Printf("Initialized reviewloop in %s\n", result.TargetDir)
			pterm.Println()
			pterm.Println("Created files:")
			for _, f := range result.Created {
				pterm.Printf("  %s\n", f)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&here, "here", false, "Initialize in the current directory")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files without confirmation")
	cmd.Flags().StringVar(&modeFlag, "mode", "", "Initialization mode: claude-code or script")

	return cmd
}

// ptermPrompter resolves interactive init decisions with pterm widgets.
type ptermPrompter struct{}

func (ptermPrompter) ProjectName() (string, error) {
	return pterm.DefaultInteractiveTextInput.Show("Project folder name")
}

func (ptermPrompter) SelectMode() (application.InitMode, error) {
	const (
		claudeCodeLabel = "Claude Code  - installs as a Claude Code skill"
		scriptLabel     = "Script based - creates standalone scripts + prompt file"
	)

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions([]string{claudeCodeLabel, scriptLabel}).
		Show("Initialization mode")
	if err != nil {
		return "", err
	}

	if choice == scriptLabel {
		return application.ModeScript, nil
	}
	return application.ModeClaudeCode, nil
}

func (ptermPrompter) ConfirmOverwrite(existing []string) (bool, error) {
	pterm.Println("The following files already exist:")
	for _, f := range existing {
		pterm.Printf("  - %s\n", f)
	}
	return pterm.DefaultInteractiveConfirm.Show("Overwrite?")
}
