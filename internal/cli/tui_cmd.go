package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App, flags *planFlags) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Long: `Open the interactive board.

Keys: h/l previous/next day, H/L (or [ ]) previous/next week, t today,
g go to date, c month calendar, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoardTUI(cmd, app, flags, date)
		},
	}

	addDateFlag(cmd.Flags(), &date, "Initial date")

	return cmd
}

func runBoardTUI(cmd *cobra.Command, app *App, flags *planFlags, date string) error {
	ctx := cmd.Context()
	req, err := boardRequest(ctx, app, flags)
	if err != nil {
		return err
	}
	selected, err := resolveDate(date, app.today(), app.location())
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		newBoardModel(ctx, app, req, selected),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
