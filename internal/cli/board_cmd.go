package cli

import (
	"fmt"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App, flags *planFlags) *cobra.Command {
	var (
		date   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the summary panels and the three execution days",
		Example: `  planboard board
  planboard board --date tomorrow
  planboard board --date 2024-03-06 --plan week
  planboard board --file plan.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, app, flags, date, asJSON)
		},
	}

	addDateFlag(cmd.Flags(), &date, "Selected date")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the board as JSON")

	return cmd
}

func runBoard(cmd *cobra.Command, app *App, flags *planFlags, date string, asJSON bool) error {
	resp, err := fetchBoard(cmd, app, flags, date)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), boardJSONFrom(resp))
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBoard(resp))
	return nil
}

func fetchBoard(cmd *cobra.Command, app *App, flags *planFlags, date string) (*contract.BoardResponse, error) {
	ctx := cmd.Context()
	req, err := boardRequest(ctx, app, flags)
	if err != nil {
		return nil, err
	}
	today := app.today()
	selected, err := resolveDate(date, today, app.location())
	if err != nil {
		return nil, err
	}
	return app.Board.Board(ctx, withDates(req, selected, today))
}
