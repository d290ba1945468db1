package cli

import (
	"fmt"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a JSON or YAML plan document",
		Long: `Import validates a plan document and stores it under a name (the file's
base name by default). Importing again under the same name replaces the
stored plan and appends to its import history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Plans.Import(cmd.Context(), args[0], name)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Plan name (default: file base name)")

	return cmd
}
