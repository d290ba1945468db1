package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/importer"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage imported plans",
	}

	cmd.AddCommand(
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanHistoryCmd(app),
		newPlanDeleteCmd(app),
	)

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanList(plans, app.today()))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a stored plan document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := app.Plans.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			doc, err := encodePlanDocument(importer.Export(&stored.Document), output)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanDetail(stored, doc))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Document format. One of 'yaml' or 'json'.")

	return cmd
}

// encodePlanDocument serializes schema in the plan file format so the
// output can be fed back to "planboard import".
func encodePlanDocument(schema *importer.PlanSchema, output string) (string, error) {
	switch importer.Format(strings.ToLower(output)) {
	case importer.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(schema); err != nil {
			return "", fmt.Errorf("encoding plan: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("encoding plan: %w", err)
		}
		return buf.String(), nil
	case importer.FormatJSON:
		var buf bytes.Buffer
		if err := writeJSON(&buf, schema); err != nil {
			return "", fmt.Errorf("encoding plan: %w", err)
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("unsupported output %q (use yaml or json)", output)
	}
}

func newPlanHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history NAME",
		Short: "Show the import history of a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Plans.History(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanHistory(args[0], records, app.today()))
			return nil
		},
	}
}

func newPlanDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Delete a stored plan and its import history",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", formatter.Bold(args[0]))
			return nil
		},
	}
}
