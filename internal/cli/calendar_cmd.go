package cli

import (
	"fmt"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App, flags *planFlags) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List every task and event of the plan in timeline order",
		Example: `  planboard calendar
  planboard calendar --from today --to 2024-03-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := fetchBoard(cmd, app, flags, "")
			if err != nil {
				return err
			}

			events := resp.Board.CalendarEvents
			if from != "" || to != "" {
				window, err := calendarWindow(app, from, to)
				if err != nil {
					return err
				}
				events = eventsIn(events, window)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(events))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Only entries ending after this date")
	cmd.Flags().StringVar(&to, "to", "", "Only entries starting before the end of this date")

	return cmd
}

// calendarWindow resolves --from/--to into a range covering whole days.
// An open side extends a hundred years.
func calendarWindow(app *App, from, to string) (calendar.Range, error) {
	today := app.today()
	loc := app.location()

	start := calendar.StartOfDay(calendar.AddDays(today, -365*100))
	if from != "" {
		d, err := resolveDate(from, today, loc)
		if err != nil {
			return calendar.Range{}, fmt.Errorf("--from: %w", err)
		}
		start = calendar.StartOfDay(d)
	}
	end := calendar.EndOfDay(calendar.AddDays(today, 365*100))
	if to != "" {
		d, err := resolveDate(to, today, loc)
		if err != nil {
			return calendar.Range{}, fmt.Errorf("--to: %w", err)
		}
		end = calendar.EndOfDay(d)
	}
	if end.Before(start) {
		return calendar.Range{}, fmt.Errorf("--to %q is before --from %q", to, from)
	}
	return calendar.Range{Start: start, End: end}, nil
}

func eventsIn(events []domain.CalendarEvent, r calendar.Range) []domain.CalendarEvent {
	var out []domain.CalendarEvent
	for _, e := range events {
		if r.Overlaps(e.Start, e.End) {
			out = append(out, e)
		}
	}
	return out
}
