package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/spf13/pflag"
)

// addDateFlag registers the shared --date/-d flag.
func addDateFlag(fs *pflag.FlagSet, target *string, usage string) {
	fs.StringVarP(target, "date", "d", "today", usage+": today, tomorrow, yesterday or YYYY-MM-DD")
}

// resolveDate turns a --date value into a calendar date relative to today.
// Accepted: "", "today", "tomorrow", "yesterday" or a YYYY-MM-DD key.
func resolveDate(value string, today time.Time, loc *time.Location) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return calendar.AddDays(today, 1), nil
	case "yesterday":
		return calendar.AddDays(today, -1), nil
	}
	d, err := calendar.ParseDateKey(strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use today, tomorrow, yesterday or YYYY-MM-DD): %w", value, err)
	}
	return d, nil
}

// dateValidator is the huh validator for date inputs. Relative words are
// resolved against the app's clock and location.
func dateValidator(app *App) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("enter a date")
		}
		if _, err := resolveDate(s, app.today(), app.location()); err != nil {
			return fmt.Errorf("use YYYY-MM-DD, today, tomorrow or yesterday")
		}
		return nil
	}
}

// boardRequest builds the base request for flags. A --file plan is loaded
// once here so callers can reuse the request for every selected date.
func boardRequest(ctx context.Context, app *App, flags *planFlags) (contract.BoardRequest, error) {
	req := contract.NewBoardRequest()
	req.Location = app.location()
	req.PlanName = flags.plan

	if flags.file != "" {
		doc, err := app.Plans.Load(ctx, flags.file)
		if err != nil {
			return req, err
		}
		req.Plan = doc
		req.PlanName = filepath.Base(flags.file)
	}
	return req, nil
}

// withDates returns req pinned to today and selected.
func withDates(req contract.BoardRequest, selected, today time.Time) contract.BoardRequest {
	req.SelectedDate = &selected
	req.Today = &today
	return req
}
