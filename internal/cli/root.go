package cli

import (
	"time"

	"github.com/alexanderramin/planboard/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and environment used by CLI commands.
type App struct {
	Plans service.PlanService
	Board service.BoardService

	// DefaultPlan and DefaultFile seed the --plan and --file flags.
	DefaultPlan string
	DefaultFile string

	// Location is the wall-clock zone boards are computed in.
	Location *time.Location
	// Now is the clock; tests pin it.
	Now func() time.Time
	// IsInteractive reports whether stdin is a terminal. The bare
	// command opens the interactive board only when it returns true.
	IsInteractive func() bool
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

// today is the real current date in the app's location.
func (a *App) today() time.Time {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	return now().In(a.location())
}

// planFlags are shared by every command that reads a board.
type planFlags struct {
	plan string
	file string
}

// NewRootCmd creates the top-level "planboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	flags := &planFlags{}

	root := &cobra.Command{
		Use:           "planboard",
		Short:         "Personal planner board: the next three days, three weeks and the month",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runBoardTUI(cmd, app, flags, "")
			}
			return runBoard(cmd, app, flags, "", false)
		},
	}

	root.PersistentFlags().StringVar(&flags.plan, "plan", app.DefaultPlan, "Stored plan name (default: most recently imported)")
	root.PersistentFlags().StringVar(&flags.file, "file", app.DefaultFile, "Read the plan from a file instead of storage")

	root.AddCommand(
		newImportCmd(app),
		newBoardCmd(app, flags),
		newCalendarCmd(app, flags),
		newPlanCmd(app),
		newTUICmd(app, flags),
		newVersionCmd(),
	)

	return root
}
