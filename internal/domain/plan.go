package domain

// PlanDocument is the parsed plan a board is computed from. It is treated as
// read-only by everything downstream of the loader.
type PlanDocument struct {
	Tasks    []Task
	Events   []Event
	Defaults Defaults
	Goals    Goals
}

// Task is a dated to-do. Date is a YYYY-MM-DD key; Start and End, when set,
// replace it as interval boundaries and may carry a clock time.
type Task struct {
	ID              string
	Title           string
	Date            string
	Start           string
	End             string
	Category        string
	Tags            []string
	WeekTheme       string
	DurationMinutes *int
}

// Event is a bounded calendar entry. Start and End are both required.
type Event struct {
	Title    string
	Start    string
	End      string
	Category string
	Type     string
	Notes    string
}

// DefaultConfig describes the fallback action for one period.
type DefaultConfig struct {
	Title           string
	DurationMinutes *int
}

type Defaults struct {
	Daily   *DefaultConfig
	Weekly  *DefaultConfig
	Monthly *DefaultConfig
}

// Goal is a titled period goal.
type Goal struct {
	Title string
}

type Goals struct {
	Yearly  []string
	Monthly *Goal
	Weekly  *Goal
}

// DefaultTitle returns the period's default title, or "" when unset.
func (c *DefaultConfig) DefaultTitle() string {
	if c == nil {
		return ""
	}
	return c.Title
}

// GoalTitle returns the goal's title, or "" when unset.
func (g *Goal) GoalTitle() string {
	if g == nil {
		return ""
	}
	return g.Title
}

// IsEmpty reports whether the document has nothing to show.
func (p *PlanDocument) IsEmpty() bool {
	return len(p.Tasks) == 0 && len(p.Events) == 0 &&
		p.Defaults.Daily == nil && p.Defaults.Weekly == nil && p.Defaults.Monthly == nil
}
