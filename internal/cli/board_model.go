package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type boardKeyMap struct {
	PrevDay  key.Binding
	NextDay  key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding
	GoTo     key.Binding
	Calendar key.Binding
	Quit     key.Binding
}

func defaultBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		PrevDay:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "day")),
		NextDay:  key.NewBinding(key.WithKeys("l", "right")),
		PrevWeek: key.NewBinding(key.WithKeys("H", "["), key.WithHelp("H/L", "week")),
		NextWeek: key.NewBinding(key.WithKeys("L", "]")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		GoTo:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to date")),
		Calendar: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "calendar")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardLoadedMsg carries a board computed for selected.
type boardLoadedMsg struct {
	selected time.Time
	resp     *contract.BoardResponse
	err      error
}

// boardModel is the interactive board. The selected date is the only
// navigation state; today is read from the app clock on every load.
type boardModel struct {
	ctx      context.Context
	app      *App
	req      contract.BoardRequest
	keys     boardKeyMap
	selected time.Time

	resp *contract.BoardResponse
	err  error

	showCalendar bool

	// Go-to-date form; nil when closed. gotoValue is a pointer so the
	// binding survives model copies.
	form      *huh.Form
	gotoValue *string

	width  int
	height int
}

func newBoardModel(ctx context.Context, app *App, req contract.BoardRequest, selected time.Time) boardModel {
	return boardModel{
		ctx:       ctx,
		app:       app,
		req:       req,
		keys:      defaultBoardKeyMap(),
		selected:  selected,
		gotoValue: new(string),
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.load()
}

func (m boardModel) load() tea.Cmd {
	ctx, app, req, selected := m.ctx, m.app, m.req, m.selected
	return func() tea.Msg {
		resp, err := app.Board.Board(ctx, withDates(req, selected, app.today()))
		return boardLoadedMsg{selected: selected, resp: resp, err: err}
	}
}

// moveTo selects d and reloads the board.
func (m boardModel) moveTo(d time.Time) (tea.Model, tea.Cmd) {
	m.selected = d
	return m, m.load()
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case boardLoadedMsg:
		// Drop results for a date the user already navigated away from.
		if !calendar.SameDay(msg.selected, m.selected) {
			return m, nil
		}
		m.resp, m.err = msg.resp, msg.err
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.PrevDay):
		return m.moveTo(calendar.AddDays(m.selected, -1))
	case key.Matches(keyMsg, m.keys.NextDay):
		return m.moveTo(calendar.AddDays(m.selected, 1))
	case key.Matches(keyMsg, m.keys.PrevWeek):
		return m.moveTo(calendar.AddDays(m.selected, -7))
	case key.Matches(keyMsg, m.keys.NextWeek):
		return m.moveTo(calendar.AddDays(m.selected, 7))
	case key.Matches(keyMsg, m.keys.Today):
		return m.moveTo(m.app.today())
	case key.Matches(keyMsg, m.keys.Calendar):
		m.showCalendar = !m.showCalendar
		return m, nil
	case key.Matches(keyMsg, m.keys.GoTo):
		*m.gotoValue = ""
		m.form = goToDateForm(m.gotoValue, calendar.FormatDateKey(m.selected), dateValidator(m.app))
		if m.width > 0 {
			m.form = m.form.WithWidth(m.width)
		}
		return m, m.form.Init()
	}
	return m, nil
}

func (m boardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.form = nil
		d, err := resolveDate(*m.gotoValue, m.app.today(), m.app.location())
		if err != nil {
			m.err = err
			return m, nil
		}
		return m.moveTo(d)
	case huh.StateAborted:
		m.form = nil
		return m, nil
	}
	return m, cmd
}

func (m boardModel) View() string {
	var b strings.Builder

	switch {
	case m.form != nil:
		b.WriteString(m.form.View())
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.resp == nil:
		b.WriteString(formatter.Dim("Loading…"))
		b.WriteString("\n")
	case m.showCalendar:
		b.WriteString(formatter.Header(m.selected.Format("January 2006")))
		b.WriteString("\n")
		events := eventsIn(m.resp.Board.CalendarEvents, calendar.MonthRange(m.selected))
		b.WriteString(formatter.FormatCalendar(events))
	default:
		b.WriteString(formatter.FormatBoard(m.resp))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m boardModel) renderStatusBar() string {
	var hints []string
	if m.form != nil {
		hints = append(hints, formatter.Dim("enter: go"), formatter.Dim("esc: cancel"))
	} else {
		for _, b := range m.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// ShortHelp lists the bindings shown in the status bar.
func (m boardModel) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.PrevDay,
		m.keys.PrevWeek,
		m.keys.Today,
		m.keys.GoTo,
		m.keys.Calendar,
		m.keys.Quit,
	}
}
