package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mars-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the sidebar
	sidebarWidth       = 24  // Width of the sidebar
	maxRuns            = 100 // Max runs to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreView selects which runs the table lists.
type scoreView int

const (
	viewTop scoreView = iota
	viewMine
)

var scoreViews = []scoreView{viewTop, viewMine}

func (v scoreView) title(player string) string {
	if v == viewMine {
		return "Runs of " + player
	}
	return "Top runs"
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store       *storage.Store
	player      string
	view        int // index into scoreViews
	runs        []storage.Run
	stats       *storage.RunStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model. The "mine" view lists the
// runs of player.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	if player == "" {
		player = storage.LocalPlayer
	}
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:       store,
		player:      player,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table sized for the current layout.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Kills", Width: 6},
		{Title: "Maps", Width: 5},
		{Title: "Reached", Width: 10},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("130")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reloads the runs of the current view and the totals.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		var err error
		switch scoreViews[m.view] {
		case viewMine:
			m.runs, err = m.store.PlayerRuns(m.player, maxRuns)
		default:
			m.runs, err = m.store.TopRuns(maxRuns)
		}
		if err != nil {
			m.runs = nil
		}
		if stats, err := m.store.Stats(); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Kills),
			fmt.Sprintf("%d", r.MapsVisited),
			r.MapID,
			r.Player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % len(scoreViews)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.view = (m.view + len(scoreViews) - 1) % len(scoreViews)
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Width(m.width).
		Align(lipgloss.Center)
	b.WriteString(titleStyle.Render("HIGH SCORES - " + scoreViews[m.view].title(m.player)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableBox := boxStyle.Render(m.renderTableContent())

	if m.showSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderSidebar())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", tableBox))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableBox))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists the views and the totals over every run.
func (m ScoreboardModel) renderSidebar() string {
	var b strings.Builder
	b.WriteString("Views\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")
	for i, v := range scoreViews {
		if i == m.view {
			b.WriteString(menuCursor.Render("> " + v.title(m.player)))
		} else {
			b.WriteString("  " + v.title(m.player))
		}
		b.WriteString("\n")
	}

	if m.stats == nil || m.stats.Runs == 0 {
		return b.String()
	}
	b.WriteString("\nTotals\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Runs:    %d\n", m.stats.Runs)
	fmt.Fprintf(&b, "Best:    %d\n", m.stats.HighScore)
	fmt.Fprintf(&b, "Average: %.0f\n", m.stats.AvgScore)
	fmt.Fprintf(&b, "Kills:   %d\n", m.stats.TotalKills)
	fmt.Fprintf(&b, "Last:    %s", m.stats.LastPlayed.Format("Jan 02 15:04"))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinish a mission to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, player string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, player, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
