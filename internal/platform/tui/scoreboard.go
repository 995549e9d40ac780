package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tether/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores     = 100 // Max scores to load
	boardChrome   = 8   // Title, tabs, borders and help
	minTableWidth = 40
)

// ScoreSource is the part of the store the scoreboard reads.
type ScoreSource interface {
	TopScores(limit int) ([]storage.ScoreEntry, error)
	AllLevelStats() ([]storage.LevelStats, error)
	RecentRuns(limit int) ([]storage.LevelRun, error)
}

// boardTab selects what the scoreboard table shows.
type boardTab int

const (
	tabScores boardTab = iota
	tabLevels
	tabRecent
	tabCount
)

func (t boardTab) String() string {
	switch t {
	case tabLevels:
		return "Levels"
	case tabRecent:
		return "Recent Runs"
	default:
		return "High Scores"
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.PrevTab},
		{k.Reload, k.Quit},
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
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows high scores, per-level statistics and the latest
// level attempts.
type ScoreboardModel struct {
	source   ScoreSource
	tab      boardTab
	scores   []storage.ScoreEntry
	stats    []storage.LevelStats
	runs     []storage.LevelRun
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model. A nil source shows
// empty tables.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	m.rebuildTable()
	return m
}

// load reads every table from the source.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.runs, m.err = nil, nil, nil, nil
	if m.source == nil {
		return
	}
	if m.scores, m.err = m.source.TopScores(maxScores); m.err != nil {
		return
	}
	if m.stats, m.err = m.source.AllLevelStats(); m.err != nil {
		return
	}
	m.runs, m.err = m.source.RecentRuns(maxScores)
}

func (m ScoreboardModel) columns() []table.Column {
	width := max(m.width-6, minTableWidth)
	switch m.tab {
	case tabRecent:
		rest := width - 12 - 10 - 8 - 10 - 6
		return []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Level", Width: max(rest, 10)},
			{Title: "Player", Width: 10},
			{Title: "Outcome", Width: 8},
			{Title: "Time", Width: 10},
			{Title: "Kills", Width: 6},
		}
	case tabLevels:
		rest := width - 12 - 6 - 6 - 7 - 6
		return []table.Column{
			{Title: "Level", Width: max(rest, 10)},
			{Title: "Best", Width: 12},
			{Title: "Runs", Width: 6},
			{Title: "Clears", Width: 6},
			{Title: "Deaths", Width: 7},
			{Title: "Kills", Width: 6},
		}
	}

	rest := width - 6 - 8 - 7 - 10 - 12
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: max(rest, 8)},
		{Title: "Score", Width: 8},
		{Title: "Levels", Width: 7},
		{Title: "Difficulty", Width: 10},
		{Title: "Date", Width: 12},
	}
}

// rows converts the loaded data of the active tab into table rows.
func (m ScoreboardModel) rows() []table.Row {
	switch m.tab {
	case tabRecent:
		rows := make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				r.LevelID,
				orDash(r.Player),
				string(r.Outcome),
				formatBest(r.Duration),
				fmt.Sprintf("%d", r.Kills),
			}
		}
		return rows
	case tabLevels:
		rows := make([]table.Row, len(m.stats))
		for i, s := range m.stats {
			rows[i] = table.Row{
				s.LevelID,
				formatBest(s.BestTime),
				fmt.Sprintf("%d", s.Runs),
				fmt.Sprintf("%d", s.Clears),
				fmt.Sprintf("%d", s.Deaths),
				fmt.Sprintf("%d", s.Kills),
			}
		}
		return rows
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			orDash(s.Player),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Levels),
			s.Difficulty,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// FormatLevelStats summarizes the recorded runs of one level on one line.
func FormatLevelStats(st storage.LevelStats) string {
	if st.Runs == 0 {
		return "No runs recorded yet."
	}
	return fmt.Sprintf("Runs: %d  Clears: %d  Deaths: %d  Kills: %d  Best: %s",
		st.Runs, st.Clears, st.Deaths, st.Kills, formatBest(st.BestTime))
}

func formatBest(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return d.Round(10 * time.Millisecond).String()
}

// rebuildTable recreates the table for the active tab and size.
func (m *ScoreboardModel) rebuildTable() {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-boardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
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

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			m.rebuildTable()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.rebuildTable()
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.load()
			m.rebuildTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("TETHER - "+strings.ToUpper(m.tab.String())), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, tabCount)
	for t := range tabCount {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table or an explanatory message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not read scores:\n" + m.err.Error())
	case len(m.table.Rows()) == 0 && m.tab != tabScores:
		return emptyStyle.Render("No level runs recorded yet.")
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a run to set a high score!")
	}
	return m.table.View()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := ansi.StringWidth(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(source ScoreSource, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
