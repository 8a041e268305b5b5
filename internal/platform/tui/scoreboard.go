package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yurikov/termsnake/internal/scores"
	"github.com/yurikov/termsnake/internal/storage"
)

// maxHistoryRows caps how many history runs a view loads.
const maxHistoryRows = 100

// browserView selects which data set the table shows.
type browserView int

const (
	viewLeaderboard browserView = iota // Ranked JSON top five
	viewBestRuns                       // Best runs from the history database
	viewRecentRuns                     // Most recent runs
)

var viewTitles = map[browserView]string{
	viewLeaderboard: "Leaderboard",
	viewBestRuns:    "Best runs",
	viewRecentRuns:  "Recent runs",
}

// BrowserKeyMap defines the key bindings for the score browser.
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.PrevTab, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
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
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the score browser screen. It
// shows the ranked leaderboard and, when a history database is available,
// the best and most recent runs.
type BrowserModel struct {
	board *scores.Board
	store *storage.Store // May be nil when history is disabled

	view  browserView
	table table.Model
	help  help.Model
	keys  BrowserKeyMap

	width    int
	height   int
	empty    bool
	quitting bool
}

// NewBrowserModel creates a score browser over the given sources.
func NewBrowserModel(board *scores.Board, store *storage.Store, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		board:  board,
		store:  store,
		keys:   DefaultBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadView()
	return m
}

// views returns the tabs available with the current sources.
func (m *BrowserModel) views() []browserView {
	if m.store == nil {
		return []browserView{viewLeaderboard}
	}
	return []browserView{viewLeaderboard, viewBestRuns, viewRecentRuns}
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Name", Width: 14},
		{Title: "When", Width: 18},
	}

	height := m.height - 8 // Leave room for title, tabs, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

	return t
}

// loadView fills the table from the active view's source.
func (m *BrowserModel) loadView() {
	var rows []table.Row

	switch m.view {
	case viewLeaderboard:
		for i, e := range m.board.Top(scores.MaxEntries) {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", e.Score),
				e.Name,
				e.Date,
			})
		}

	case viewBestRuns, viewRecentRuns:
		var (
			runs []storage.Run
			err  error
		)
		if m.view == viewBestRuns {
			runs, err = m.store.TopRuns(maxHistoryRows)
		} else {
			runs, err = m.store.RecentRuns(maxHistoryRows)
		}
		if err == nil {
			for i, r := range runs {
				rows = append(rows, table.Row{
					fmt.Sprintf("#%d", i+1),
					fmt.Sprintf("%d", r.Score),
					r.Name,
					r.CreatedAt.Format("Jan 02 15:04"),
				})
			}
		}
	}

	m.empty = len(rows) == 0
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchView moves delta tabs forward or back, wrapping around.
func (m *BrowserModel) switchView(delta int) {
	views := m.views()
	for i, v := range views {
		if v == m.view {
			m.view = views[(i+delta+len(views))%len(views)]
			m.loadView()
			return
		}
	}
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadView()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the view switcher line.
func (m BrowserModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	views := m.views()
	tabs := make([]string, len(views))
	for i, v := range views {
		if v == m.view {
			tabs[i] = activeTabStyle.Render(viewTitles[v])
		} else {
			tabs[i] = tabStyle.Render(" " + viewTitles[v] + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or empty message.
func (m BrowserModel) renderTableContent() string {
	if m.empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a round to set a high score!")
	}

	return m.table.View()
}

// centerText centers a possibly multi-line block within the given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunBrowser runs the score browser screen.
func RunBrowser(board *scores.Board, store *storage.Store, width, height int) error {
	model := NewBrowserModel(board, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
