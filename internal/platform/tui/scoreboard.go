package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

const maxScores = 100

// scoreLevels are the level filters the scoreboard cycles through; the
// empty level shows every level.
var scoreLevels = []core.Level{"", core.LevelEasy, core.LevelMedium, core.LevelHard}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Level    key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevGame, k.NextGame, k.Level, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.PrevGame, k.NextGame, k.Level}, {k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev game")),
		Level:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "difficulty")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardNoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	boardErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2)
)

// ScoreboardModel browses the score history one game and level at a time.
type ScoreboardModel struct {
	games  []registry.GameInfo
	game   int
	level  int
	store  *storage.Store
	scores []storage.ScoreEntry
	err    error
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	done   bool
}

// NewScoreboardModel creates a scoreboard opened on gameID, or on the first
// game when gameID is empty or unknown.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.game = i
		}
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) newTable() table.Model {
	dateW := min(max(m.width-40, 12), 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Level", Width: 8},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
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

// load fetches the runs of the selected game and level into the table.
func (m *ScoreboardModel) load() {
	m.scores, m.err = nil, nil
	if m.store != nil && len(m.games) > 0 {
		g := m.games[m.game]
		m.scores, m.err = m.store.TopScores(g.ID, string(scoreLevels[m.level]), g.Order, maxScores)
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.Level,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) levelName() string {
	if level := scoreLevels[m.level]; level != "" {
		return string(level)
	}
	return "all levels"
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.shiftGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.shiftGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.Level):
			m.level = (m.level + 1) % len(scoreLevels)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) shiftGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.game = (m.game + delta + len(m.games)) % len(m.games)
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.done {
		return ""
	}
	if len(m.games) == 0 {
		return boardNoteStyle.Render("No games registered.")
	}

	var b strings.Builder
	title := fmt.Sprintf("HIGH SCORES - %s (%s)", m.games[m.game].Title, m.levelName())
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	var body string
	switch {
	case m.err != nil:
		body = boardErrStyle.Render("Cannot load scores:\n" + m.err.Error())
	case len(m.scores) == 0:
		body = boardNoteStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	default:
		body = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(body)))
	b.WriteString("\n")
	b.WriteString(tabStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the game names, falling back to the current one between
// arrows when they do not fit.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.game {
			parts[i] = activeTabStyle.Render(g.Title)
		} else {
			parts[i] = tabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", activeTabStyle.Render(m.games[m.game].Title))
	}
	return line
}

// RunScoreboard runs the scoreboard screen opened on gameID.
func RunScoreboard(store *storage.Store, gameID string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, gameID, width, height),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
