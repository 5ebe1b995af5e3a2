package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/type-defender/internal/core"
	"github.com/vovakirdan/type-defender/internal/games/defender/levels"
)

// PickerKeyMap defines the key bindings for the level picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// PickerModel is the Bubble Tea model for choosing a start level.
type PickerModel struct {
	catalog  *levels.Catalog
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	selected int // level number, 0 until chosen
	quitting bool
}

// NewPickerModel creates a new level picker.
func NewPickerModel(catalog *levels.Catalog, width, height int) PickerModel {
	h := help.New()
	h.Width = width

	m := PickerModel{
		catalog: catalog,
		keys:    DefaultPickerKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates the level table sized to the window.
func (m *PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Lvl", Width: 4},
		{Title: "Keys", Width: 18},
		{Title: "Speed", Width: 6},
		{Title: "Spawn", Width: 7},
		{Title: "Goal", Width: 5},
		{Title: "Description", Width: 40},
	}

	// Give the description whatever width is left
	fixed := 0
	for _, c := range columns[:len(columns)-1] {
		fixed += c.Width + 2
	}
	if rest := m.width - 8 - fixed; rest > 10 {
		columns[len(columns)-1].Width = rest
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(levelRows(m.catalog)),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(m.catalog.Len()+1, 3, m.height-8)),
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

// levelRows renders each level as a table row.
func levelRows(c *levels.Catalog) []table.Row {
	rows := make([]table.Row, 0, c.Len())
	for _, lvl := range c.All() {
		keys := make([]string, len(lvl.Keys))
		for i, k := range lvl.Keys {
			keys[i] = strings.ToUpper(string(k))
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", lvl.Number),
			strings.Join(keys, " "),
			fmt.Sprintf("%.1f", lvl.Speed),
			fmt.Sprintf("%.1fs", lvl.SpawnMS/1000),
			fmt.Sprintf("%d", lvl.WordsToComplete),
			lvl.Description,
		})
	}
	return rows
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			m.selected = m.table.Cursor() + 1
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.selected > 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("T Y P I N G   D E F E N D E R", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a level", m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the chosen level number, or 0 if none was chosen.
func (m PickerModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunPicker runs the level picker. It returns the chosen level number,
// or 0 when the user quit.
func RunPicker(catalog *levels.Catalog, width, height int) (int, error) {
	p := tea.NewProgram(
		NewPickerModel(catalog, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("tui: level picker: %w", err)
	}

	m, ok := finalModel.(PickerModel)
	if !ok || m.IsQuitting() {
		return 0, nil
	}
	return m.Selected(), nil
}
