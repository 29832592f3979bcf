package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/squarecontrol/internal/catalog"
	"github.com/vovakirdan/squarecontrol/internal/core"
)

// Level list layout constants
const (
	menuChromeRows = 7 // title, subtitle, table header and help
	menuMinRows    = 5
	numberColW     = 5
	doneColW       = 4
	bestColW       = 6
	nameColMinW    = 20
	nameColMaxW    = 40
)

// MenuModel is the Bubble Tea model for the level list.
type MenuModel struct {
	deps     Deps
	items    []catalog.Summary
	best     map[string]int
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	theme    Theme
	width    int
	height   int
	quitting bool
	selected string
}

// NewMenuModel creates the level list with the cursor on focus, or on the
// first unsolved level when focus is empty.
func NewMenuModel(deps Deps, cfg core.RuntimeConfig, focus string) MenuModel {
	m := MenuModel{
		deps:   deps,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		theme:  DefaultTheme(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.loadProgress()
	m.table = m.createTable()
	m.updateTableRows()

	if focus != "" {
		m.focus(focus)
	} else {
		m.focusFirstUnsolved()
	}
	return m
}

// loadProgress reads completion flags and best solves.
// Backend errors leave the list unmarked.
func (m *MenuModel) loadProgress() {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	completed := map[string]bool{}
	if m.deps.Progress != nil {
		state, err := m.deps.Progress.State(ctx)
		if err != nil {
			m.deps.logger().Warn("could not load progress", "error", err)
		} else {
			completed = state
		}
	}
	m.items = m.deps.Catalog.Summaries(completed)

	m.best = map[string]int{}
	if m.deps.Solves != nil {
		best, err := m.deps.Solves.BestMoves(ctx)
		if err != nil {
			m.deps.logger().Warn("could not load solves", "error", err)
		} else {
			m.best = best
		}
	}
}

// createTable creates a table sized to the terminal.
func (m *MenuModel) createTable() table.Model {
	nameW := core.Clamp(m.width-numberColW-doneColW-bestColW-10, nameColMinW, nameColMaxW)
	columns := []table.Column{
		{Title: "#", Width: numberColW},
		{Title: "Level", Width: nameW},
		{Title: "Done", Width: doneColW},
		{Title: "Best", Width: bestColW},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-menuChromeRows, menuMinRows)),
	)

	s := table.DefaultStyles()
	s.Header = m.theme.TableHeader
	s.Selected = m.theme.TableSelected
	t.SetStyles(s)
	return t
}

// updateTableRows fills the table from the loaded summaries.
func (m *MenuModel) updateTableRows() {
	rows := make([]table.Row, len(m.items))
	for i, it := range m.items {
		done := ""
		if it.Completed {
			done = " ✓"
		}
		best := "-"
		if n, ok := m.best[it.ID]; ok {
			best = fmt.Sprint(n)
		}
		rows[i] = table.Row{fmt.Sprint(i + 1), it.Name, done, best}
	}
	m.table.SetRows(rows)
}

func (m *MenuModel) focus(id string) {
	for i, it := range m.items {
		if it.ID == id {
			m.table.SetCursor(i)
			return
		}
	}
}

func (m *MenuModel) focusFirstUnsolved() {
	for i, it := range m.items {
		if !it.Completed {
			m.table.SetCursor(i)
			return
		}
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if c := m.table.Cursor(); c >= 0 && c < len(m.items) {
				m.selected = m.items[c].ID
			}
			return m, nil

		case key.Matches(msg, m.keys.Continue):
			m.focusFirstUnsolved()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	solved := 0
	for _, it := range m.items {
		if it.Completed {
			solved++
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.theme.MenuTitle.Render(centerText("S Q U A R E   C O N T R O L", m.width)))
	b.WriteString("\n")
	b.WriteString(m.theme.MenuDescription.Render(
		centerText(fmt.Sprintf("%d of %d levels solved", solved, len(m.items)), m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the id of the chosen level, or "" if none.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
