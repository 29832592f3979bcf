package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/squarecontrol/internal/catalog"
	"github.com/vovakirdan/squarecontrol/internal/core"
	"github.com/vovakirdan/squarecontrol/internal/progress"
)

// SolveLog records finished puzzles. *storage.SQLiteStore implements it.
type SolveLog interface {
	SaveSolve(ctx context.Context, levelID string, moves int) (int64, error)
	BestMoves(ctx context.Context) (map[string]int, error)
}

// Deps are the collaborators shared by every screen.
// Progress, Solves and Logger are optional.
type Deps struct {
	Catalog  *catalog.Catalog
	Progress *progress.Tracker
	Solves   SolveLog
	Logger   *log.Logger
}

var discard = log.New(io.Discard)

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return discard
	}
	return d.Logger
}

// AppModel manages the full flow: level list -> puzzle -> level list.
// It is the top-level model for both local and SSH sessions.
type AppModel struct {
	deps     Deps
	config   core.RuntimeConfig
	menu     MenuModel
	puzzle   *PuzzleModel
	quitting bool
}

// NewAppModel starts on the level list, or directly on levelID when set.
func NewAppModel(deps Deps, cfg core.RuntimeConfig, levelID string) (AppModel, error) {
	m := AppModel{
		deps:   deps,
		config: cfg,
	}
	if levelID == "" {
		m.menu = NewMenuModel(deps, cfg, "")
		return m, nil
	}

	pm, err := NewPuzzleModel(deps, levelID, cfg)
	if err != nil {
		return AppModel{}, err
	}
	m.puzzle = &pm
	return m, nil
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	if m.puzzle != nil {
		return m.puzzle.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.puzzle != nil {
		return m.updatePuzzle(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while the level list is shown.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if id := m.menu.Selected(); id != "" {
		pm, err := NewPuzzleModel(m.deps, id, m.config)
		if err != nil {
			m.deps.logger().Error("could not open level", "level", id, "error", err)
			m.menu = NewMenuModel(m.deps, m.config, id)
			return m, nil
		}
		m.puzzle = &pm
		return m, m.puzzle.Init()
	}

	return m, cmd
}

// updatePuzzle handles updates while a puzzle is shown.
func (m AppModel) updatePuzzle(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.puzzle.Update(msg)
	if pm, ok := newModel.(PuzzleModel); ok {
		m.puzzle = &pm
	}

	if m.puzzle.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.puzzle.BackToMenu() {
		m.menu = NewMenuModel(m.deps, m.config, m.puzzle.LevelID())
		m.puzzle = nil
		return m, tea.Batch(cmd, m.menu.Init())
	}

	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.puzzle != nil {
		return m.puzzle.View()
	}
	return m.menu.View()
}

// InPuzzle reports whether a puzzle is on screen.
func (m AppModel) InPuzzle() bool {
	return m.puzzle != nil
}

// programOptions are shared by local and SSH programs.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// Run starts a local Bubble Tea program.
func Run(deps Deps, cfg core.RuntimeConfig, levelID string) error {
	model, err := NewAppModel(deps, cfg, levelID)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, programOptions()...).Run()
	return err
}
