package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/squarecontrol/internal/catalog"
	"github.com/vovakirdan/squarecontrol/internal/chess"
	"github.com/vovakirdan/squarecontrol/internal/core"
	"github.com/vovakirdan/squarecontrol/internal/level"
	"github.com/vovakirdan/squarecontrol/internal/session"
)

// storeTimeout bounds every progress write issued by the UI.
const storeTimeout = 5 * time.Second

// cursor is the keyboard focus: a board square or a depot slot.
type cursor struct {
	depot bool
	x, y  int
	index int
}

func cursorAt(id level.CellID) cursor {
	if i, ok := id.DepotIndex(); ok {
		return cursor{depot: true, index: i}
	}
	p, _ := id.Position()
	return cursor{x: p.X, y: p.Y}
}

func (c cursor) id() level.CellID {
	if c.depot {
		return level.DepotID(c.index)
	}
	return level.BoardID(chess.P(c.x, c.y))
}

// move applies a directional action. Down from the last board row enters
// the depot and up from the depot returns to the board.
func (c cursor) move(a core.Action, snap session.Snapshot) cursor {
	dx, dy := a.Delta()
	if c.depot {
		switch {
		case dy < 0 && snap.Height > 0:
			x := core.Clamp(c.index*slotW/cellW, 0, max(snap.Width-1, 0))
			return cursor{x: x, y: snap.Height - 1}
		case dx != 0 && len(snap.Depot) > 0:
			c.index = (c.index + dx + len(snap.Depot)) % len(snap.Depot)
		}
		return c
	}
	if dy > 0 && c.y >= snap.Height-1 && len(snap.Depot) > 0 {
		i := core.Clamp(c.x*cellW/slotW, 0, len(snap.Depot)-1)
		return cursor{depot: true, index: i}
	}
	c.x = core.Clamp(c.x+dx, 0, max(snap.Width-1, 0))
	c.y = core.Clamp(c.y+dy, 0, max(snap.Height-1, 0))
	return c
}

// solveRecordedMsg reports the outcome of persisting a solve.
type solveRecordedMsg struct {
	levelID string
	err     error
}

// PuzzleModel is the Bubble Tea model of one puzzle screen.
type PuzzleModel struct {
	deps       Deps
	def        catalog.Definition
	summary    string
	session    *session.Session
	screen     *core.Screen
	theme      Theme
	keys       PuzzleKeyMap
	help       help.Model
	config     core.RuntimeConfig
	cursor     cursor
	moves      int
	solved     bool
	status     string
	statusErr  bool
	statusSeq  int
	quitting   bool
	backToMenu bool
}

// NewPuzzleModel opens the level with the given id.
func NewPuzzleModel(deps Deps, levelID string, cfg core.RuntimeConfig) (PuzzleModel, error) {
	m := PuzzleModel{
		deps:   deps,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		theme:  DefaultTheme(),
		keys:   DefaultPuzzleKeyMap(),
		help:   help.New(),
		config: cfg,
	}
	m.help.Width = cfg.ScreenW
	if err := m.load(levelID); err != nil {
		return PuzzleModel{}, err
	}
	return m, nil
}

// load replaces the current puzzle with the level id.
func (m *PuzzleModel) load(id string) error {
	def, err := m.deps.Catalog.Get(id)
	if err != nil {
		return err
	}
	lvl, err := def.Build()
	if err != nil {
		return fmt.Errorf("tui: build %s: %w", id, err)
	}

	m.def = def
	m.summary = level.Summary(lvl)
	m.session = session.New(lvl)
	m.moves = 0
	m.solved = m.session.Solved()
	m.cursor = cursor{}
	if len(lvl.Depot) > 0 {
		m.cursor = cursor{depot: true}
	}
	m.deps.logger().Debug("level opened", "level", id, "summary", m.summary)
	return nil
}

// LevelID returns the id of the open level.
func (m PuzzleModel) LevelID() string {
	return m.def.ID
}

// Session returns the running session.
func (m PuzzleModel) Session() *session.Session {
	return m.session
}

// Init initializes the model.
func (m PuzzleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PuzzleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case solveRecordedMsg:
		if msg.err != nil {
			m.deps.logger().Warn("could not record solve", "level", msg.levelID, "error", msg.err)
			return m, m.flash("progress not saved: "+msg.err.Error(), true)
		}
		m.deps.logger().Info("level completed", "level", msg.levelID)
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleAction applies one semantic action.
func (m PuzzleModel) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.cursor = m.cursor.move(a, m.session.Snapshot())

	case core.ActionSelect:
		return m, m.activate(m.cursor.id())

	case core.ActionCancel:
		m.session.ClearSelection()

	case core.ActionReset:
		m.session.Reset()
		m.moves = 0
		m.solved = m.session.Solved()
		return m, m.flash("level reset", false)

	case core.ActionNext:
		next, ok := m.deps.Catalog.Next(m.def.ID)
		if !ok {
			return m, m.flash("this is the last level", false)
		}
		return m, m.open(next)

	case core.ActionPrev:
		prev, ok := m.deps.Catalog.Prev(m.def.ID)
		if !ok {
			return m, m.flash("this is the first level", false)
		}
		return m, m.open(prev)

	case core.ActionBack:
		m.backToMenu = true

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *PuzzleModel) open(id string) tea.Cmd {
	if err := m.load(id); err != nil {
		return m.flash(err.Error(), true)
	}
	return nil
}

// handleMouse maps clicks to cells. Left click acts like select on the
// clicked cell and right click drops the selection.
func (m PuzzleModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		id, ok := computeLayout(m.session.Snapshot()).hit(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = cursorAt(id)
		return m, m.activate(id)
	case tea.MouseButtonRight:
		m.session.ClearSelection()
	}
	return m, nil
}

// activate selects id, or moves the held piece onto it.
// A move that is not applied falls back to selecting id.
func (m *PuzzleModel) activate(id level.CellID) tea.Cmd {
	var err error
	sel, has := m.session.Selected()
	_, holding := m.session.SelectedPiece()

	switch {
	case !has:
		err = m.session.Select(id)
	case sel == id:
		m.session.ClearSelection()
	case !holding:
		err = m.session.Select(id)
	default:
		var applied bool
		applied, err = m.session.Move(sel, id)
		if err == nil && applied {
			m.moves++
			m.deps.logger().Debug("move", "level", m.def.ID, "from", sel, "to", id)
			return m.checkSolved()
		}
		if err == nil {
			err = m.session.Select(id)
		}
	}

	if err != nil {
		return m.flash(err.Error(), true)
	}
	return nil
}

// checkSolved records a solve when the board first reaches full control.
func (m *PuzzleModel) checkSolved() tea.Cmd {
	solved := m.session.Solved()
	if !solved || m.solved {
		m.solved = solved
		return nil
	}
	m.solved = true
	return tea.Batch(
		m.flash(fmt.Sprintf("solved in %d moves!", m.moves), false),
		m.recordSolve(),
	)
}

// recordSolve persists completion and the solve log in the background.
func (m *PuzzleModel) recordSolve() tea.Cmd {
	deps, id, moves := m.deps, m.def.ID, m.moves
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if deps.Progress != nil {
			if err := deps.Progress.MarkCompleted(ctx, id); err != nil {
				return solveRecordedMsg{levelID: id, err: err}
			}
		}
		if deps.Solves != nil {
			if _, err := deps.Solves.SaveSolve(ctx, id, moves); err != nil {
				return solveRecordedMsg{levelID: id, err: err}
			}
		}
		return solveRecordedMsg{levelID: id}
	}
}

// flash shows a status line that expires after statusTTL.
func (m *PuzzleModel) flash(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	return expireStatus(m.statusSeq, statusTTL)
}

// View renders the puzzle screen and the help bar.
func (m PuzzleModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	lay := computeLayout(snap)
	width := max(m.config.ScreenW, lay.frame.Right()+marginX, marginX+len(snap.Depot)*slotW)
	m.screen.Resize(width, lay.height)
	m.screen.Clear()

	m.drawHUD(snap)
	drawBoard(m.screen, snap, lay, m.cursor, m.theme)
	if m.status != "" {
		st := m.theme.HUDValue
		if m.statusErr {
			st = m.theme.Error
		}
		m.screen.DrawStyledText(marginX, lay.height-1, m.status, st)
	}

	return RenderScreen(m.screen) + "\n" + m.theme.Help.Render(m.help.View(m.keys))
}

// drawHUD writes the title row and the progress row.
func (m PuzzleModel) drawHUD(snap session.Snapshot) {
	s, th := m.screen, m.theme
	s.DrawStyledText(marginX, 0, m.def.Name, th.Title)
	s.DrawStyledText(marginX+len([]rune(m.def.Name))+2, 0, m.summary, th.HUDLabel)

	x := marginX
	field := func(label, value string, vs core.Style) {
		s.DrawStyledText(x, 1, label, th.HUDLabel)
		x += len(label) + 1
		s.DrawStyledText(x, 1, value, vs)
		x += len([]rune(value)) + 3
	}

	if snap.Solved {
		field("control", "SOLVED", th.Solved)
	} else {
		field("control", fmt.Sprintf("%.0f%%", snap.PercentSolved*100), th.HUDValue)
	}
	field("pieces", fmt.Sprint(snap.PiecesLeft), th.HUDValue)
	field("moves", fmt.Sprint(m.moves), th.HUDValue)
	if snap.SelectedPiece != nil {
		field("holding", snap.SelectedPiece.String(), th.HUDValue)
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m PuzzleModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested the level list.
func (m PuzzleModel) BackToMenu() bool {
	return m.backToMenu
}
