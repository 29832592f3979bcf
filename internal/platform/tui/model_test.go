package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/squarecontrol/internal/catalog"
	"github.com/vovakirdan/squarecontrol/internal/chess"
	"github.com/vovakirdan/squarecontrol/internal/core"
	"github.com/vovakirdan/squarecontrol/internal/level"
	"github.com/vovakirdan/squarecontrol/internal/progress"
	"github.com/vovakirdan/squarecontrol/internal/storage"
)

type fakeSolveLog struct {
	saved map[string]int
}

func (f *fakeSolveLog) SaveSolve(_ context.Context, levelID string, moves int) (int64, error) {
	if f.saved == nil {
		f.saved = map[string]int{}
	}
	f.saved[levelID] = moves
	return int64(len(f.saved)), nil
}

func (f *fakeSolveLog) BestMoves(context.Context) (map[string]int, error) {
	return f.saved, nil
}

func testDeps(t *testing.T) (Deps, *fakeSolveLog) {
	t.Helper()
	kingDepot := []level.DepotEntry{{Piece: chess.King, Available: 1}}
	cat := catalog.New([]catalog.Definition{
		{Template: &level.Template{Board: "_ 1\n_ _", Depot: kingDepot}},
		{Tag: "rook", Template: &level.Template{
			Board: "_ _ 1",
			Depot: []level.DepotEntry{{Piece: chess.Rook, Available: 1}},
		}},
	})
	solves := &fakeSolveLog{}
	return Deps{
		Catalog:  cat,
		Progress: progress.New(storage.NewMemory()),
		Solves:   solves,
	}, solves
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m PuzzleModel, keys ...string) (PuzzleModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		pm, ok := next.(PuzzleModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = pm
	}
	return m, cmd
}

func TestPuzzleKeyboardSolve(t *testing.T) {
	deps, solves := testDeps(t)
	m, err := NewPuzzleModel(deps, "sc:1", core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if !m.cursor.depot {
		t.Fatal("cursor should start on the depot")
	}

	// Pick the king, go up to the bottom-left square and drop it there.
	m, _ = press(t, m, "enter")
	if p, ok := m.Session().SelectedPiece(); !ok || p.Type != chess.King {
		t.Fatalf("selected piece = %v, %v", p, ok)
	}
	m, cmd := press(t, m, "up", "enter")
	if m.cursor != (cursor{x: 0, y: 1}) {
		t.Fatalf("cursor = %+v, want board 0:1", m.cursor)
	}
	if !m.Session().Solved() {
		t.Fatal("king on 0:1 should solve the level")
	}
	if cmd == nil {
		t.Fatal("solving should return a command")
	}
	if m.moves != 1 {
		t.Errorf("moves = %d, want 1", m.moves)
	}

	msg := m.recordSolve()()
	rec, ok := msg.(solveRecordedMsg)
	if !ok || rec.err != nil || rec.levelID != "sc:1" {
		t.Fatalf("recordSolve() = %#v", msg)
	}
	done, err := deps.Progress.Completed(context.Background(), "sc:1")
	if err != nil || !done {
		t.Errorf("Completed(sc:1) = %v, %v", done, err)
	}
	if solves.saved["sc:1"] != 1 {
		t.Errorf("saved solves = %v", solves.saved)
	}
}

func TestPuzzleFailedMoveReselects(t *testing.T) {
	deps, _ := testDeps(t)
	m, err := NewPuzzleModel(deps, "sc:1", core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	// Place the king, then pick it up and drop it on the target: rejected,
	// and the target becomes the selection.
	m, _ = press(t, m, "enter", "up", "enter", "enter")
	if sel, ok := m.Session().Selected(); !ok || sel != level.MustParseCellID("0:1") {
		t.Fatalf("selected = %v, %v", sel, ok)
	}
	m, _ = press(t, m, "up", "right", "enter")
	if sel, ok := m.Session().Selected(); !ok || sel != level.MustParseCellID("1:0") {
		t.Fatalf("after rejected move selected = %v, %v; want target 1:0", sel, ok)
	}
	if _, ok := m.Session().Level().PieceAt(chess.P(0, 1)); !ok {
		t.Error("rejected move should leave the king in place")
	}
}

func TestPuzzleEscAndReset(t *testing.T) {
	deps, _ := testDeps(t)
	m, err := NewPuzzleModel(deps, "sc:1", core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	m, _ = press(t, m, "enter", "esc")
	if _, ok := m.Session().Selected(); ok {
		t.Error("esc should clear the selection")
	}

	m, _ = press(t, m, "enter", "up", "enter", "r")
	if m.Session().PiecesLeft() != 1 || m.moves != 0 {
		t.Errorf("after reset pieces left = %d, moves = %d", m.Session().PiecesLeft(), m.moves)
	}
	if m.status == "" {
		t.Error("reset should show a status line")
	}
}

func TestPuzzleNextPrev(t *testing.T) {
	deps, _ := testDeps(t)
	m, err := NewPuzzleModel(deps, "sc:1", core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	m, _ = press(t, m, "n")
	if m.LevelID() != "sc:2" {
		t.Fatalf("after next level = %s", m.LevelID())
	}
	m, _ = press(t, m, "n")
	if m.LevelID() != "sc:2" || m.status == "" {
		t.Errorf("next on the last level should stay and report, got %s %q", m.LevelID(), m.status)
	}
	m, _ = press(t, m, "p")
	if m.LevelID() != "sc:1" {
		t.Errorf("after prev level = %s", m.LevelID())
	}
}

func TestPuzzleUnknownLevel(t *testing.T) {
	deps, _ := testDeps(t)
	if _, err := NewPuzzleModel(deps, "sc:99", core.DefaultConfig()); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestPuzzleMouse(t *testing.T) {
	deps, _ := testDeps(t)
	m, err := NewPuzzleModel(deps, "sc:1", core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	lay := computeLayout(m.Session().Snapshot())

	click := func(id string) {
		t.Helper()
		var r core.Rect
		c := level.MustParseCellID(id)
		if i, ok := c.DepotIndex(); ok {
			r = lay.slots[i]
		} else {
			p, _ := c.Position()
			r = lay.cells[p.Y][p.X]
		}
		next, _ := m.Update(tea.MouseMsg{
			X:      r.X + 1,
			Y:      r.Y,
			Action: tea.MouseActionPress,
			Button: tea.MouseButtonLeft,
		})
		m = next.(PuzzleModel)
	}

	click("d:0")
	click("0:1")
	if !m.Session().Solved() {
		t.Error("clicking depot then 0:1 should solve the level")
	}
	if m.cursor != (cursor{x: 0, y: 1}) {
		t.Errorf("cursor should follow the click, got %+v", m.cursor)
	}
}

func TestLayoutHit(t *testing.T) {
	deps, _ := testDeps(t)
	m, err := NewPuzzleModel(deps, "sc:1", core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	lay := computeLayout(m.Session().Snapshot())

	tests := []struct {
		name string
		x, y int
		want string
		ok   bool
	}{
		{"first square", marginX, boardTop, "0:0", true},
		{"target", marginX + cellW, boardTop, "1:0", true},
		{"second row", marginX + 2, boardTop + 1, "0:1", true},
		{"depot slot", marginX, lay.depotY + 1, "d:0", true},
		{"title", 0, 0, "", false},
		{"frame", marginX - 1, boardTop, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := lay.hit(tc.x, tc.y)
			if ok != tc.ok {
				t.Fatalf("hit(%d, %d) ok = %v, want %v", tc.x, tc.y, ok, tc.ok)
			}
			if ok && id.String() != tc.want {
				t.Errorf("hit(%d, %d) = %s, want %s", tc.x, tc.y, id, tc.want)
			}
		})
	}
}

func TestCursorMove(t *testing.T) {
	deps, _ := testDeps(t)
	m, err := NewPuzzleModel(deps, "sc:1", core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	snap := m.Session().Snapshot()

	tests := []struct {
		name   string
		from   cursor
		action core.Action
		want   cursor
	}{
		{"clamp left", cursor{x: 0, y: 0}, core.ActionLeft, cursor{x: 0, y: 0}},
		{"move right", cursor{x: 0, y: 0}, core.ActionRight, cursor{x: 1, y: 0}},
		{"clamp right", cursor{x: 1, y: 0}, core.ActionRight, cursor{x: 1, y: 0}},
		{"into depot", cursor{x: 0, y: 1}, core.ActionDown, cursor{depot: true}},
		{"out of depot", cursor{depot: true}, core.ActionUp, cursor{x: 0, y: 1}},
		{"depot wraps", cursor{depot: true}, core.ActionRight, cursor{depot: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.move(tc.action, snap); got != tc.want {
				t.Errorf("move = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPuzzleView(t *testing.T) {
	deps, _ := testDeps(t)
	m, err := NewPuzzleModel(deps, "sc:2", core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	out := m.View()
	if !strings.Contains(m.screen.Row(0), "Level 2 - rook") {
		t.Errorf("title row = %q", m.screen.Row(0))
	}
	if !strings.Contains(m.screen.Row(0), "3x1; t=1; R") {
		t.Errorf("summary missing from title row %q", m.screen.Row(0))
	}
	if !strings.Contains(m.screen.Row(1), "0%") {
		t.Errorf("HUD row = %q", m.screen.Row(1))
	}
	if !strings.Contains(out, "reset") {
		t.Error("view should include the help bar")
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 1, "World")
	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen = %q, want %q", got, s.String())
	}
}
