package tui

import (
	"fmt"

	"github.com/vovakirdan/squarecontrol/internal/chess"
	"github.com/vovakirdan/squarecontrol/internal/core"
	"github.com/vovakirdan/squarecontrol/internal/level"
	"github.com/vovakirdan/squarecontrol/internal/session"
)

// Puzzle screen geometry, in terminal cells.
const (
	cellW      = 3 // board square width
	slotW      = 5 // depot slot width
	marginX    = 2
	boardTop   = 4 // first board row; title, HUD and frame sit above
	depotGap   = 2 // rows between the board frame and the depot label
	footerRows = 2
)

// layout places every board square and depot slot on the screen.
type layout struct {
	frame  core.Rect
	cells  [][]core.Rect
	depotY int
	slots  []core.Rect
	height int
}

func computeLayout(snap session.Snapshot) layout {
	l := layout{
		frame: core.NewRect(marginX-1, boardTop-1, snap.Width*cellW+2, snap.Height+2),
		cells: make([][]core.Rect, len(snap.Board)),
	}
	for y, row := range snap.Board {
		l.cells[y] = make([]core.Rect, len(row))
		for x := range row {
			l.cells[y][x] = core.NewRect(marginX+x*cellW, boardTop+y, cellW, 1)
		}
	}

	l.depotY = l.frame.Bottom() + depotGap - 1
	l.slots = make([]core.Rect, len(snap.Depot))
	for i := range snap.Depot {
		l.slots[i] = core.NewRect(marginX+i*slotW, l.depotY+1, slotW, 1)
	}
	l.height = l.depotY + 2 + footerRows
	return l
}

// hit maps a screen coordinate to the cell drawn there.
func (l layout) hit(x, y int) (level.CellID, bool) {
	for i, r := range l.slots {
		if r.Contains(x, y) {
			return level.DepotID(i), true
		}
	}
	for cy, row := range l.cells {
		for cx, r := range row {
			if r.Contains(x, y) {
				return level.BoardID(chess.P(cx, cy)), true
			}
		}
	}
	return level.CellID{}, false
}

// drawBoard renders the board, depot and cursor of snap into s.
func drawBoard(s *core.Screen, snap session.Snapshot, l layout, cur cursor, th Theme) {
	s.DrawBox(l.frame, th.Frame)

	for y, row := range snap.Board {
		for x, c := range row {
			r := l.cells[y][x]
			text, st := cellText(c, th)
			if c.Kind != level.CellWall {
				switch {
				case c.Selected:
					st = st.WithBg(th.Selected)
					st.Fg = core.ColorBlack
				case c.Highlighted:
					st = st.WithBg(th.Highlight)
				case c.Tinted:
					st = st.WithBg(th.TintedBg)
				}
			}
			s.DrawStyledText(r.X, r.Y, text, st)
			if !cur.depot && cur.x == x && cur.y == y {
				drawCursor(s, r, th)
			}
		}
	}

	s.DrawStyledText(marginX, l.depotY, "Depot", th.HUDLabel)
	for i, d := range snap.Depot {
		r := l.slots[i]
		st := th.BlackPiece
		if d.Piece.Player == chess.White {
			st = th.WhitePiece
		}
		if d.Available == 0 {
			st = th.Square
		}
		if d.Selected {
			st = st.WithBg(th.Selected)
			st.Fg = core.ColorBlack
		}
		s.DrawStyledText(r.X, r.Y, fmt.Sprintf(" %c%-2d", d.Piece.Letter(), d.Available), st)
		if cur.depot && cur.index == i {
			drawCursor(s, core.NewRect(r.X, r.Y, r.W-1, 1), th)
		}
	}
}

// cellText returns the three-column label and base style of a board cell.
func cellText(c session.CellView, th Theme) (string, core.Style) {
	switch {
	case c.Kind == level.CellWall:
		return "   ", th.Wall
	case c.Piece != nil:
		st := th.BlackPiece
		if c.Piece.Player == chess.White {
			st = th.WhitePiece
		}
		return " " + string(c.Piece.Letter()) + " ", st
	case c.Kind == level.CellTarget:
		st := th.Target
		switch {
		case c.Actual == c.Expected:
			st = th.TargetMet
		case c.Actual > c.Expected:
			st = th.TargetOver
		case c.Actual > 0:
			st = th.TargetShort
		}
		return fmt.Sprintf("%2d ", c.Expected), st
	default:
		return " · ", th.Square
	}
}

// drawCursor frames r with brackets, keeping its background.
func drawCursor(s *core.Screen, r core.Rect, th Theme) {
	left := s.GetCell(r.X, r.Y).Style
	right := s.GetCell(r.Right()-1, r.Y).Style
	st := th.Cursor
	s.SetStyled(r.X, r.Y, '[', st.WithBg(left.Bg))
	s.SetStyled(r.Right()-1, r.Y, ']', st.WithBg(right.Bg))
}
