package level

import (
	"github.com/vovakirdan/squarecontrol/internal/chess"
)

// Level is a board plus its depot. Treat it as read-only once built.
type Level struct {
	Board [][]Cell    `json:"board" yaml:"board"`
	Depot []DepotCell `json:"depot" yaml:"depot"`
}

// Width returns the length of the longest row.
func (l Level) Width() int {
	w := 0
	for _, row := range l.Board {
		w = max(w, len(row))
	}
	return w
}

// Height returns the number of rows.
func (l Level) Height() int {
	return len(l.Board)
}

// CellAt returns the cell at pos. Out-of-range positions report false.
func (l Level) CellAt(pos chess.Position) (Cell, bool) {
	if pos.Y < 0 || pos.Y >= len(l.Board) {
		return Cell{}, false
	}
	row := l.Board[pos.Y]
	if pos.X < 0 || pos.X >= len(row) {
		return Cell{}, false
	}
	return row[pos.X], true
}

// InBounds implements chess.Board.
func (l Level) InBounds(pos chess.Position) bool {
	c, ok := l.CellAt(pos)
	return ok && c.Playable()
}

// PieceAt implements chess.Board.
func (l Level) PieceAt(pos chess.Position) (chess.Piece, bool) {
	c, ok := l.CellAt(pos)
	if !ok || !c.HasPiece() {
		return chess.Piece{}, false
	}
	return *c.Piece, true
}

// Positions returns every playable position in row-major order.
func (l Level) Positions() []chess.Position {
	var out []chess.Position
	for y, row := range l.Board {
		for x, c := range row {
			if c.Playable() {
				out = append(out, chess.P(x, y))
			}
		}
	}
	return out
}

// Targets returns the positions of all target cells in row-major order.
func (l Level) Targets() []chess.Position {
	var out []chess.Position
	for _, pos := range l.Positions() {
		if c, _ := l.CellAt(pos); c.Kind == CellTarget {
			out = append(out, pos)
		}
	}
	return out
}

// PieceCount returns pieces on the board plus pieces available in the depot.
func (l Level) PieceCount() int {
	n := 0
	for _, row := range l.Board {
		for _, c := range row {
			if c.HasPiece() {
				n++
			}
		}
	}
	for _, d := range l.Depot {
		n += d.Available
	}
	return n
}

// Clone returns a deep copy.
func (l Level) Clone() Level {
	out := Level{
		Board: make([][]Cell, len(l.Board)),
		Depot: append([]DepotCell(nil), l.Depot...),
	}
	for y, row := range l.Board {
		out.Board[y] = make([]Cell, len(row))
		for x, c := range row {
			if c.Piece != nil {
				p := *c.Piece
				c.Piece = &p
			}
			out.Board[y][x] = c
		}
	}
	return out
}

// Puzzle returns a copy with every board piece removed.
// The depot is left as is, so a generated level becomes playable.
func (l Level) Puzzle() Level {
	out := l.Clone()
	for _, row := range out.Board {
		for x := range row {
			row[x].Piece = nil
		}
	}
	return out
}

// Solution returns the board pieces keyed by position.
func (l Level) Solution() map[chess.Position]chess.Piece {
	out := make(map[chess.Position]chess.Piece)
	for _, pos := range l.Positions() {
		if p, ok := l.PieceAt(pos); ok {
			out[pos] = p
		}
	}
	return out
}
