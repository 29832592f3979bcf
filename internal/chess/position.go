package chess

import "fmt"

// Position is a zero-based board coordinate.
// X is the column, Y is the row and increases downward.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns the position as "x:y".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// Board is the read-only view the move generator needs.
// Walls and out-of-range positions are not in bounds.
type Board interface {
	InBounds(pos Position) bool
	PieceAt(pos Position) (Piece, bool)
}

// Grid is a simple mutable Board backed by a piece map.
// Rows may have different lengths.
type Grid struct {
	rows   []int
	walls  map[Position]bool
	pieces map[Position]Piece
}

// NewGrid creates a full width x height grid with no walls.
func NewGrid(width, height int) *Grid {
	rows := make([]int, height)
	for i := range rows {
		rows[i] = width
	}
	return NewRaggedGrid(rows)
}

// NewRaggedGrid creates a grid whose row i has rowLengths[i] cells.
func NewRaggedGrid(rowLengths []int) *Grid {
	return &Grid{
		rows:   append([]int(nil), rowLengths...),
		walls:  make(map[Position]bool),
		pieces: make(map[Position]Piece),
	}
}

// InBounds implements Board.
func (g *Grid) InBounds(pos Position) bool {
	if pos.Y < 0 || pos.Y >= len(g.rows) || pos.X < 0 || pos.X >= g.rows[pos.Y] {
		return false
	}
	return !g.walls[pos]
}

// PieceAt implements Board.
func (g *Grid) PieceAt(pos Position) (Piece, bool) {
	p, ok := g.pieces[pos]
	return p, ok
}

// Place puts a piece at pos, replacing any piece already there.
func (g *Grid) Place(pos Position, p Piece) {
	g.pieces[pos] = p
}

// Remove clears pos.
func (g *Grid) Remove(pos Position) {
	delete(g.pieces, pos)
}

// SetWall marks pos as a wall and removes any piece on it.
func (g *Grid) SetWall(pos Position) {
	g.walls[pos] = true
	delete(g.pieces, pos)
}
