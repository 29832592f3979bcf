// Package level holds the puzzle data model and the seeded level generator.
package level

import (
	"fmt"

	"github.com/vovakirdan/squarecontrol/internal/chess"
)

// CellKind discriminates board cells.
type CellKind uint8

const (
	CellWall CellKind = iota
	CellSquare
	CellTarget
)

// String returns the lowercase kind name.
func (k CellKind) String() string {
	switch k {
	case CellWall:
		return "wall"
	case CellSquare:
		return "square"
	case CellTarget:
		return "target"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *CellKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "wall":
		*k = CellWall
	case "square":
		*k = CellSquare
	case "target":
		*k = CellTarget
	default:
		return fmt.Errorf("level: unknown cell kind %q", b)
	}
	return nil
}

// Cell is one board cell.
// Piece is only meaningful for squares, Expected only for targets.
type Cell struct {
	Kind     CellKind     `json:"type" yaml:"type"`
	Piece    *chess.Piece `json:"piece,omitempty" yaml:"piece,omitempty"`
	Expected int          `json:"expected,omitempty" yaml:"expected,omitempty"`
}

// Wall returns an impassable cell.
func Wall() Cell {
	return Cell{Kind: CellWall}
}

// Square returns an empty playable cell.
func Square() Cell {
	return Cell{Kind: CellSquare}
}

// Occupied returns a square holding p.
func Occupied(p chess.Piece) Cell {
	return Cell{Kind: CellSquare, Piece: &p}
}

// Target returns a target cell that must be controlled by expected pieces.
func Target(expected int) Cell {
	return Cell{Kind: CellTarget, Expected: expected}
}

// Playable reports whether the cell takes part in play.
func (c Cell) Playable() bool {
	return c.Kind == CellSquare || c.Kind == CellTarget
}

// HasPiece reports whether a piece stands on the cell.
func (c Cell) HasPiece() bool {
	return c.Kind == CellSquare && c.Piece != nil
}

// DepotCell is a reservoir of interchangeable copies of one piece.
type DepotCell struct {
	Piece     chess.Piece `json:"piece" yaml:"piece"`
	Available int         `json:"available" yaml:"available"`
}
