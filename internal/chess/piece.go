// Package chess computes attacked squares for single chess pieces on sparse,
// possibly irregular boards. It is not a chess engine: there are no turns,
// no check and no special moves.
package chess

import (
	"fmt"
	"strings"
)

// Player identifies the side a piece belongs to.
type Player uint8

const (
	White Player = iota
	Black
)

// String returns the lowercase player name.
func (p Player) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

// ParsePlayer converts a name to a Player.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return White, fmt.Errorf("chess: unknown player %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Player) UnmarshalText(b []byte) error {
	v, err := ParsePlayer(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// PieceType is the kind of a chess piece.
type PieceType uint8

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	PieceTypeCount // Sentinel value for iteration
)

// AllPieceTypes returns every piece type in declaration order.
func AllPieceTypes() []PieceType {
	types := make([]PieceType, 0, PieceTypeCount)
	for t := King; t < PieceTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// String returns the lowercase piece name.
func (t PieceType) String() string {
	switch t {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "unknown"
	}
}

// Letter returns the algebraic letter of the piece type (uppercase).
func (t PieceType) Letter() rune {
	switch t {
	case King:
		return 'K'
	case Queen:
		return 'Q'
	case Rook:
		return 'R'
	case Bishop:
		return 'B'
	case Knight:
		return 'N'
	case Pawn:
		return 'P'
	default:
		return '?'
	}
}

// ParsePieceType converts a name or algebraic letter to a PieceType.
func ParsePieceType(s string) (PieceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "king", "k":
		return King, nil
	case "queen", "q":
		return Queen, nil
	case "rook", "r":
		return Rook, nil
	case "bishop", "b":
		return Bishop, nil
	case "knight", "n":
		return Knight, nil
	case "pawn", "p":
		return Pawn, nil
	default:
		return King, fmt.Errorf("chess: unknown piece type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t PieceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PieceType) UnmarshalText(b []byte) error {
	v, err := ParsePieceType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Piece is an immutable piece value.
type Piece struct {
	Type   PieceType `json:"type" yaml:"type"`
	Player Player    `json:"player" yaml:"player"`
}

// NewPiece is a convenience constructor for Piece.
func NewPiece(t PieceType, p Player) Piece {
	return Piece{Type: t, Player: p}
}

// Letter returns the piece letter, uppercase for Black and lowercase for White.
func (p Piece) Letter() rune {
	l := p.Type.Letter()
	if p.Player == White {
		return l - 'A' + 'a'
	}
	return l
}

// PieceFromLetter is the inverse of Piece.Letter.
func PieceFromLetter(r rune) (Piece, bool) {
	player := Black
	if r >= 'a' && r <= 'z' {
		player = White
		r = r - 'a' + 'A'
	}
	t, err := ParsePieceType(string(r))
	if err != nil {
		return Piece{}, false
	}
	return Piece{Type: t, Player: player}, true
}

// String returns e.g. "black rook".
func (p Piece) String() string {
	return p.Player.String() + " " + p.Type.String()
}
