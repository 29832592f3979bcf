package level

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/squarecontrol/internal/chess"
)

// ErrEmptyTemplate is returned when a template has no rows.
var ErrEmptyTemplate = errors.New("level: empty template")

// Template is a hand-made level in text form.
//
// Board rows are whitespace-separated tokens: "_" is an empty square,
// an integer is a target with that requirement, K Q R B N P are black
// pieces on squares (lowercase for white) and anything else is a wall.
type Template struct {
	Board string       `json:"board" yaml:"board"`
	Depot []DepotEntry `json:"depot" yaml:"depot"`
}

// DepotEntry describes one depot slot of a template. Player defaults to black.
type DepotEntry struct {
	Piece     chess.PieceType `json:"piece" yaml:"piece"`
	Player    *chess.Player   `json:"player,omitempty" yaml:"player,omitempty"`
	Available int             `json:"available" yaml:"available"`
}

// Build parses the template into a Level.
func (t Template) Build() (Level, error) {
	board, err := ParseBoard(t.Board)
	if err != nil {
		return Level{}, err
	}
	depot := make([]DepotCell, 0, len(t.Depot))
	for i, e := range t.Depot {
		if e.Available < 0 {
			return Level{}, fmt.Errorf("level: depot entry %d: negative availability %d", i, e.Available)
		}
		player := chess.Black
		if e.Player != nil {
			player = *e.Player
		}
		depot = append(depot, DepotCell{Piece: chess.NewPiece(e.Piece, player), Available: e.Available})
	}
	return Level{Board: board, Depot: depot}, nil
}

// ParseBoard parses the board notation described on Template.
func ParseBoard(s string) ([][]Cell, error) {
	var board [][]Cell
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		row := make([]Cell, len(tokens))
		for x, tok := range tokens {
			row[x] = parseToken(tok)
		}
		board = append(board, row)
	}
	if len(board) == 0 {
		return nil, ErrEmptyTemplate
	}
	return board, nil
}

func parseToken(tok string) Cell {
	if tok == "_" {
		return Square()
	}
	if n, err := strconv.Atoi(tok); err == nil && n >= 0 {
		return Target(n)
	}
	if r := []rune(tok); len(r) == 1 {
		if p, ok := chess.PieceFromLetter(r[0]); ok {
			return Occupied(p)
		}
	}
	return Wall()
}

// Format renders the board in template notation. Walls are written as "#".
func Format(l Level) string {
	var b strings.Builder
	for y, row := range l.Board {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, c := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatCell(c))
		}
	}
	return b.String()
}

func formatCell(c Cell) string {
	switch c.Kind {
	case CellWall:
		return "#"
	case CellSquare:
		if c.Piece != nil {
			return string(c.Piece.Letter())
		}
		return "_"
	case CellTarget:
		return strconv.Itoa(c.Expected)
	default:
		panic(fmt.Sprintf("level: unhandled cell kind %v", c.Kind))
	}
}

// Summary returns "<w>x<h>; t=<targets>; <depot letters>".
func Summary(l Level) string {
	var depot strings.Builder
	for _, d := range l.Depot {
		depot.WriteString(strings.Repeat(string(d.Piece.Letter()), d.Available))
	}
	return fmt.Sprintf("%dx%d; t=%d; %s", l.Width(), l.Height(), len(l.Targets()), depot.String())
}

// TemplateOf converts a level back into a Template.
func TemplateOf(l Level) Template {
	t := Template{Board: Format(l)}
	for _, d := range l.Depot {
		e := DepotEntry{Piece: d.Piece.Type, Available: d.Available}
		if d.Piece.Player != chess.Black {
			p := d.Piece.Player
			e.Player = &p
		}
		t.Depot = append(t.Depot, e)
	}
	return t
}
