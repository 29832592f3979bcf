package level

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/squarecontrol/internal/chess"
)

// ErrInvalidCellID is returned for identifiers that are neither "x:y" nor "d:<i>".
var ErrInvalidCellID = errors.New("invalid cell id")

const depotPrefix = "d:"

// CellID identifies either a board cell or a depot slot.
// The zero value is the board cell 0:0.
type CellID struct {
	depot bool
	pos   chess.Position
	index int
}

// BoardID returns the identifier of the board cell at pos.
func BoardID(pos chess.Position) CellID {
	return CellID{pos: pos}
}

// DepotID returns the identifier of depot slot i.
func DepotID(i int) CellID {
	return CellID{depot: true, index: i}
}

// IsDepot reports whether the id names a depot slot.
func (id CellID) IsDepot() bool {
	return id.depot
}

// Position returns the board position, or false for depot ids.
func (id CellID) Position() (chess.Position, bool) {
	if id.depot {
		return chess.Position{}, false
	}
	return id.pos, true
}

// DepotIndex returns the depot slot, or false for board ids.
func (id CellID) DepotIndex() (int, bool) {
	if !id.depot {
		return 0, false
	}
	return id.index, true
}

// String returns "x:y" for board cells and "d:<i>" for depot slots.
func (id CellID) String() string {
	if id.depot {
		return depotPrefix + strconv.Itoa(id.index)
	}
	return id.pos.String()
}

// ParseCellID parses the textual form produced by String.
func ParseCellID(s string) (CellID, error) {
	if rest, ok := strings.CutPrefix(s, depotPrefix); ok {
		i, err := strconv.Atoi(rest)
		if err != nil || i < 0 {
			return CellID{}, fmt.Errorf("%w: %q", ErrInvalidCellID, s)
		}
		return DepotID(i), nil
	}
	xs, ys, ok := strings.Cut(s, ":")
	if !ok {
		return CellID{}, fmt.Errorf("%w: %q", ErrInvalidCellID, s)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return CellID{}, fmt.Errorf("%w: %q", ErrInvalidCellID, s)
	}
	return BoardID(chess.P(x, y)), nil
}

// MustParseCellID is like ParseCellID but panics on error.
func MustParseCellID(s string) CellID {
	id, err := ParseCellID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// MarshalText implements encoding.TextMarshaler.
func (id CellID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *CellID) UnmarshalText(b []byte) error {
	v, err := ParseCellID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}
