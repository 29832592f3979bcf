// Package session runs one play-through of a level: it owns the mutable
// board and depot, applies piece transfers and keeps the control map in
// step with every change.
package session

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/squarecontrol/internal/chess"
	"github.com/vovakirdan/squarecontrol/internal/level"
)

// ErrUnknownCell is returned when an id names no playable cell or depot slot.
var ErrUnknownCell = errors.New("unknown cell")

// Session is safe for concurrent use; calls are serialized.
type Session struct {
	mu sync.Mutex

	initial  level.Level
	state    level.Level
	selected *level.CellID
	control  map[level.CellID][]level.CellID
}

// New starts a session on a copy of l. Pieces already on the board stay there.
func New(l level.Level) *Session {
	s := &Session{
		initial: l.Clone(),
		state:   l.Clone(),
	}
	s.recompute()
	return s
}

// Select makes id the current selection if it is a depot slot with pieces
// left, an occupied square or a target. Any other playable cell clears it.
func (s *Session) Select(id level.CellID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(id); err != nil {
		return err
	}

	ok := false
	if i, isDepot := id.DepotIndex(); isDepot {
		ok = s.state.Depot[i].Available > 0
	} else {
		pos, _ := id.Position()
		c, _ := s.state.CellAt(pos)
		switch c.Kind {
		case level.CellSquare:
			ok = c.Piece != nil
		case level.CellTarget:
			ok = true
		case level.CellWall:
		default:
			panic(fmt.Sprintf("session: unhandled cell kind %v", c.Kind))
		}
	}

	if ok {
		s.selected = &id
	} else {
		s.selected = nil
	}
	return nil
}

// ClearSelection drops the current selection.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Move transfers a piece from one cell to another and reports whether it
// was applied. Rejected moves leave the board untouched. The selection is
// cleared after every well-formed attempt, applied or not.
func (s *Session) Move(from, to level.CellID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(from); err != nil {
		return false, err
	}
	if err := s.check(to); err != nil {
		return false, err
	}

	s.selected = nil
	if !s.apply(from, to) {
		return false, nil
	}
	s.recompute()
	return true, nil
}

// Reset restores the level as it was when the session started.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.initial.Clone()
	s.selected = nil
	s.recompute()
}

// apply performs the transfer. Callers hold the lock and have validated ids.
func (s *Session) apply(from, to level.CellID) bool {
	if from == to {
		return false
	}

	fromDepot, fromIsDepot := from.DepotIndex()
	toDepot, toIsDepot := to.DepotIndex()

	switch {
	case fromIsDepot && toIsDepot:
		return false

	case fromIsDepot:
		dst := s.square(to)
		src := &s.state.Depot[fromDepot]
		if dst == nil || dst.Piece != nil || src.Available <= 0 {
			return false
		}
		src.Available--
		p := src.Piece
		dst.Piece = &p
		return true

	case toIsDepot:
		src := s.square(from)
		dst := &s.state.Depot[toDepot]
		if src == nil || src.Piece == nil || src.Piece.Type != dst.Piece.Type {
			return false
		}
		src.Piece = nil
		dst.Available++
		return true

	default:
		src, dst := s.square(from), s.square(to)
		if src == nil || dst == nil || src.Piece == nil || dst.Piece != nil {
			return false
		}
		dst.Piece, src.Piece = src.Piece, nil
		return true
	}
}

// square returns the mutable cell for a board id if it is a Square.
func (s *Session) square(id level.CellID) *level.Cell {
	pos, ok := id.Position()
	if !ok {
		return nil
	}
	c := &s.state.Board[pos.Y][pos.X]
	if c.Kind != level.CellSquare {
		return nil
	}
	return c
}

// check rejects ids outside the level, walls included.
func (s *Session) check(id level.CellID) error {
	if i, ok := id.DepotIndex(); ok {
		if i < 0 || i >= len(s.state.Depot) {
			return fmt.Errorf("%w: %s", ErrUnknownCell, id)
		}
		return nil
	}
	pos, _ := id.Position()
	if !s.state.InBounds(pos) {
		return fmt.Errorf("%w: %s", ErrUnknownCell, id)
	}
	return nil
}

// recompute rebuilds the control map from the current board.
func (s *Session) recompute() {
	control := make(map[level.CellID][]level.CellID)
	for _, pos := range s.state.Positions() {
		from := level.BoardID(pos)
		for _, mv := range chess.LegalMoves(pos, s.state) {
			to := level.BoardID(mv)
			control[to] = append(control[to], from)
		}
	}
	s.control = control
}

// ControlMap returns, for every attacked cell, the cells of the pieces attacking it.
func (s *Session) ControlMap() map[level.CellID][]level.CellID {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[level.CellID][]level.CellID, len(s.control))
	for k, v := range s.control {
		out[k] = slices.Clone(v)
	}
	return out
}

// Actual returns how many pieces control the target at pos.
// It reports false when pos is not a target.
func (s *Session) Actual(pos chess.Position) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.state.CellAt(pos)
	if !ok || c.Kind != level.CellTarget {
		return 0, false
	}
	return len(s.control[level.BoardID(pos)]), true
}

// PercentSolved returns the share of targets whose control count matches
// their requirement, or 0 when the level has no targets.
func (s *Session) PercentSolved() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.percentSolved()
}

func (s *Session) percentSolved() float64 {
	total, solved := 0, 0
	for _, pos := range s.state.Targets() {
		c, _ := s.state.CellAt(pos)
		total++
		if len(s.control[level.BoardID(pos)]) == c.Expected {
			solved++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(solved) / float64(total)
}

// Solved reports whether every target is satisfied.
func (s *Session) Solved() bool {
	return s.PercentSolved() == 1
}

// PiecesLeft returns the number of pieces still in the depot.
func (s *Session) PiecesLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.piecesLeft()
}

func (s *Session) piecesLeft() int {
	n := 0
	for _, d := range s.state.Depot {
		n += d.Available
	}
	return n
}

// Selected returns the current selection.
func (s *Session) Selected() (level.CellID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return level.CellID{}, false
	}
	return *s.selected, true
}

// SelectedPiece returns the piece carried by the selection, if any.
func (s *Session) SelectedPiece() (chess.Piece, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedPiece()
}

func (s *Session) selectedPiece() (chess.Piece, bool) {
	if s.selected == nil {
		return chess.Piece{}, false
	}
	if i, ok := s.selected.DepotIndex(); ok {
		return s.state.Depot[i].Piece, true
	}
	pos, _ := s.selected.Position()
	return s.state.PieceAt(pos)
}

// Highlighted reports whether a board cell relates to the selection:
// either the selected piece attacks it, or it holds a piece that controls
// the selected target.
func (s *Session) Highlighted(id level.CellID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlighted(id)
}

func (s *Session) highlighted(id level.CellID) bool {
	if s.selected == nil || id.IsDepot() {
		return false
	}
	sel := *s.selected
	if _, hasPiece := s.selectedPiece(); !hasPiece {
		return slices.Contains(s.control[sel], id)
	}
	return slices.Contains(s.control[id], sel)
}

// Level returns a copy of the current board and depot.
func (s *Session) Level() level.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// PieceCounts returns the number of pieces per kind on the board and in the depot.
func (s *Session) PieceCounts() map[chess.Piece]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := countBoard(s.state)
	for _, d := range s.state.Depot {
		counts[d.Piece] += d.Available
	}
	return counts
}

func countBoard(l level.Level) map[chess.Piece]int {
	counts := make(map[chess.Piece]int)
	for _, p := range l.Solution() {
		counts[p]++
	}
	return counts
}
