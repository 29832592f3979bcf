package session

import (
	"github.com/vovakirdan/squarecontrol/internal/chess"
	"github.com/vovakirdan/squarecontrol/internal/level"
)

// CellView is a read-only view of one board cell.
type CellView struct {
	ID          level.CellID   `json:"id"`
	Kind        level.CellKind `json:"type"`
	Piece       *chess.Piece   `json:"piece,omitempty"`
	Expected    int            `json:"expected"`
	Actual      int            `json:"actual"`
	Selected    bool           `json:"selected"`
	Highlighted bool           `json:"highlighted"`
	Tinted      bool           `json:"tinted"`
}

// DepotView is a read-only view of one depot slot.
type DepotView struct {
	ID        level.CellID `json:"id"`
	Piece     chess.Piece  `json:"piece"`
	Available int          `json:"available"`
	Selected  bool         `json:"selected"`
}

// Snapshot is a consistent view of the whole session at one instant.
type Snapshot struct {
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	Board         [][]CellView  `json:"board"`
	Depot         []DepotView   `json:"depot"`
	Selected      *level.CellID `json:"selected,omitempty"`
	SelectedPiece *chess.Piece  `json:"selectedPiece,omitempty"`
	PercentSolved float64       `json:"percentSolved"`
	PiecesLeft    int           `json:"piecesLeft"`
	Solved        bool          `json:"solved"`
}

// Snapshot captures the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Width:         s.state.Width(),
		Height:        s.state.Height(),
		Board:         make([][]CellView, len(s.state.Board)),
		Depot:         make([]DepotView, len(s.state.Depot)),
		PercentSolved: s.percentSolved(),
		PiecesLeft:    s.piecesLeft(),
	}
	snap.Solved = snap.PercentSolved == 1
	if s.selected != nil {
		sel := *s.selected
		snap.Selected = &sel
		if p, ok := s.selectedPiece(); ok {
			snap.SelectedPiece = &p
		}
	}

	for y, row := range s.state.Board {
		snap.Board[y] = make([]CellView, len(row))
		for x, c := range row {
			id := level.BoardID(chess.P(x, y))
			v := CellView{
				ID:     id,
				Kind:   c.Kind,
				Tinted: (x+y)%2 == 1,
			}
			if c.Playable() {
				v.Selected = s.selected != nil && *s.selected == id
				v.Highlighted = s.highlighted(id)
			}
			if c.Piece != nil {
				p := *c.Piece
				v.Piece = &p
			}
			if c.Kind == level.CellTarget {
				v.Expected = c.Expected
				v.Actual = len(s.control[id])
			}
			snap.Board[y][x] = v
		}
	}

	for i, d := range s.state.Depot {
		id := level.DepotID(i)
		snap.Depot[i] = DepotView{
			ID:        id,
			Piece:     d.Piece,
			Available: d.Available,
			Selected:  s.selected != nil && *s.selected == id,
		}
	}
	return snap
}
