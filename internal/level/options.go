package level

import "github.com/vovakirdan/squarecontrol/internal/chess"

// Default ranges used when an option is absent. Upper bounds are exclusive.
const (
	DefaultMinSquares = 16
	DefaultMaxSquares = 36
	DefaultMinPieces  = 5
	DefaultMaxPieces  = 12
)

// MaxSquares caps SquareCount. Larger hints are clamped to it.
const MaxSquares = 1024

// Options controls Generate. Nil fields fall back to seeded defaults.
type Options struct {
	Seed   int64        `json:"seed" yaml:"seed"`
	Board  BoardOptions `json:"board,omitempty" yaml:"board,omitempty"`
	Pieces PieceOptions `json:"pieces,omitempty" yaml:"pieces,omitempty"`
}

// BoardOptions shapes the generated board.
type BoardOptions struct {
	// SquareCount is the board area hint, clamped to [1, MaxSquares].
	SquareCount *int `json:"squareCount,omitempty" yaml:"square_count,omitempty"`
	// TargetCount is the maximum number of targets kept.
	TargetCount *int `json:"targetCount,omitempty" yaml:"target_count,omitempty"`
	// ZeroTargetPercentage is the fraction of uncontrolled empty cells
	// turned into targets that must stay unattacked.
	ZeroTargetPercentage *float64 `json:"zeroTargetPercentage,omitempty" yaml:"zero_target_percentage,omitempty"`
}

// PieceOptions shapes the generated depot.
type PieceOptions struct {
	Count    *int              `json:"count,omitempty" yaml:"count,omitempty"`
	MaxTypes *int              `json:"maxTypes,omitempty" yaml:"max_types,omitempty"`
	Types    []chess.PieceType `json:"types,omitempty" yaml:"types,omitempty"`
}

// Int returns a pointer to v, for filling optional fields.
func Int(v int) *int {
	return &v
}

// Float returns a pointer to v, for filling optional fields.
func Float(v float64) *float64 {
	return &v
}

// typePool returns the eligible piece types without duplicates, preserving order.
func (o PieceOptions) typePool() []chess.PieceType {
	if len(o.Types) == 0 {
		return chess.AllPieceTypes()
	}
	seen := make(map[chess.PieceType]bool, len(o.Types))
	pool := make([]chess.PieceType, 0, len(o.Types))
	for _, t := range o.Types {
		if t >= chess.PieceTypeCount || seen[t] {
			continue
		}
		seen[t] = true
		pool = append(pool, t)
	}
	if len(pool) == 0 {
		return chess.AllPieceTypes()
	}
	return pool
}
