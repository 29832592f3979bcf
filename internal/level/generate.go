package level

import (
	"math"
	"slices"

	"github.com/vovakirdan/squarecontrol/internal/chess"
	"github.com/vovakirdan/squarecontrol/internal/prng"
)

// Generate builds a level from opts. The result depends only on opts:
// equal options always yield identical levels.
//
// Generated pieces are left on the board as the reference solution.
// Use Level.Puzzle to obtain the playable version.
func Generate(opts Options) Level {
	r := prng.New(opts.Seed)

	squareCount := min(max(valueOr(r, opts.Board.SquareCount, DefaultMinSquares, DefaultMaxSquares), 1), MaxSquares)
	pieceCount := max(valueOr(r, opts.Pieces.Count, DefaultMinPieces, DefaultMaxPieces), 0)

	width := int(math.Ceil(math.Sqrt(float64(squareCount))))
	height := int(math.Ceil(float64(squareCount) / float64(width)))
	pieceCount = min(pieceCount, width*height)

	depot := generateDepot(r, opts.Pieces, pieceCount)
	board := generateBoard(r, opts.Board, width, height, flatten(depot))

	return Level{Board: board, Depot: depot}
}

func valueOr(r *prng.PRNG, override *int, lo, hi int) int {
	if override != nil {
		return *override
	}
	return r.InRange(float64(lo), float64(hi))
}

func generateDepot(r *prng.PRNG, opts PieceOptions, pieceCount int) []DepotCell {
	pool := opts.typePool()

	limit := min(len(pool), pieceCount)
	if opts.MaxTypes != nil {
		limit = min(limit, *opts.MaxTypes+1)
	}
	numTypes := max(r.InRange(1, float64(limit)), 1)
	types := prng.Sample(r, pool, numTypes)

	var depot []DepotCell
	index := make(map[chess.PieceType]int)
	for range pieceCount {
		t := prng.Element(r, types)
		i, ok := index[t]
		if !ok {
			i = len(depot)
			index[t] = i
			depot = append(depot, DepotCell{Piece: chess.NewPiece(t, chess.Black)})
		}
		depot[i].Available++
	}
	return depot
}

func flatten(depot []DepotCell) []chess.Piece {
	var pieces []chess.Piece
	for _, d := range depot {
		for range d.Available {
			pieces = append(pieces, d.Piece)
		}
	}
	return pieces
}

func generateBoard(r *prng.PRNG, opts BoardOptions, width, height int, pieces []chess.Piece) [][]Cell {
	coords := make([]chess.Position, 0, width*height)
	for y := range height {
		for x := range width {
			coords = append(coords, chess.P(x, y))
		}
	}

	grid := chess.NewGrid(width, height)
	cells := prng.Sample(r, slices.Clone(coords), len(pieces))
	for _, pos := range cells {
		if len(pieces) == 0 {
			break
		}
		i := r.Intn(len(pieces))
		grid.Place(pos, pieces[i])
		pieces = slices.Delete(pieces, i, i+1)
	}

	// Every piece is placed before control is counted so blocking applies.
	expected := make(map[chess.Position]int)
	for _, pos := range cells {
		for _, mv := range chess.LegalMoves(pos, grid) {
			expected[mv]++
		}
	}

	free := func(pos chess.Position) bool {
		_, occupied := grid.PieceAt(pos)
		return !occupied
	}

	if opts.ZeroTargetPercentage != nil {
		var candidates []chess.Position
		for _, pos := range coords {
			if _, ok := expected[pos]; !ok && free(pos) {
				candidates = append(candidates, pos)
			}
		}
		pct := min(max(*opts.ZeroTargetPercentage, 0), 1)
		n := int(math.Round(float64(len(candidates)) * pct))
		for _, pos := range prng.Sample(r, candidates, n) {
			expected[pos] = 0
		}
	}

	if opts.TargetCount != nil {
		var targets []chess.Position
		for _, pos := range coords {
			if _, ok := expected[pos]; ok && free(pos) {
				targets = append(targets, pos)
			}
		}
		if excess := len(targets) - *opts.TargetCount; excess > 0 {
			for _, pos := range prng.Sample(r, targets, excess) {
				delete(expected, pos)
			}
		}
	}

	board := make([][]Cell, height)
	for y := range height {
		board[y] = make([]Cell, width)
		for x := range width {
			pos := chess.P(x, y)
			if p, ok := grid.PieceAt(pos); ok {
				board[y][x] = Occupied(p)
			} else if n, ok := expected[pos]; ok {
				board[y][x] = Target(n)
			} else {
				board[y][x] = Square()
			}
		}
	}
	return board
}
