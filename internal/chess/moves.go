package chess

// direction is a unit step on the board.
type direction struct{ dx, dy int }

var (
	orthogonal = []direction{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonal   = []direction{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
	allDirs    = append(append([]direction{}, orthogonal...), diagonal...)

	knightJumps = []direction{
		{1, -2}, {2, -1}, {2, 1}, {1, 2},
		{-1, 2}, {-2, 1}, {-2, -1}, {-1, -2},
	}
)

// LegalMoves returns every position the piece at pos attacks or may move to.
// It returns nil when pos is out of bounds or holds no piece.
func LegalMoves(pos Position, board Board) []Position {
	if !board.InBounds(pos) {
		return nil
	}
	piece, ok := board.PieceAt(pos)
	if !ok {
		return nil
	}

	switch piece.Type {
	case King:
		return rays(pos, piece.Player, board, allDirs, 1)
	case Queen:
		return rays(pos, piece.Player, board, allDirs, 0)
	case Rook:
		return rays(pos, piece.Player, board, orthogonal, 0)
	case Bishop:
		return rays(pos, piece.Player, board, diagonal, 0)
	case Knight:
		return knightMoves(pos, piece.Player, board)
	case Pawn:
		return pawnMoves(pos, piece.Player, board)
	default:
		panic("chess: unhandled piece type " + piece.Type.String())
	}
}

// rays probes each direction from origin. A limit of 0 means unbounded.
func rays(origin Position, player Player, board Board, dirs []direction, limit int) []Position {
	var moves []Position
	for _, d := range dirs {
		cur := origin
		for step := 1; limit == 0 || step <= limit; step++ {
			cur = cur.Add(d.dx, d.dy)
			if !board.InBounds(cur) {
				break
			}
			other, occupied := board.PieceAt(cur)
			if !occupied {
				moves = append(moves, cur)
				continue
			}
			if other.Player != player {
				moves = append(moves, cur)
			}
			break
		}
	}
	return moves
}

func knightMoves(origin Position, player Player, board Board) []Position {
	var moves []Position
	for _, j := range knightJumps {
		dst := origin.Add(j.dx, j.dy)
		if !board.InBounds(dst) {
			continue
		}
		if other, occupied := board.PieceAt(dst); occupied && other.Player == player {
			continue
		}
		moves = append(moves, dst)
	}
	return moves
}

// pawnForward is the row delta a pawn of the given side advances by.
func pawnForward(player Player) int {
	if player == White {
		return -1
	}
	return 1
}

func pawnMoves(origin Position, player Player, board Board) []Position {
	var moves []Position
	dy := pawnForward(player)

	fwd := origin.Add(0, dy)
	if board.InBounds(fwd) {
		if _, occupied := board.PieceAt(fwd); !occupied {
			moves = append(moves, fwd)
		}
	}

	for _, dx := range []int{-1, 1} {
		dst := origin.Add(dx, dy)
		if !board.InBounds(dst) {
			continue
		}
		if other, occupied := board.PieceAt(dst); occupied && other.Player != player {
			moves = append(moves, dst)
		}
	}
	return moves
}
