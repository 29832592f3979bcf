package chess

import "testing"

func TestParsePieceType(t *testing.T) {
	for _, pt := range AllPieceTypes() {
		got, err := ParsePieceType(pt.String())
		if err != nil || got != pt {
			t.Errorf("ParsePieceType(%q) = %v, %v", pt.String(), got, err)
		}
		got, err = ParsePieceType(string(pt.Letter()))
		if err != nil || got != pt {
			t.Errorf("ParsePieceType(%q) = %v, %v", string(pt.Letter()), got, err)
		}
	}
	if _, err := ParsePieceType("dragon"); err == nil {
		t.Error("expected error for unknown piece type")
	}
}

func TestPieceLetters(t *testing.T) {
	tests := []struct {
		piece Piece
		want  rune
	}{
		{NewPiece(Knight, Black), 'N'},
		{NewPiece(Knight, White), 'n'},
		{NewPiece(Queen, White), 'q'},
		{NewPiece(Pawn, Black), 'P'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c, want %c", tt.piece, got, tt.want)
		}
		back, ok := PieceFromLetter(tt.want)
		if !ok || back != tt.piece {
			t.Errorf("PieceFromLetter(%c) = %v, %v", tt.want, back, ok)
		}
	}
	if _, ok := PieceFromLetter('x'); ok {
		t.Error("expected 'x' to be rejected")
	}
}
