package level

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/vovakirdan/squarecontrol/internal/chess"
)

func TestParseCellID(t *testing.T) {
	tests := []struct {
		in   string
		want CellID
		ok   bool
	}{
		{"0:0", BoardID(chess.P(0, 0)), true},
		{"3:12", BoardID(chess.P(3, 12)), true},
		{"d:0", DepotID(0), true},
		{"d:7", DepotID(7), true},
		{"d:", CellID{}, false},
		{"d:-1", CellID{}, false},
		{"x:1", CellID{}, false},
		{"1", CellID{}, false},
		{"-1:2", CellID{}, false},
		{"", CellID{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCellID(tt.in)
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("got %v, want %v", got, tt.want)
				}
				if got.String() != tt.in {
					t.Errorf("String() = %q, want %q", got.String(), tt.in)
				}
				return
			}
			if !errors.Is(err, ErrInvalidCellID) {
				t.Errorf("expected ErrInvalidCellID, got %v", err)
			}
		})
	}
}

func TestCellIDNamespaces(t *testing.T) {
	if BoardID(chess.P(0, 0)) == DepotID(0) {
		t.Error("board 0:0 and depot 0 must differ")
	}
	if _, ok := DepotID(1).Position(); ok {
		t.Error("depot id reported a position")
	}
	if _, ok := BoardID(chess.P(1, 1)).DepotIndex(); ok {
		t.Error("board id reported a depot index")
	}
}

func TestCellIDJSONMapKey(t *testing.T) {
	m := map[CellID][]CellID{
		BoardID(chess.P(1, 0)): {BoardID(chess.P(0, 0))},
		DepotID(2):             nil,
	}
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	var back map[CellID][]CellID
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 || back[BoardID(chess.P(1, 0))][0] != BoardID(chess.P(0, 0)) {
		t.Errorf("round trip = %v", back)
	}
}
