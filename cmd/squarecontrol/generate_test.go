package main

import (
	"testing"

	"github.com/vovakirdan/squarecontrol/internal/chess"
	"github.com/vovakirdan/squarecontrol/internal/config"
)

func TestGenerateOptionsFlagsOverridePreset(t *testing.T) {
	flags := generateCmd.Flags()
	for name, value := range map[string]string{
		"seed":       "7",
		"difficulty": "easy",
		"pieces":     "4",
		"types":      "rook,bishop",
	} {
		if err := flags.Set(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	t.Cleanup(func() {
		flagGenSeed, flagGenDifficulty, flagGenPieces, flagGenTypes = 0, "", 0, nil
	})

	opts, err := generateOptions(generateCmd, config.DefaultConfig().Generator)
	if err != nil {
		t.Fatalf("generateOptions: %v", err)
	}
	if opts.Seed != 7 {
		t.Errorf("seed = %d, want 7", opts.Seed)
	}
	if opts.Pieces.Count == nil || *opts.Pieces.Count != 4 {
		t.Errorf("pieces = %v, want 4", opts.Pieces.Count)
	}
	want := []chess.PieceType{chess.Rook, chess.Bishop}
	if len(opts.Pieces.Types) < len(want) {
		t.Fatalf("types = %v, want suffix %v", opts.Pieces.Types, want)
	}
	got := opts.Pieces.Types[len(opts.Pieces.Types)-len(want):]
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("types = %v, want suffix %v", opts.Pieces.Types, want)
			break
		}
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"127.0.0.1:8080", "8080"},
		{"[::1]:2222", "2222"},
		{"8080", "8080"},
	}
	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
