package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	got := embedded()
	want := DefaultConfig()
	if !reflect.DeepEqual(got.Storage, want.Storage) {
		t.Errorf("storage: embedded %+v, hardcoded %+v", got.Storage, want.Storage)
	}
	if !reflect.DeepEqual(got.SSH, want.SSH) || got.HTTP != want.HTTP || got.Log != want.Log {
		t.Errorf("servers/log differ: %+v vs %+v", got, want)
	}
	if got.Generator != want.Generator {
		t.Errorf("generator: embedded %+v, hardcoded %+v", got.Generator, want.Generator)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("storage:\n  driver: redis\n  redis_url: redis://localhost:6379/0\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Storage.Driver != "redis" || cfg.Storage.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	// Untouched sections keep defaults.
	if cfg.SSH.Address != ":23234" || cfg.Log.Prefix != "squarecontrol" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("storage: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"easy", "Normal", " HARD "} {
		if _, err := ParseDifficulty(s); err != nil {
			t.Errorf("ParseDifficulty(%q): %v", s, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("expected error")
	}
}

func TestPresetOptions(t *testing.T) {
	g := DefaultConfig().Generator
	opts := g.Preset(DifficultyHard).Options(7)
	if opts.Seed != 7 || *opts.Board.SquareCount != 49 || *opts.Pieces.Count != 6 || *opts.Pieces.MaxTypes != 4 {
		t.Errorf("hard options = %+v", opts)
	}

	easy := g.Preset(DifficultyEasy).Options(1)
	if easy.Board.ZeroTargetPercentage != nil {
		t.Error("zero percentage should be left unset for easy")
	}
	if g.Preset("unknown") != g.Normal {
		t.Error("unknown preset should fall back to normal")
	}
}
