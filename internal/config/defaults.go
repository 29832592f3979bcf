package config

import (
	_ "embed"
)

//go:embed defaults/squarecontrol.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration used when the embedded
// defaults cannot be parsed.
func DefaultConfig() AppConfig {
	return AppConfig{
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   "~/.squarecontrol/progress.db",
		},
		Log: LogConfig{
			Level:  "info",
			Prefix: "squarecontrol",
		},
		SSH: SSHConfig{
			Address:            ":23234",
			HostKey:            ".ssh/squarecontrol_ed25519",
			IdleTimeoutMinutes: 30,
		},
		HTTP: HTTPConfig{
			Address: ":8080",
		},
		Generator: GeneratorConfig{
			Easy:   GeneratorPreset{SquareCount: 16, TargetCount: 4, Pieces: 2, MaxTypes: 1},
			Normal: GeneratorPreset{SquareCount: 25, TargetCount: 5, ZeroTargetPercentage: 0.5, Pieces: 4, MaxTypes: 2},
			Hard:   GeneratorPreset{SquareCount: 49, TargetCount: 12, ZeroTargetPercentage: 0.5, Pieces: 6, MaxTypes: 4},
		},
	}
}
