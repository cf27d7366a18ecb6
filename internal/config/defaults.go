package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the classic rule set.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Queue: QueueConfig{
			Preview: 4,
		},
		Timing: TimingConfig{
			BaseTickMs:  800,
			MinTickMs:   100,
			SpeedStepMs: 50,
		},
		Progression: ProgressionConfig{
			LinesPerLevel: 10,
			StartLevel:    1,
		},
		Scoring: ScoringConfig{
			SoftDropBonus: 1,
			HardDropBonus: 2,
		},
	}
}
