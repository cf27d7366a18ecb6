// Package config provides YAML-based rules configuration and difficulty
// presets for the game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/game"
)

// TetrisConfig contains every tunable game rule.
type TetrisConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Queue       QueueConfig       `yaml:"queue"`
	Timing      TimingConfig      `yaml:"timing"`
	Progression ProgressionConfig `yaml:"progression"`
	Scoring     ScoringConfig     `yaml:"scoring"`
}

// BoardConfig defines the well dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// QueueConfig defines the upcoming-piece preview.
type QueueConfig struct {
	Preview int `yaml:"preview"`
}

// TimingConfig defines the gravity schedule, in milliseconds.
type TimingConfig struct {
	BaseTickMs  int `yaml:"base_tick_ms"`  // Interval at level 1
	MinTickMs   int `yaml:"min_tick_ms"`   // Interval floor
	SpeedStepMs int `yaml:"speed_step_ms"` // Reduction per level
}

// ProgressionConfig defines level advancement.
type ProgressionConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
	StartLevel    int `yaml:"start_level"`
}

// ScoringConfig defines manual-drop bonuses. Line-clear scores are part of
// the classic rules and not configurable.
type ScoringConfig struct {
	SoftDropBonus int `yaml:"soft_drop_bonus"` // Points per row soft-dropped
	HardDropBonus int `yaml:"hard_drop_bonus"` // Points per row hard-dropped
}

// Validate checks for values the engine cannot work with.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < 4 {
		return fmt.Errorf("config: board width %d is too narrow for a tetromino", c.Board.Width)
	}
	if c.Board.Height < 4 {
		return fmt.Errorf("config: board height %d is too short for a tetromino", c.Board.Height)
	}
	if c.Queue.Preview < 1 {
		return fmt.Errorf("config: preview count %d must be at least 1", c.Queue.Preview)
	}
	if c.Timing.BaseTickMs <= 0 || c.Timing.MinTickMs <= 0 {
		return fmt.Errorf("config: tick intervals must be positive")
	}
	if c.Timing.MinTickMs > c.Timing.BaseTickMs {
		return fmt.Errorf("config: min tick %dms exceeds base tick %dms", c.Timing.MinTickMs, c.Timing.BaseTickMs)
	}
	if c.Progression.LinesPerLevel <= 0 {
		return fmt.Errorf("config: lines per level must be positive")
	}
	return nil
}

// Rules converts the file representation into the engine rule set.
func (c TetrisConfig) Rules() game.Config {
	return game.Config{
		Width:         c.Board.Width,
		Height:        c.Board.Height,
		PreviewCount:  c.Queue.Preview,
		BaseTick:      time.Duration(c.Timing.BaseTickMs) * time.Millisecond,
		MinTick:       time.Duration(c.Timing.MinTickMs) * time.Millisecond,
		SpeedStep:     time.Duration(c.Timing.SpeedStepMs) * time.Millisecond,
		LinesPerLevel: c.Progression.LinesPerLevel,
		StartLevel:    c.Progression.StartLevel,
		SoftDropBonus: c.Scoring.SoftDropBonus,
		HardDropBonus: c.Scoring.HardDropBonus,
	}.Normalize()
}

// DifficultyPreset represents a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
// Unknown presets fall back to easy.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 1
	}
}

// ApplyPreset sets the starting level from a difficulty preset. An empty
// preset leaves the config alone.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Progression.StartLevel = StartLevelForPreset(preset)
}
