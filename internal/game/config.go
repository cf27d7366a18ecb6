package game

import "time"

// Default rule values.
const (
	DefaultWidth        = 10
	DefaultHeight       = 20
	DefaultPreviewCount = 4

	DefaultBaseTick  = 800 * time.Millisecond
	DefaultMinTick   = 100 * time.Millisecond
	DefaultSpeedStep = 50 * time.Millisecond

	DefaultLinesPerLevel = 10

	DefaultSoftDropBonus = 1
	DefaultHardDropBonus = 2
)

// Config holds the game rules. All values are fixed for the lifetime of a
// Game; zero or negative fields are replaced with defaults by Normalize.
type Config struct {
	Width        int // Board columns
	Height       int // Board rows
	PreviewCount int // Length of the upcoming-piece queue

	BaseTick  time.Duration // Gravity interval at level 1
	MinTick   time.Duration // Gravity interval floor
	SpeedStep time.Duration // Interval reduction per level

	LinesPerLevel int // Cleared lines needed per level

	StartLevel int // Level the game begins at (difficulty preset)

	SoftDropBonus int // Points per row soft-dropped
	HardDropBonus int // Points per row hard-dropped
}

// DefaultRules returns the classic rule set.
func DefaultRules() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		PreviewCount:  DefaultPreviewCount,
		BaseTick:      DefaultBaseTick,
		MinTick:       DefaultMinTick,
		SpeedStep:     DefaultSpeedStep,
		LinesPerLevel: DefaultLinesPerLevel,
		StartLevel:    1,
		SoftDropBonus: DefaultSoftDropBonus,
		HardDropBonus: DefaultHardDropBonus,
	}
}

// Normalize replaces unusable fields with defaults and returns the result.
// Drop bonuses may legitimately be zero and are left alone.
func (c Config) Normalize() Config {
	def := DefaultRules()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.PreviewCount <= 0 {
		c.PreviewCount = def.PreviewCount
	}
	if c.BaseTick <= 0 {
		c.BaseTick = def.BaseTick
	}
	if c.MinTick <= 0 {
		c.MinTick = def.MinTick
	}
	if c.MinTick > c.BaseTick {
		c.MinTick = c.BaseTick
	}
	if c.SpeedStep < 0 {
		c.SpeedStep = def.SpeedStep
	}
	if c.LinesPerLevel <= 0 {
		c.LinesPerLevel = def.LinesPerLevel
	}
	if c.StartLevel < 1 {
		c.StartLevel = 1
	}
	if c.SoftDropBonus < 0 {
		c.SoftDropBonus = 0
	}
	if c.HardDropBonus < 0 {
		c.HardDropBonus = 0
	}
	return c
}
