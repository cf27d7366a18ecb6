package game

import (
	"fmt"
	"time"
)

// Per-line base scores, multiplied by the current level.
const (
	ScoreSingle = 100
	ScoreDouble = 300
	ScoreTriple = 500
	ScoreTetris = 800
)

// ScoreForClear returns the points awarded for clearing rowCount rows at the
// given level. A single piece occupies at most four rows, so rowCount above
// four can only come from a logic defect and panics.
func ScoreForClear(rowCount, level int) int {
	switch rowCount {
	case 0:
		return 0
	case 1:
		return ScoreSingle * level
	case 2:
		return ScoreDouble * level
	case 3:
		return ScoreTriple * level
	case 4:
		return ScoreTetris * level
	default:
		panic(fmt.Sprintf("game: impossible clear of %d rows", rowCount))
	}
}

// ScoreKeeper tracks score, level, and cleared lines. Score and level only
// ever increase; the level is recomputed from the lines total on every clear
// so multi-row clears cannot double-count.
type ScoreKeeper struct {
	score int
	lines int
	level int

	startLevel    int
	linesPerLevel int
	baseTick      time.Duration
	minTick       time.Duration
	speedStep     time.Duration
}

// NewScoreKeeper creates a keeper at the configured start level with zero
// score and lines.
func NewScoreKeeper(cfg Config) ScoreKeeper {
	return ScoreKeeper{
		level:         cfg.StartLevel,
		startLevel:    cfg.StartLevel,
		linesPerLevel: cfg.LinesPerLevel,
		baseTick:      cfg.BaseTick,
		minTick:       cfg.MinTick,
		speedStep:     cfg.SpeedStep,
	}
}

// Score returns the current score.
func (s *ScoreKeeper) Score() int {
	return s.score
}

// Level returns the current level.
func (s *ScoreKeeper) Level() int {
	return s.level
}

// Lines returns the total number of cleared lines.
func (s *ScoreKeeper) Lines() int {
	return s.lines
}

// AddClear records a line clear of rowCount rows and returns the new level if
// it changed, or 0 otherwise.
func (s *ScoreKeeper) AddClear(rowCount int) (leveledTo int) {
	s.score += ScoreForClear(rowCount, s.level)
	s.lines += rowCount

	newLevel := s.startLevel + s.lines/s.linesPerLevel
	if newLevel > s.level {
		s.level = newLevel
		return s.level
	}
	return 0
}

// AddDropBonus awards points for manually dropped rows.
func (s *ScoreKeeper) AddDropBonus(points int) {
	if points > 0 {
		s.score += points
	}
}

// TickInterval returns the gravity interval for the current level: the base
// interval shortened by one step per level above the first, floored at the
// minimum. Strictly non-increasing in level.
func (s *ScoreKeeper) TickInterval() time.Duration {
	d := s.baseTick - time.Duration(s.level-1)*s.speedStep
	if d < s.minTick {
		return s.minTick
	}
	return d
}
