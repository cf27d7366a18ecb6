package game

import (
	"testing"
	"time"
)

func TestScoreForClear(t *testing.T) {
	tests := []struct {
		rows, level, want int
	}{
		{0, 5, 0},
		{1, 1, 100},
		{1, 3, 300},
		{2, 1, 300},
		{3, 1, 500},
		{4, 1, 800},
		{4, 2, 1600},
	}

	for _, tc := range tests {
		if got := ScoreForClear(tc.rows, tc.level); got != tc.want {
			t.Errorf("ScoreForClear(%d, %d) = %d, want %d", tc.rows, tc.level, got, tc.want)
		}
	}
}

func TestScoreForClearPanicsAboveFour(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ScoreForClear(5, 1) should panic")
		}
	}()
	ScoreForClear(5, 1)
}

func TestLevelRecomputedFromLinesTotal(t *testing.T) {
	s := NewScoreKeeper(DefaultRules())

	// 4 + 4 + 1 = 9 lines: still level 1.
	s.AddClear(4)
	s.AddClear(4)
	s.AddClear(1)
	if s.Level() != 1 {
		t.Fatalf("level at 9 lines = %d, want 1", s.Level())
	}

	// A double crosses 10: level 2, not 3 and not skipped.
	if leveledTo := s.AddClear(2); leveledTo != 2 {
		t.Errorf("AddClear crossing the threshold returned %d, want 2", leveledTo)
	}
	if s.Level() != 2 {
		t.Errorf("level at 11 lines = %d, want 2", s.Level())
	}
	if s.Lines() != 11 {
		t.Errorf("lines = %d, want 11", s.Lines())
	}
}

func TestLevelUpNotReportedTwice(t *testing.T) {
	s := NewScoreKeeper(DefaultRules())
	for i := 0; i < 3; i++ {
		s.AddClear(4)
	}
	// 12 lines: level 2 was reported at the crossing, a further clear
	// within the same level reports nothing.
	if leveledTo := s.AddClear(1); leveledTo != 0 {
		t.Errorf("AddClear within a level returned %d, want 0", leveledTo)
	}
}

func TestScoreMultipliedByLevel(t *testing.T) {
	s := NewScoreKeeper(DefaultRules())
	for i := 0; i < 3; i++ {
		s.AddClear(4)
	}

	// Each tetris scores at the level current when the piece landed: three
	// at level 1 (800 each), the third crossing to level 2 after scoring.
	if s.Score() != 2400 {
		t.Errorf("score = %d, want 2400", s.Score())
	}
	if s.Level() != 2 {
		t.Errorf("level = %d, want 2", s.Level())
	}

	// Next tetris scores at level 2.
	s.AddClear(4)
	if s.Score() != 2400+1600 {
		t.Errorf("score = %d, want %d", s.Score(), 2400+1600)
	}
}

func TestStartLevelOffsetsProgression(t *testing.T) {
	cfg := DefaultRules()
	cfg.StartLevel = 5
	s := NewScoreKeeper(cfg)

	if s.Level() != 5 {
		t.Fatalf("start level = %d, want 5", s.Level())
	}
	s.AddClear(4)
	s.AddClear(4)
	s.AddClear(2)
	if s.Level() != 6 {
		t.Errorf("level after 10 lines from start 5 = %d, want 6", s.Level())
	}
}

func TestTickIntervalShrinksWithLevelAndFloors(t *testing.T) {
	s := NewScoreKeeper(DefaultRules())

	prev := s.TickInterval()
	if prev != 800*time.Millisecond {
		t.Fatalf("level 1 interval = %v, want 800ms", prev)
	}

	for level := 2; level <= 40; level++ {
		s.level = level
		d := s.TickInterval()
		if d > prev {
			t.Fatalf("interval increased from %v to %v at level %d", prev, d, level)
		}
		if d < 100*time.Millisecond {
			t.Fatalf("interval %v below the floor at level %d", d, level)
		}
		prev = d
	}

	// Deep levels stay pinned at the floor.
	s.level = 1000
	if s.TickInterval() != 100*time.Millisecond {
		t.Errorf("interval at level 1000 = %v, want 100ms", s.TickInterval())
	}
}

func TestDropBonus(t *testing.T) {
	s := NewScoreKeeper(DefaultRules())
	s.AddDropBonus(5)
	s.AddDropBonus(0)
	s.AddDropBonus(-3) // ignored, score never decreases
	if s.Score() != 5 {
		t.Errorf("score = %d, want 5", s.Score())
	}
}
