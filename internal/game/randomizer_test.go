package game

import "testing"

func TestBagDealsEveryKindPerCycle(t *testing.T) {
	src := NewBagSource(1)

	for cycle := 0; cycle < 5; cycle++ {
		seen := make(map[PieceKind]int, KindCount)
		for i := 0; i < KindCount; i++ {
			seen[src.Next()]++
		}
		if len(seen) != KindCount {
			t.Fatalf("cycle %d dealt %d distinct kinds, want %d", cycle, len(seen), KindCount)
		}
		for kind, n := range seen {
			if n != 1 {
				t.Fatalf("cycle %d dealt %v %d times, want exactly once", cycle, kind, n)
			}
		}
	}
}

func TestBagRepeatGapBounded(t *testing.T) {
	src := NewBagSource(7)

	last := make(map[PieceKind]int)
	for i := 0; i < 700; i++ {
		k := src.Next()
		if prev, ok := last[k]; ok {
			// Adjacent bags bound the gap at 2*KindCount - 1 draws.
			if gap := i - prev; gap > 2*KindCount-1 {
				t.Fatalf("gap of %d draws between repeats of %v at draw %d", gap, k, i)
			}
		}
		last[k] = i
	}
}

func TestBagDeterministicForSeed(t *testing.T) {
	a := NewBagSource(42)
	b := NewBagSource(42)

	for i := 0; i < 3*KindCount; i++ {
		if ka, kb := a.Next(), b.Next(); ka != kb {
			t.Fatalf("draw %d: %v != %v for the same seed", i, ka, kb)
		}
	}
}

func TestSequenceSourceCycles(t *testing.T) {
	src := NewSequenceSource(KindI, KindO, KindT)

	want := []PieceKind{KindI, KindO, KindT, KindI, KindO, KindT, KindI}
	for i, k := range want {
		if got := src.Next(); got != k {
			t.Errorf("draw %d = %v, want %v", i, got, k)
		}
	}
}
