package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/game"
)

// keyMsgFor builds a key message the way the terminal driver would.
func keyMsgFor(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func snapshotFor(t *testing.T, kinds ...game.PieceKind) game.Snapshot {
	t.Helper()
	g := game.NewWithSource(game.DefaultRules(), game.NewSequenceSource(kinds...))
	return g.Snapshot()
}

func TestDrawShowsHUDAndWell(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := snapshotFor(t, game.KindO)

	Draw(s, snap, 0)

	top := s.Row(0)
	if !strings.Contains(top, "Score: 0") {
		t.Errorf("HUD missing score: %q", top)
	}
	if !strings.Contains(top, "Level: 1") {
		t.Errorf("HUD missing level: %q", top)
	}

	// The well border must be present somewhere in the buffer
	if !strings.ContainsRune(s.String(), '┌') {
		t.Error("expected well border in output")
	}
}

func TestDrawRendersActivePiece(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := snapshotFor(t, game.KindO)

	Draw(s, snap, 0)

	blocks := strings.Count(s.String(), "█")
	// O piece occupies 4 cells at 2 columns each, plus the preview pieces
	if blocks < 8 {
		t.Errorf("expected at least 8 block runes for the active piece, got %d", blocks)
	}
}

func TestDrawPieceUsesKindColor(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := snapshotFor(t, game.KindO)

	Draw(s, snap, 0)

	found := false
	for y := 0; y < s.Height() && !found; y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune == '█' && c.Color == core.ColorBrightYellow {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected the O piece drawn in bright yellow")
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := snapshotFor(t, game.KindO)
	snap.Phase = game.PhaseGameOver
	snap.PieceCells = nil

	Draw(s, snap, 0)

	if !strings.Contains(s.String(), "GAME OVER") {
		t.Error("expected game over overlay")
	}
}

func TestDrawPausedOverlay(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := snapshotFor(t, game.KindO)
	snap.Paused = true

	Draw(s, snap, 0)

	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("expected pause overlay")
	}
}

func TestDrawTooSmall(t *testing.T) {
	s := core.NewScreen(20, 10)
	snap := snapshotFor(t, game.KindO)

	Draw(s, snap, 0)

	if !strings.Contains(s.String(), "Window too small") {
		t.Error("expected resize hint on a tiny screen")
	}
}

func TestDrawShowsHighScore(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := snapshotFor(t, game.KindO)

	Draw(s, snap, 4200)

	if !strings.Contains(s.String(), "4200") {
		t.Error("expected best score in the side panel")
	}
}

func TestRenderScreenPlainContent(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hello")

	out := RenderScreen(s)
	if !strings.Contains(out, "hello") {
		t.Errorf("expected text to survive rendering, got %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected one newline for two rows, got %d", strings.Count(out, "\n"))
	}
}

func TestActionForMapsKeys(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"left", core.ActionMoveLeft},
		{"right", core.ActionMoveRight},
		{"down", core.ActionSoftDrop},
		{" ", core.ActionHardDrop},
		{"up", core.ActionRotateCW},
		{"x", core.ActionRotateCW},
		{"z", core.ActionRotateCCW},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"o", core.ActionNone},
	}

	for _, tt := range tests {
		msg := keyMsgFor(tt.key)
		if got := keys.ActionFor(msg); got != tt.want {
			t.Errorf("key %q: got %v, want %v", tt.key, got, tt.want)
		}
	}
}
