// Package game implements the falling-block engine: board, active piece,
// piece queue, scoring, and the spawn-fall-lock state machine. It performs no
// I/O and knows nothing about terminals; the platform layer drives it with
// one action or gravity tick per call and renders the returned snapshots.
package game

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Phase is the engine state tag.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLineClearing
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLineClearing:
		return "line_clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// kickOffsets are tried in order when an in-place rotation collides, before
// the rotation is rejected.
var kickOffsets = [5]Point{{1, 0}, {-1, 0}, {0, -1}, {2, 0}, {-2, 0}}

// Game is the engine root: it exclusively owns the board, active piece,
// upcoming queue, piece source, and score keeper. All mutation goes through
// Apply and Tick; everything returned to callers is a copy.
type Game struct {
	cfg      Config
	board    *Board
	piece    Piece
	hasPiece bool
	queue    []PieceKind
	source   PieceSource
	score    ScoreKeeper
	phase    Phase
	paused   bool
	events   []Event
}

// New creates an engine with the given rules. The game does not start until
// Reset provides a seed.
func New(cfg Config) *Game {
	return &Game{cfg: cfg.Normalize(), phase: PhaseSpawning}
}

// NewWithSource creates an engine fed by a caller-supplied piece source and
// starts it immediately. Used by tests that need a fixed piece order.
func NewWithSource(cfg Config, src PieceSource) *Game {
	g := New(cfg)
	g.source = src
	g.start()
	return g
}

// Reset installs a freshly seeded bag source and starts (or restarts) the
// game from scratch.
func (g *Game) Reset(seed int64) {
	g.source = NewBagSource(seed)
	g.start()
}

// start reinitializes all owned state and spawns the first piece.
func (g *Game) start() {
	g.board = NewBoard(g.cfg.Width, g.cfg.Height)
	g.score = NewScoreKeeper(g.cfg)
	g.paused = false
	g.events = nil
	g.hasPiece = false

	g.queue = g.queue[:0]
	for len(g.queue) < g.cfg.PreviewCount {
		g.queue = append(g.queue, g.source.Next())
	}

	g.phase = PhaseSpawning
	g.spawnNext()
}

// Apply processes one discrete player action. Illegal actions are rejected
// silently; the return value reports whether any state changed.
func (g *Game) Apply(a core.Action) bool {
	switch a {
	case core.ActionRestart:
		return g.restart()
	case core.ActionPause:
		return g.togglePause()
	}

	if g.phase != PhaseFalling || g.paused {
		return false
	}

	switch a {
	case core.ActionMoveLeft:
		return g.move(-1, 0)
	case core.ActionMoveRight:
		return g.move(1, 0)
	case core.ActionSoftDrop:
		return g.softDrop()
	case core.ActionHardDrop:
		g.hardDrop()
		return true
	case core.ActionRotateCW:
		return g.rotate(true)
	case core.ActionRotateCCW:
		return g.rotate(false)
	}
	return false
}

// Tick advances gravity by one step: the piece descends one row, or locks
// when it cannot.
func (g *Game) Tick() {
	if g.phase != PhaseFalling || g.paused {
		return
	}
	if !g.move(0, 1) {
		g.lockAndSpawn()
	}
}

// move attempts to shift the active piece and commits on success.
func (g *Game) move(dx, dy int) bool {
	moved := g.piece.moved(dx, dy)
	if !g.board.IsValidPlacement(moved.Blocks()) {
		return false
	}
	g.piece = moved
	g.emit(Event{Kind: EventMoved})
	return true
}

// softDrop moves the piece down one row, awarding the drop bonus. A blocked
// soft drop is a no-op; the piece locks on the next gravity tick.
func (g *Game) softDrop() bool {
	if !g.move(0, 1) {
		return false
	}
	g.score.AddDropBonus(g.cfg.SoftDropBonus)
	return true
}

// hardDrop sends the piece straight to its resting position and locks it
// immediately.
func (g *Game) hardDrop() {
	rows := 0
	for {
		moved := g.piece.moved(0, 1)
		if !g.board.IsValidPlacement(moved.Blocks()) {
			break
		}
		g.piece = moved
		rows++
	}
	g.score.AddDropBonus(rows * g.cfg.HardDropBonus)
	g.lockAndSpawn()
}

// rotate attempts a quarter turn in place, then walks the kick offsets. The
// rotation is rejected with no partial update if nothing fits.
func (g *Game) rotate(clockwise bool) bool {
	rotated := g.piece.rotated(clockwise)
	if g.board.IsValidPlacement(rotated.Blocks()) {
		g.piece = rotated
		g.emit(Event{Kind: EventRotated})
		return true
	}

	for _, k := range kickOffsets {
		kicked := rotated.moved(k.X, k.Y)
		if g.board.IsValidPlacement(kicked.Blocks()) {
			g.piece = kicked
			g.emit(Event{Kind: EventRotated})
			return true
		}
	}
	return false
}

// lockAndSpawn settles the active piece, resolves full rows, and spawns the
// next piece from the queue.
func (g *Game) lockAndSpawn() {
	g.phase = PhaseLineClearing
	g.board.Lock(g.piece.Blocks(), g.piece.Kind)
	g.hasPiece = false
	g.emit(Event{Kind: EventLocked})

	full := g.board.FullRows()
	if len(full) > 0 {
		g.board.ClearRows(full)
		leveledTo := g.score.AddClear(len(full))
		g.emit(Event{Kind: EventLinesCleared, Lines: len(full)})
		if leveledTo > 0 {
			g.emit(Event{Kind: EventLevelUp, Level: leveledTo})
		}
	}

	g.phase = PhaseSpawning
	g.spawnNext()
}

// spawnNext draws the next kind from the queue, refills the queue, and places
// the piece at the spawn position. A colliding spawn ends the game without
// placing anything.
func (g *Game) spawnNext() {
	kind := g.queue[0]
	g.queue = append(g.queue[1:], g.source.Next())

	p := NewPiece(kind, g.cfg.Width)
	if !g.board.IsValidPlacement(p.Blocks()) {
		g.phase = PhaseGameOver
		g.emit(Event{Kind: EventGameOver})
		return
	}

	g.piece = p
	g.hasPiece = true
	g.phase = PhaseFalling
}

// togglePause flips the pause flag. The game cannot be paused once over.
func (g *Game) togglePause() bool {
	if g.phase == PhaseGameOver {
		return false
	}
	g.paused = !g.paused
	if g.paused {
		g.emit(Event{Kind: EventPaused})
	} else {
		g.emit(Event{Kind: EventUnpaused})
	}
	return true
}

// restart reinitializes all owned state, reusing the existing piece source.
// It is the only mutation accepted after game over.
func (g *Game) restart() bool {
	if g.source == nil {
		return false
	}
	g.start()
	g.emit(Event{Kind: EventRestarted})
	return true
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// TakeEvents returns and clears all pending events.
func (g *Game) TakeEvents() []Event {
	ev := g.events
	g.events = nil
	return ev
}

// Phase returns the engine state tag.
func (g *Game) Phase() Phase {
	return g.phase
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// GameOver reports whether the terminal state has been reached.
func (g *Game) GameOver() bool {
	return g.phase == PhaseGameOver
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score.Score()
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.score.Level()
}

// Lines returns the total number of cleared lines.
func (g *Game) Lines() int {
	return g.score.Lines()
}

// Piece returns the active piece, if one exists.
func (g *Game) Piece() (Piece, bool) {
	return g.piece, g.hasPiece
}

// Queue returns a copy of the upcoming-piece queue.
func (g *Game) Queue() []PieceKind {
	q := make([]PieceKind, len(g.queue))
	copy(q, g.queue)
	return q
}

// Board returns the settled grid.
func (g *Game) Board() *Board {
	return g.board
}

// TickInterval returns the gravity interval for the current level.
func (g *Game) TickInterval() time.Duration {
	return g.score.TickInterval()
}
