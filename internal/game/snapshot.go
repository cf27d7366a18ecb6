package game

// Snapshot is an immutable copy of everything a renderer needs. The platform
// may hand it to another goroutine; nothing in it aliases engine state.
type Snapshot struct {
	Grid       [][]Cell    // Settled cells, row 0 at the top
	PieceCells []Point     // Cells of the active piece, nil when absent
	PieceKind  PieceKind   // Kind of the active piece, valid when PieceCells is set
	Queue      []PieceKind // Upcoming pieces, front first
	Score      int
	Level      int
	Lines      int
	Phase      Phase
	Paused     bool
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:   g.board.Grid(),
		Queue:  g.Queue(),
		Score:  g.score.Score(),
		Level:  g.score.Level(),
		Lines:  g.score.Lines(),
		Phase:  g.phase,
		Paused: g.paused,
	}

	if g.hasPiece {
		blocks := g.piece.Blocks()
		snap.PieceCells = blocks[:]
		snap.PieceKind = g.piece.Kind
	}

	return snap
}

// RenderGrid returns the settled grid with the active piece overlaid, for
// callers that want a single flattened view of the well.
func (g *Game) RenderGrid() [][]Cell {
	grid := g.board.Grid()
	if !g.hasPiece {
		return grid
	}
	for _, p := range g.piece.Blocks() {
		if p.Y >= 0 && p.Y < g.board.Height() && p.X >= 0 && p.X < g.board.Width() {
			grid[p.Y][p.X] = Cell(g.piece.Kind)
		}
	}
	return grid
}
