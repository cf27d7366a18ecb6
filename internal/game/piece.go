package game

// Piece is the falling tetromino: its kind, rotation state, and board
// position. The position may be transiently outside the board while candidate
// placements are checked.
type Piece struct {
	Kind     PieceKind
	Rotation int
	Pos      Point
}

// NewPiece creates a piece of the given kind at the standard spawn position
// for a board of the given width: horizontally centered, top-aligned,
// rotation 0.
func NewPiece(kind PieceKind, boardWidth int) Piece {
	return Piece{
		Kind: kind,
		Pos:  Point{X: boardWidth/2 - 1, Y: 0},
	}
}

// NewPieceAt creates a piece of the given kind at an explicit position.
func NewPieceAt(kind PieceKind, x, y int) Piece {
	return Piece{Kind: kind, Pos: Point{X: x, Y: y}}
}

// Blocks returns the four board cells the piece occupies.
func (p Piece) Blocks() [4]Point {
	shape := Shape(p.Kind, p.Rotation)
	for i := range shape {
		shape[i].X += p.Pos.X
		shape[i].Y += p.Pos.Y
	}
	return shape
}

// moved returns a copy of the piece shifted by (dx, dy).
func (p Piece) moved(dx, dy int) Piece {
	p.Pos.X += dx
	p.Pos.Y += dy
	return p
}

// rotated returns a copy of the piece turned one quarter turn in the given
// direction. The position is unchanged.
func (p Piece) rotated(clockwise bool) Piece {
	if clockwise {
		p.Rotation = (p.Rotation + 1) % RotationStates
	} else {
		p.Rotation = (p.Rotation + RotationStates - 1) % RotationStates
	}
	return p
}
