package game

// Cell is one cell of the settled grid: empty, or filled with the kind tag of
// the piece that locked there. The tag is used for rendering color only.
type Cell int8

// CellEmpty marks an unoccupied cell.
const CellEmpty Cell = -1

// Empty reports whether the cell is unoccupied.
func (c Cell) Empty() bool {
	return c == CellEmpty
}

// Kind returns the kind tag of a filled cell. Calling it on an empty cell is
// a programming error.
func (c Cell) Kind() PieceKind {
	if c.Empty() {
		panic("game: Kind() on empty cell")
	}
	return PieceKind(c)
}

// Board owns the grid of settled cells. Dimensions are fixed at construction;
// row 0 is the top and rows grow downward.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("game: board dimensions must be positive")
	}
	b := &Board{width: width, height: height}
	b.rows = emptyRows(width, height)
	return b
}

func emptyRows(width, height int) [][]Cell {
	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = emptyRow(width)
	}
	return rows
}

func emptyRow(width int) []Cell {
	row := make([]Cell, width)
	for x := range row {
		row[x] = CellEmpty
	}
	return row
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Cell returns the settled cell at (x, y). Out-of-bounds coordinates read as
// empty.
func (b *Board) Cell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return CellEmpty
	}
	return b.rows[y][x]
}

// IsValidPlacement reports whether every block is inside the playable columns,
// above the floor, and not overlapping a settled cell. Blocks above row 0 are
// permitted: a piece may poke over the top of the board while spawning or
// rotating near it.
func (b *Board) IsValidPlacement(blocks [4]Point) bool {
	for _, p := range blocks {
		if p.X < 0 || p.X >= b.width {
			return false
		}
		if p.Y >= b.height {
			return false
		}
		if p.Y >= 0 && !b.rows[p.Y][p.X].Empty() {
			return false
		}
	}
	return true
}

// Lock marks each block as settled with the given kind tag. Blocks above
// row 0 are dropped; the caller guarantees the placement was valid.
func (b *Board) Lock(blocks [4]Point, kind PieceKind) {
	for _, p := range blocks {
		if p.Y < 0 {
			continue
		}
		b.rows[p.Y][p.X] = Cell(kind)
	}
}

// FullRows returns the indices of rows where every column is occupied,
// ordered top to bottom.
func (b *Board) FullRows() []int {
	var full []int
	for y := 0; y < b.height; y++ {
		if b.rowFull(y) {
			full = append(full, y)
		}
	}
	return full
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.rows[y] {
		if c.Empty() {
			return false
		}
	}
	return true
}

// ClearRows removes the named rows and shifts everything above them down,
// inserting empty rows at the top. The set of rows to remove is taken against
// the pre-clear grid in a single compacting pass, so clearing multiple
// non-adjacent rows in one call cannot drift.
func (b *Board) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}

	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y < 0 || y >= b.height {
			panic("game: ClearRows row index out of range")
		}
		remove[y] = true
	}

	dst := b.height - 1
	for y := b.height - 1; y >= 0; y-- {
		if remove[y] {
			continue
		}
		b.rows[dst] = b.rows[y]
		dst--
	}
	for ; dst >= 0; dst-- {
		b.rows[dst] = emptyRow(b.width)
	}
}

// Grid returns a deep copy of the settled grid.
func (b *Board) Grid() [][]Cell {
	grid := make([][]Cell, b.height)
	for y := range grid {
		grid[y] = make([]Cell, b.width)
		copy(grid[y], b.rows[y])
	}
	return grid
}

// FilledCount returns the number of occupied cells in the whole grid.
func (b *Board) FilledCount() int {
	n := 0
	for y := range b.rows {
		for _, c := range b.rows[y] {
			if !c.Empty() {
				n++
			}
		}
	}
	return n
}
