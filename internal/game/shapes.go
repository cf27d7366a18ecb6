package game

// PieceKind identifies one of the seven tetromino shapes.
type PieceKind int8

const (
	KindI PieceKind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct tetromino kinds.
const KindCount = 7

// Kinds lists every tetromino kind in a fixed order.
var Kinds = [KindCount]PieceKind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// RotationStates is the number of discrete orientations per kind.
const RotationStates = 4

// Point is a 2D grid coordinate. X is the column, Y is the row; row 0 is the
// top of the board and rows grow downward.
type Point struct {
	X, Y int
}

// shapeTable holds the occupied-cell offsets of every kind in every rotation
// state, relative to the piece origin. Each kind has exactly four rotation
// states even where rotations are geometrically identical (O, and the
// two-state symmetry of I, S, and Z).
var shapeTable = [KindCount][RotationStates][4]Point{
	KindI: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	},
	KindO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Shape returns the four cell offsets of the given kind in the given rotation
// state. Rotation is taken modulo the number of rotation states.
func Shape(kind PieceKind, rotation int) [4]Point {
	rotation %= RotationStates
	if rotation < 0 {
		rotation += RotationStates
	}
	return shapeTable[kind][rotation]
}

// String returns the single-letter name of the kind.
func (k PieceKind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}
