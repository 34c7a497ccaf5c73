package engine

// Board dimensions, per the engine's data model: a 10-wide playfield
// with SKYLINE visible rows and a buffer above it so pieces can exist
// above the skyline before a lock-out is detected.
const (
	BoardWidth  = 10
	Skyline     = 20
	BoardHeight = Skyline + 7

	// Level20G is the level at which gravity is treated as instantaneous
	// (20G): Fall/SoftDrop/MoveSlow/MoveFast/Rotate all well-drop the piece.
	Level20G = 19
)

// Cell holds either no tile (id 0) or a tile-type id in 1..=7.
type Cell int

// Empty reports whether the cell holds no tile.
func (c Cell) Empty() bool { return c == 0 }

// Board is the 2-D grid of locked tiles. Row index 0 is the floor;
// row index increases upward. Writes only ever happen from the Lock
// and LineClear event handlers.
type Board struct {
	rows [BoardHeight][BoardWidth]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the cell at (x, y), or an occupied sentinel cell if the
// coordinates are out of bounds (so callers that forget a bounds check
// fail closed rather than reading an adjacent row).
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return -1
	}
	return b.rows[y][x]
}

// rowComplete reports whether every cell in row y holds a tile.
func (b *Board) rowComplete(y int) bool {
	for x := 0; x < BoardWidth; x++ {
		if b.rows[y][x].Empty() {
			return false
		}
	}
	return true
}

// empty reports whether the board holds no tiles at all.
func (b *Board) empty() bool {
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if !b.rows[y][x].Empty() {
				return false
			}
		}
	}
	return true
}

// lock stamps the piece's four tiles onto the board. Idempotent:
// writing the same tiles twice leaves the board unchanged.
func (b *Board) lock(p ActivePiece) {
	id := Cell(p.Shape.TileID())
	for _, t := range p.Tiles() {
		if t.X >= 0 && t.X < BoardWidth && t.Y >= 0 && t.Y < BoardHeight {
			b.rows[t.Y][t.X] = id
		}
	}
}

// completeRows returns the indices (top to bottom) of every full row.
func (b *Board) completeRows() []int {
	var lines []int
	for y := BoardHeight - 1; y >= 0; y-- {
		if b.rowComplete(y) {
			lines = append(lines, y)
		}
	}
	return lines
}

// Line is a single cleared row, preserved for the post-mortem stat
// history in GameState.LinesCleared.
type Line [BoardWidth]Cell

// clearLines removes every full row (moving rows above it down by
// one and pushing an empty row onto the top), and returns the removed
// rows top-to-bottom in clearing order.
func (b *Board) clearLines() []Line {
	var removed []Line
	for y := BoardHeight - 1; y >= 0; y-- {
		if !b.rowComplete(y) {
			continue
		}
		var line Line
		copy(line[:], b.rows[y][:])
		removed = append(removed, line)
		for yy := y; yy < BoardHeight-1; yy++ {
			b.rows[yy] = b.rows[yy+1]
		}
		b.rows[BoardHeight-1] = [BoardWidth]Cell{}
	}
	return removed
}

// wouldBeEmptyAfterClearing simulates removing the given rows and
// reports whether the board would then hold no tiles — used to
// detect a perfect clear before the removal actually happens.
func (b *Board) wouldBeEmptyAfterClearing(rows []int) bool {
	cleared := make(map[int]bool, len(rows))
	for _, y := range rows {
		cleared[y] = true
	}
	for y := 0; y < BoardHeight; y++ {
		if cleared[y] {
			continue
		}
		for x := 0; x < BoardWidth; x++ {
			if !b.rows[y][x].Empty() {
				return false
			}
		}
	}
	return true
}
