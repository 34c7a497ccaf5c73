package engine

// ActivePiece is a tetromino in play: shape, orientation, and the
// board position of its bounding box's origin. Tiles are computed by
// translating the shape's mino offsets by (X, Y).
type ActivePiece struct {
	Shape       Shape
	Orientation Orientation
	X, Y        int
}

// Tile is a single occupied board cell of a piece, with its tile id.
type Tile struct {
	X, Y int
	ID   int
}

// Tiles returns the four board cells this piece occupies.
func (p ActivePiece) Tiles() [4]Tile {
	id := p.Shape.TileID()
	offsets := Minos(p.Shape, p.Orientation)
	var tiles [4]Tile
	for i, off := range offsets {
		tiles[i] = Tile{X: p.X + off.DX, Y: p.Y + off.DY, ID: id}
	}
	return tiles
}

// newSpawnPiece returns a piece at its spawn pose: orientation N, at
// the skyline.
func newSpawnPiece(shape Shape) ActivePiece {
	return ActivePiece{Shape: shape, Orientation: OrientN, X: spawnX(shape), Y: Skyline}
}

// fits reports whether every tile of the piece lies in bounds and on
// an empty cell.
func (p ActivePiece) fits(b *Board) bool {
	for _, t := range p.Tiles() {
		if t.X < 0 || t.X >= BoardWidth || t.Y < 0 || t.Y >= BoardHeight {
			return false
		}
		if !b.rows[t.Y][t.X].Empty() {
			return false
		}
	}
	return true
}

// fitsAt translates the piece by (dx, dy) and reports the result if
// it fits; negative resulting coordinates are rejected explicitly
// rather than relying on unsigned wraparound.
func (p ActivePiece) fitsAt(b *Board, dx, dy int) (ActivePiece, bool) {
	moved := p
	moved.X += dx
	moved.Y += dy
	if moved.X < 0 || moved.Y < 0 {
		return ActivePiece{}, false
	}
	if !moved.fits(b) {
		return ActivePiece{}, false
	}
	return moved, true
}

// fitsAtRotated rotates the piece's orientation by turns, then
// translates by (dx, dy), and reports the result if it fits.
func (p ActivePiece) fitsAtRotated(b *Board, dx, dy, turns int) (ActivePiece, bool) {
	rotated := p
	rotated.Orientation = rotated.Orientation.RotateR(turns)
	rotated.X += dx
	rotated.Y += dy
	if rotated.X < 0 || rotated.Y < 0 {
		return ActivePiece{}, false
	}
	if !rotated.fits(b) {
		return ActivePiece{}, false
	}
	return rotated, true
}

// firstFit rotates the orientation by turns, then tries each offset
// in order against the original position, returning the first pose
// that fits.
func firstFit(p ActivePiece, b *Board, offsets []Offset, turns int) (ActivePiece, bool) {
	base := p
	base.Orientation = base.Orientation.RotateR(turns)
	for _, off := range offsets {
		candidate := base
		candidate.X = p.X + off.DX
		candidate.Y = p.Y + off.DY
		if candidate.X < 0 || candidate.Y < 0 {
			continue
		}
		if candidate.fits(b) {
			return candidate, true
		}
	}
	return ActivePiece{}, false
}

// wellPiece descends the piece as far as it can go without rotating.
func wellPiece(p ActivePiece, b *Board) ActivePiece {
	current := p
	for {
		next, ok := current.fitsAt(b, 0, -1)
		if !ok {
			return current
		}
		current = next
	}
}

// LockingData tracks a single active piece's lock-delay bookkeeping:
// whether it currently rests on the stack, when it last touched down
// or lifted off, how much of its ground-time budget remains, and the
// lowest y it has ever reached (a monotone high-water mark used to
// detect a genuine descent versus a momentary bounce).
type LockingData struct {
	TouchesGround  bool
	LastTouchdown  *GameTime
	LastLiftoff    *GameTime
	GroundTimeLeft GameTime
	LowestY        int
}
