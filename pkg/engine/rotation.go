package engine

// RotationSystem selects the kick-table variant rotate uses.
type RotationSystem int

const (
	// RotationOcular is the larger, in-house kick table with the most
	// fallback offsets.
	RotationOcular RotationSystem = iota
	// RotationClassic is the right-handed, kick-less (single target
	// pose) system used by NES-era Tetris.
	RotationClassic
	// RotationSuper is the SRS-like system with 5-entry kick tables.
	RotationSuper
)

// rotate attempts to rotate piece by rightTurns quarters using the
// chosen rotation system's kick table. It returns a zero ActivePiece
// and false if no kick fits — the Rotate event handler then keeps the
// previous piece unchanged.
func rotate(sys RotationSystem, piece ActivePiece, board *Board, rightTurns int) (ActivePiece, bool) {
	kicks := Kicks(sys, piece.Shape, piece.Orientation, rightTurns)
	return firstFit(piece, board, kicks, rightTurns)
}

// Kicks returns the ordered candidate offsets a rotation system would
// try for a piece at the given shape/orientation turning by
// rightTurns, without applying them against any board. rotate uses it
// together with firstFit to resolve an actual move; the inspect CLI
// command and tests use it directly to display or assert on a table.
func Kicks(sys RotationSystem, shape Shape, orientation Orientation, rightTurns int) []Offset {
	switch turnRank(rightTurns) {
	case 0:
		return []Offset{{0, 0}}
	case 2:
		return kicks180(sys, shape, orientation)
	default:
		return kicks90(sys, shape, orientation, turnRank(rightTurns) == 3)
	}
}

func turnRank(rightTurns int) int {
	return ((rightTurns % 4) + 4) % 4
}

func kicks90(sys RotationSystem, shape Shape, orientation Orientation, left bool) []Offset {
	switch sys {
	case RotationClassic:
		return []Offset{classicKick(shape, orientation, left)}
	case RotationSuper:
		if shape == ShapeO {
			return []Offset{{0, 0}}
		}
		if shape == ShapeI {
			return superITable(orientation, left)
		}
		return superJLSTZTable(orientation, left)
	default:
		table, mirrorX := ocular90Table(shape, orientation, left)
		kicks := make([]Offset, len(table))
		for i, o := range table {
			if mirrorX != nil {
				kicks[i] = Offset{*mirrorX - o.DX, o.DY}
			} else {
				kicks[i] = o
			}
		}
		return kicks
	}
}

func kicks180(sys RotationSystem, shape Shape, orientation Orientation) []Offset {
	switch sys {
	case RotationClassic:
		return []Offset{{0, 0}}
	case RotationSuper:
		return super180Table(shape, orientation)
	default:
		table, mirror := ocular180Table(shape, orientation)
		kicks := make([]Offset, len(table))
		for i, o := range table {
			if mirror {
				kicks[i] = Offset{-o.DX, o.DY}
			} else {
				kicks[i] = o
			}
		}
		return kicks
	}
}

// --- Classic ---

func classicKick(shape Shape, orientation Orientation, left bool) Offset {
	switch shape {
	case ShapeO:
		return Offset{0, 0}
	case ShapeI:
		switch orientation {
		case OrientN, OrientS:
			return Offset{2, -1}
		default:
			return Offset{-2, 1}
		}
	case ShapeS, ShapeZ:
		switch orientation {
		case OrientN, OrientS:
			return Offset{1, 0}
		default:
			return Offset{-1, 0}
		}
	default: // T, L, J
		switch orientation {
		case OrientN:
			if left {
				return Offset{0, -1}
			}
			return Offset{1, -1}
		case OrientE:
			if left {
				return Offset{-1, 1}
			}
			return Offset{-1, 0}
		case OrientS:
			if left {
				return Offset{1, 0}
			}
			return Offset{0, 0}
		default: // W
			if left {
				return Offset{0, 0}
			}
			return Offset{0, 1}
		}
	}
}

// --- Super (SRS-like) ---

func super180Table(shape Shape, orientation Orientation) []Offset {
	switch shape {
	case ShapeO, ShapeI, ShapeS, ShapeZ:
		return []Offset{{0, 0}}
	default: // T, L, J
		switch orientation {
		case OrientN:
			return []Offset{{0, -1}, {0, 0}}
		case OrientE:
			return []Offset{{-1, 0}, {0, 0}}
		case OrientS:
			return []Offset{{0, 1}, {0, 0}}
		default:
			return []Offset{{1, 0}, {0, 0}}
		}
	}
}

func superITable(o Orientation, left bool) []Offset {
	switch o {
	case OrientN:
		if left {
			return []Offset{{1, -2}, {0, -2}, {3, -2}, {0, 0}, {3, -3}}
		}
		return []Offset{{2, -2}, {0, -2}, {3, -2}, {0, -3}, {3, 0}}
	case OrientE:
		if left {
			return []Offset{{-2, 2}, {0, 2}, {-3, 2}, {0, 3}, {-3, 0}}
		}
		return []Offset{{2, -1}, {-3, 1}, {0, 1}, {-3, 3}, {0, 0}}
	case OrientS:
		if left {
			return []Offset{{2, -1}, {3, -1}, {0, -1}, {3, -3}, {0, 0}}
		}
		return []Offset{{1, -1}, {3, -1}, {0, -1}, {3, 0}, {0, -3}}
	default: // W
		if left {
			return []Offset{{-1, 1}, {-3, 1}, {0, 1}, {-3, 0}, {0, 3}}
		}
		return []Offset{{-1, 2}, {0, 2}, {-3, 2}, {0, 0}, {-3, 3}}
	}
}

func superJLSTZTable(o Orientation, left bool) []Offset {
	switch o {
	case OrientN:
		if left {
			return []Offset{{0, -1}, {1, -1}, {1, 0}, {0, -3}, {1, -3}}
		}
		return []Offset{{1, -1}, {0, -1}, {0, 0}, {1, -3}, {0, -3}}
	case OrientE:
		if left {
			return []Offset{{-1, 1}, {0, 1}, {0, 0}, {-1, 3}, {0, 3}}
		}
		return []Offset{{-1, 0}, {0, 0}, {0, -1}, {-1, 2}, {0, 2}}
	case OrientS:
		if left {
			return []Offset{{1, 0}, {0, 0}, {-1, 1}, {1, -2}, {0, -2}}
		}
		return []Offset{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}
	default: // W
		if left {
			return []Offset{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}
		}
		return []Offset{{0, 1}, {-1, 1}, {-1, 0}, {0, 3}, {-1, 3}}
	}
}

// --- Ocular (in-house) ---

// ocular90Table resolves the kick table (and optional mirror-x pivot)
// for a single 90-degree turn. S/Z and L/J are symmetric pairs: Z and
// J borrow S's and L's tables via a mirror-x reflection, the way the
// reference implementation encodes the symmetry once per pair instead
// of duplicating tables.
func ocular90Table(shape Shape, orientation Orientation, left bool) ([]Offset, *int) {
	switch shape {
	case ShapeO:
		table := []Offset{{-1, 0}, {-1, -1}, {-1, 1}, {0, 0}}
		if !left {
			mx := 0
			return table, &mx
		}
		return table, nil
	case ShapeI:
		table := ocularITableLeft(orientation)
		if !left {
			mx := 3
			if orientation == OrientE || orientation == OrientW {
				mx = -3
			}
			return table, &mx
		}
		return table, nil
	case ShapeS:
		return ocularSTable(orientation, left), nil
	case ShapeZ:
		mx := 1
		if orientation == OrientE || orientation == OrientW {
			mx = -1
		}
		return ocularSTable(orientation, !left), &mx
	case ShapeT:
		if !left {
			mx := 1
			if orientation == OrientE || orientation == OrientW {
				mx = -1
			}
			return ocularTTableLeft(flipEW(orientation)), &mx
		}
		return ocularTTableLeft(orientation), nil
	case ShapeL:
		return ocularLTable(orientation, left), nil
	default: // J
		mx := 1
		if orientation == OrientE || orientation == OrientW {
			mx = -1
		}
		return ocularLTable(flipEW(orientation), !left), &mx
	}
}

// flipEW swaps E and W, leaving N and S fixed — the orientation
// mirror used to borrow one shape's table for its mirror-image shape.
func flipEW(o Orientation) Orientation {
	switch o {
	case OrientE:
		return OrientW
	case OrientW:
		return OrientE
	default:
		return o
	}
}

func ocularITableLeft(o Orientation) []Offset {
	switch o {
	case OrientN, OrientS:
		return []Offset{{1, -1}, {1, -2}, {1, -3}, {0, -1}, {0, -2}, {0, -3}, {1, 0}, {0, 0}, {2, -1}, {2, -2}}
	default:
		return []Offset{{-2, 1}, {-3, 1}, {-2, 0}, {-3, 0}, {-1, 1}, {0, 1}}
	}
}

func ocularSTable(o Orientation, left bool) []Offset {
	switch o {
	case OrientN, OrientS:
		if left {
			return []Offset{{0, 0}, {0, -1}, {1, 0}, {-1, -1}}
		}
		return []Offset{{1, 0}, {1, -1}, {1, 1}, {0, 0}, {0, -1}}
	default:
		if left {
			return []Offset{{-1, 0}, {0, 0}, {-1, -1}, {-1, 1}, {0, 1}}
		}
		return []Offset{{0, 0}, {-1, 0}, {0, -1}, {1, 0}, {0, 1}, {-1, 1}}
	}
}

func ocularTTableLeft(o Orientation) []Offset {
	switch o {
	case OrientN:
		return []Offset{{0, -1}, {0, 0}, {-1, -1}, {1, -1}, {-1, -2}, {1, 0}}
	case OrientE:
		return []Offset{{-1, 1}, {-1, 0}, {0, 1}, {0, 0}, {-1, -1}, {-1, 2}}
	case OrientS:
		return []Offset{{1, 0}, {0, 0}, {1, -1}, {0, -1}, {1, -2}, {2, 0}}
	default:
		return []Offset{{0, 0}, {-1, 0}, {0, -1}, {-1, -1}, {1, -1}, {0, 1}, {-1, 1}}
	}
}

func ocularLTable(o Orientation, left bool) []Offset {
	switch o {
	case OrientN:
		if left {
			return []Offset{{0, -1}, {1, -1}, {0, -2}, {1, -2}, {0, 0}, {1, 0}}
		}
		return []Offset{{1, -1}, {1, 0}, {1, -1}, {2, 0}, {0, -1}, {0, 0}}
	case OrientE:
		if left {
			return []Offset{{-1, 1}, {-1, 0}, {-2, 1}, {-2, 0}, {0, 0}, {0, 1}}
		}
		return []Offset{{-1, 0}, {0, 0}, {0, -1}, {-1, -1}, {0, 1}, {-1, 1}}
	case OrientS:
		if left {
			return []Offset{{1, 0}, {0, 0}, {1, -1}, {0, -1}, {0, 1}, {1, 1}}
		}
		return []Offset{{0, 0}, {0, -1}, {1, -1}, {-1, -1}, {1, 0}, {-1, 0}, {0, 1}}
	default: // W
		if left {
			return []Offset{{0, 0}, {-1, 0}, {0, 1}, {1, 0}, {-1, 1}, {1, 1}, {0, -1}, {-1, -1}}
		}
		return []Offset{{0, 1}, {-1, 1}, {0, 0}, {-1, 0}, {0, 2}, {-1, 2}}
	}
}

// ocular180Table resolves the 180-degree kick table and whether it
// must be mirrored across x. Z and J again borrow S's and L's tables.
func ocular180Table(shape Shape, orientation Orientation) ([]Offset, bool) {
	switch shape {
	case ShapeO, ShapeI:
		return []Offset{{0, 0}}, false
	case ShapeS:
		if orientation == OrientN || orientation == OrientS {
			return []Offset{{-1, -1}, {0, 0}}, false
		}
		return []Offset{{1, -1}, {0, 0}}, false
	case ShapeZ:
		table, _ := ocular180Table(ShapeS, orientation)
		return table, true
	case ShapeT:
		switch orientation {
		case OrientN:
			return []Offset{{0, -1}, {0, 0}}, false
		case OrientE:
			return []Offset{{-1, 0}, {0, 0}, {-1, -1}}, false
		case OrientS:
			return []Offset{{0, 1}, {0, 0}, {0, -1}}, false
		default: // W: mirror of E
			table, _ := ocular180Table(ShapeT, OrientE)
			return table, true
		}
	case ShapeL:
		switch orientation {
		case OrientN:
			return []Offset{{0, -1}, {1, -1}, {-1, -1}, {0, 0}, {1, 0}}, false
		case OrientE:
			return []Offset{{-1, 0}, {-1, -1}, {0, 0}, {0, -1}}, false
		case OrientS:
			return []Offset{{0, 1}, {0, 0}, {-1, 1}, {-1, 0}}, false
		default: // W
			return []Offset{{1, 0}, {0, 0}, {1, -1}, {1, 1}, {0, 1}}, false
		}
	default: // J: mirror of L, looked up at the mirrored orientation
		table, _ := ocular180Table(ShapeL, flipEW(orientation))
		return table, true
	}
}
