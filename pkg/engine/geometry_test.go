package engine

import "testing"

func TestShapeTileID(t *testing.T) {
	cases := []struct {
		shape Shape
		want  int
	}{
		{ShapeO, 1},
		{ShapeI, 2},
		{ShapeS, 3},
		{ShapeZ, 4},
		{ShapeT, 5},
		{ShapeL, 6},
		{ShapeJ, 7},
	}
	for _, c := range cases {
		if got := c.shape.TileID(); got != c.want {
			t.Errorf("%s.TileID() = %d, want %d", c.shape, got, c.want)
		}
	}
}

func TestOrientationRotateR(t *testing.T) {
	cases := []struct {
		start Orientation
		turns int
		want  Orientation
	}{
		{OrientN, 1, OrientE},
		{OrientN, -1, OrientW},
		{OrientN, 2, OrientS},
		{OrientN, 4, OrientN},
		{OrientW, 1, OrientN},
		{OrientE, -1, OrientN},
	}
	for _, c := range cases {
		if got := c.start.RotateR(c.turns); got != c.want {
			t.Errorf("%s.RotateR(%d) = %s, want %s", c.start, c.turns, got, c.want)
		}
	}
}

func TestSpawnX(t *testing.T) {
	if got := spawnX(ShapeO); got != 4 {
		t.Errorf("spawnX(O) = %d, want 4", got)
	}
	for _, s := range []Shape{ShapeI, ShapeS, ShapeZ, ShapeT, ShapeL, ShapeJ} {
		if got := spawnX(s); got != 3 {
			t.Errorf("spawnX(%s) = %d, want 3", s, got)
		}
	}
}

func TestMinosEveryOrientationHasFourTiles(t *testing.T) {
	for shape := Shape(0); shape < ShapeCount; shape++ {
		for _, o := range []Orientation{OrientN, OrientE, OrientS, OrientW} {
			offs := Minos(shape, o)
			if len(offs) != 4 {
				t.Fatalf("Minos(%s, %s) returned %d offsets, want 4", shape, o, len(offs))
			}
		}
	}
}
