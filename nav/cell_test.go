package nav

import "testing"

func TestCellOffsetRoundTrip(t *testing.T) {
	c := C(10, 64, -20)
	up := c.Up()
	if up != C(10, 65, -20) {
		t.Errorf("Up() = %v, want (10,65,-20)", up)
	}
	if up.Down() != c {
		t.Errorf("Up().Down() = %v, want %v", up.Down(), c)
	}
}

func TestCellChebyshevTo(t *testing.T) {
	cases := []struct {
		a, b Cell
		want int32
	}{
		{C(0, 0, 0), C(0, 0, 0), 0},
		{C(0, 0, 0), C(1, 0, 0), 1},
		{C(0, 0, 0), C(3, 1, 2), 3},
		{C(-5, 0, 0), C(5, 0, 0), 10},
	}
	for _, c := range cases {
		if got := c.a.ChebyshevTo(c.b); got != c.want {
			t.Errorf("%v.ChebyshevTo(%v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCellSquaredDistance(t *testing.T) {
	a, b := C(0, 0, 0), C(3, 4, 0)
	if got := a.SquaredDistance(b); got != 25 {
		t.Errorf("SquaredDistance = %d, want 25", got)
	}
}

func TestCellAsMapKey(t *testing.T) {
	m := map[Cell]bool{}
	m[C(1<<30, 5, -(1 << 30))] = true
	if !m[C(1<<30, 5, -(1<<30))] {
		t.Fatal("Cell did not round-trip as a map key at large coordinates")
	}
}

func TestCellCenter(t *testing.T) {
	x, y, z := C(1, 2, 3).Center()
	if x != 1.5 || y != 2.0 || z != 3.5 {
		t.Errorf("Center() = (%v,%v,%v), want (1.5,2,3.5)", x, y, z)
	}
}
