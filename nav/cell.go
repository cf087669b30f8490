package nav

import "fmt"

// Cell is an integer block-lattice coordinate. Equality is by value, so a
// Cell is safe to use as a map key.
type Cell struct {
	X, Y, Z int32
}

// C is a short constructor used throughout the movement edge catalog.
func C(x, y, z int32) Cell { return Cell{X: x, Y: y, Z: z} }

// Offset returns the cell translated by (dx, dy, dz).
func (c Cell) Offset(dx, dy, dz int32) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// Up and Down are common vertical offsets used across the movement catalog.
func (c Cell) Up() Cell   { return c.Offset(0, 1, 0) }
func (c Cell) Down() Cell { return c.Offset(0, -1, 0) }

// ChebyshevTo returns the Chebyshev (king-move) distance to other.
func (c Cell) ChebyshevTo(other Cell) int32 {
	dx, dy, dz := abs32(c.X-other.X), abs32(c.Y-other.Y), abs32(c.Z-other.Z)
	return max32(dx, max32(dy, dz))
}

// SquaredDistance returns the squared Euclidean distance to other.
func (c Cell) SquaredDistance(other Cell) int64 {
	dx := int64(c.X - other.X)
	dy := int64(c.Y - other.Y)
	dz := int64(c.Z - other.Z)
	return dx*dx + dy*dy + dz*dz
}

// Center returns the floating-point center of the block occupied by this cell.
func (c Cell) Center() (x, y, z float64) {
	return float64(c.X) + 0.5, float64(c.Y), float64(c.Z) + 0.5
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
