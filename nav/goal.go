package nav

import "math"

// Goal is implemented by every goal variant. IsEnd reports exact completion;
// Heuristic must never overestimate the true remaining travel cost (in
// ticks) from cell, so the planner's priority key stays admissible.
type Goal interface {
	IsEnd(cell Cell) bool
	Heuristic(cell Cell) float64
	// String describes the goal for logging.
	String() string
}

// xzHeuristic returns an admissible tick estimate for covering (dx, dz)
// horizontal blocks, ignoring vertical distance (callers add their own).
func xzHeuristic(dx, dz float64) float64 {
	return math.Hypot(dx, dz) * WalkOneBlockCost
}

// GoalBlock is reached iff the agent occupies the exact cell.
type GoalBlock struct {
	Target Cell
}

func (g GoalBlock) IsEnd(cell Cell) bool { return cell == g.Target }

func (g GoalBlock) Heuristic(cell Cell) float64 {
	dx := float64(cell.X - g.Target.X)
	dz := float64(cell.Z - g.Target.Z)
	dy := math.Abs(float64(cell.Y - g.Target.Y))
	// vertical moves are never cheaper than a single step-down/up tick cost,
	// so a per-block floor keeps the heuristic admissible without having to
	// model every edge's exact vertical cost here.
	return xzHeuristic(dx, dz) + dy*WalkOffBlockCost
}

func (g GoalBlock) String() string { return "Block" + g.Target.String() }

// GoalNear is reached iff the agent is within Range blocks (Euclidean) of
// the target.
type GoalNear struct {
	Target Cell
	Range  float64
}

func (g GoalNear) IsEnd(cell Cell) bool {
	return float64(cell.SquaredDistance(g.Target)) <= g.Range*g.Range
}

func (g GoalNear) Heuristic(cell Cell) float64 {
	dist := math.Sqrt(float64(cell.SquaredDistance(g.Target)))
	remaining := dist - g.Range
	if remaining <= 0 {
		return 0
	}
	return remaining * WalkOneBlockCost * SprintMultiplier
}

func (g GoalNear) String() string { return "Near" + g.Target.String() }

// GoalGetToBlock is reached iff the agent is adjacent (Chebyshev <= 1) but
// not coincident with the target — used for "stand next to this block".
type GoalGetToBlock struct {
	Target Cell
}

func (g GoalGetToBlock) IsEnd(cell Cell) bool {
	return cell != g.Target && cell.ChebyshevTo(g.Target) <= 1
}

func (g GoalGetToBlock) Heuristic(cell Cell) float64 {
	dx := float64(cell.X - g.Target.X)
	dz := float64(cell.Z - g.Target.Z)
	dy := math.Abs(float64(cell.Y - g.Target.Y))
	h := xzHeuristic(dx, dz) + dy*WalkOffBlockCost - WalkOneBlockCost
	if h < 0 {
		return 0
	}
	return h
}

func (g GoalGetToBlock) String() string { return "GetToBlock" + g.Target.String() }

// GoalXZ is reached iff the (x, z) column matches, for any y.
type GoalXZ struct {
	X, Z int32
}

func (g GoalXZ) IsEnd(cell Cell) bool { return cell.X == g.X && cell.Z == g.Z }

func (g GoalXZ) Heuristic(cell Cell) float64 {
	dx := float64(cell.X - g.X)
	dz := float64(cell.Z - g.Z)
	return xzHeuristic(dx, dz)
}

func (g GoalXZ) String() string { return "XZ" }

// GoalChunk is reached iff the cell lies within the named 16x16 column.
type GoalChunk struct {
	CX, CZ int32
}

func (g GoalChunk) IsEnd(cell Cell) bool {
	return floorDiv16(cell.X) == g.CX && floorDiv16(cell.Z) == g.CZ
}

func (g GoalChunk) Heuristic(cell Cell) float64 {
	centerX := float64(g.CX*16 + 8)
	centerZ := float64(g.CZ*16 + 8)
	dx := float64(cell.X) - centerX
	dz := float64(cell.Z) - centerZ
	// admissible: distance to the nearest edge of the chunk, not its center.
	edgeDist := math.Max(0, math.Max(math.Abs(dx), math.Abs(dz))-8)
	return edgeDist * WalkOneBlockCost
}

func (g GoalChunk) String() string { return "Chunk" }

func floorDiv16(v int32) int32 {
	if v >= 0 {
		return v / 16
	}
	return -(((-v) + 15) / 16)
}
