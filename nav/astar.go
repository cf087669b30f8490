package nav

import "container/heap"

// Budget bounds a single planning pass the way the teacher's own MaxNodes
// field bounds its search — iteration count and a failure count each
// independently cap the run so a pathological world never hangs the planner.
// FindPath does not read MaxTimeTicks; no time limit is applied.
type Budget struct {
	MaxIterations int
	MaxTimeTicks  int // wall-clock budget expressed as a caller-supplied tick count; not consulted by FindPath
	MaxFailures   int // total expanded nodes with no successor edges before giving up (not reset between nodes)
}

// DefaultBudget matches the teacher's MaxNodes=~10000 order of magnitude.
func DefaultBudget() Budget {
	return Budget{MaxIterations: 10000, MaxTimeTicks: 200, MaxFailures: 2000}
}

// PlanResult reports the outcome of a single FindPath call.
type PlanResult struct {
	Path     []Movement
	Complete bool // true if the goal was actually reached, false for best-so-far
	Nodes    int
}

type searchNode struct {
	cell     Cell
	g        float64
	h        float64
	parent   *searchNode
	viaEdge  Movement
	seq      int // FIFO tie-break counter, assigned at push time
	index    int // heap.Interface bookkeeping
	closed   bool
}

func (n *searchNode) f() float64 { return n.g + n.h }

type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	fi, fj := h[i].f(), h[j].f()
	if fi != fj {
		return fi < fj
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}
func (h *nodeHeap) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// SuccessorFunc generates the candidate movement edges leaving cell. It is
// supplied by the caller rather than hardcoded so callers can restrict the
// catalog (e.g. disable swimming edges entirely above the waterline).
type SuccessorFunc func(ctx *CalculationContext, cell Cell) []Movement

// DefaultSuccessors returns every cardinal/diagonal/vertical/parkour/swim
// edge reachable from cell, skipping water edges unless cell is already wet
// and skipping parkour edges when the settings disable them. Door, fence
// gate, trapdoor and ladder mount/dismount edges are not generated.
func DefaultSuccessors(ctx *CalculationContext, cell Cell) []Movement {
	var moves []Movement

	cardinals := [4]Cell{cell.Offset(1, 0, 0), cell.Offset(-1, 0, 0), cell.Offset(0, 0, 1), cell.Offset(0, 0, -1)}
	for _, n := range cardinals {
		moves = append(moves, NewTraverse(cell, n))
		moves = append(moves, NewAscend(cell, n.Up()))
		moves = append(moves, NewDescend(cell, n.Down()))
		for drop := int32(2); drop <= 22; drop++ {
			moves = append(moves, NewFall(cell, C(n.X, cell.Y-drop, n.Z)))
		}
	}

	diagonals := [4]Cell{cell.Offset(1, 0, 1), cell.Offset(1, 0, -1), cell.Offset(-1, 0, 1), cell.Offset(-1, 0, -1)}
	for _, n := range diagonals {
		moves = append(moves, NewDiagonal(cell, n))
	}

	if ctx.Settings.AllowParkour {
		for _, dir := range cardinals {
			dx := dir.X - cell.X
			dz := dir.Z - cell.Z
			for gap := int32(2); gap <= 4; gap++ {
				dest := cell.Offset(dx*gap, 0, dz*gap)
				moves = append(moves, NewParkour(cell, dest))
				moves = append(moves, NewParkourAscend(cell, dest.Up()))
			}
		}
	}

	if ctx.Settings.CanPlace {
		moves = append(moves, NewPillar(cell))
	}

	if ctx.IsWater(ctx.GetBlockAt(cell)) {
		moves = append(moves, NewSwimUp(cell))
		moves = append(moves, NewSwimDown(cell))
		for _, n := range cardinals {
			moves = append(moves, NewSwimHorizontal(cell, n))
		}
		moves = append(moves, NewWaterExit(cell, cell.Up()))
	} else {
		for _, n := range cardinals {
			if ctx.IsWater(ctx.GetBlockAt(n)) {
				moves = append(moves, NewWaterEntry(cell, n))
			}
		}
	}

	if isClimbable(ctx.GetBlockAt(cell).Name) {
		moves = append(moves, NewClimbUp(cell))
	}
	if isClimbable(ctx.GetBlockAt(cell.Down()).Name) {
		moves = append(moves, NewClimbDown(cell))
	}

	return moves
}

// FindPath runs weighted A* from start toward goal, using successors to
// expand each node and budget to bound the search. If the goal is never
// reached, the best (lowest-heuristic) node seen is returned as a
// best-so-far partial plan with Complete=false, mirroring the teacher's
// own "closest node wins" fallback in its astar.go.
func FindPath(ctx *CalculationContext, start Cell, goal Goal, successors SuccessorFunc, budget Budget) PlanResult {
	open := &nodeHeap{}
	heap.Init(open)
	seen := map[Cell]*searchNode{}

	seqCounter := 0
	startNode := &searchNode{cell: start, g: 0, h: goal.Heuristic(start), seq: seqCounter}
	seqCounter++
	heap.Push(open, startNode)
	seen[start] = startNode

	var best *searchNode = startNode
	failures := 0
	iterations := 0

	for open.Len() > 0 {
		iterations++
		if iterations > budget.MaxIterations {
			break
		}
		current := heap.Pop(open).(*searchNode)
		if current.closed {
			continue
		}
		current.closed = true

		if current.h < best.h {
			best = current
		}

		if goal.IsEnd(current.cell) {
			return PlanResult{Path: reconstructPath(current), Complete: true, Nodes: iterations}
		}

		edges := successors(ctx, current.cell)
		if len(edges) == 0 {
			failures++
			if failures > budget.MaxFailures {
				break
			}
			continue
		}

		for _, edge := range edges {
			ec := edge.CalculateCost(ctx)
			if ec.Cost >= CostInf {
				continue
			}
			next := edge.Dest()
			g := current.g + ec.Cost
			if existing, ok := seen[next]; ok {
				if existing.closed || existing.g <= g {
					continue
				}
				existing.g = g
				existing.parent = current
				existing.viaEdge = edge
				existing.seq = seqCounter
				seqCounter++
				heap.Fix(open, existing.index)
				continue
			}
			n := &searchNode{
				cell:    next,
				g:       g,
				h:       goal.Heuristic(next),
				parent:  current,
				viaEdge: edge,
				seq:     seqCounter,
			}
			seqCounter++
			heap.Push(open, n)
			seen[next] = n
		}
	}

	return PlanResult{Path: reconstructPath(best), Complete: false, Nodes: iterations}
}

func reconstructPath(n *searchNode) []Movement {
	var edges []Movement
	for cur := n; cur != nil && cur.viaEdge != nil; cur = cur.parent {
		edges = append(edges, cur.viaEdge)
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges
}
