package nav

import "testing"

func TestGoalBlockIsEnd(t *testing.T) {
	g := GoalBlock{Target: C(5, 64, 5)}
	if !g.IsEnd(C(5, 64, 5)) {
		t.Error("should be end at the exact target")
	}
	if g.IsEnd(C(5, 65, 5)) {
		t.Error("should not be end one block off")
	}
	if g.Heuristic(g.Target) != 0 {
		t.Errorf("heuristic at the target should be 0, got %v", g.Heuristic(g.Target))
	}
}

func TestGoalNearRange(t *testing.T) {
	g := GoalNear{Target: C(0, 64, 0), Range: 3}
	if !g.IsEnd(C(2, 64, 0)) {
		t.Error("2 blocks away should satisfy a range-3 goal")
	}
	if g.IsEnd(C(10, 64, 0)) {
		t.Error("10 blocks away should not satisfy a range-3 goal")
	}
}

func TestGoalGetToBlockExcludesCoincidence(t *testing.T) {
	g := GoalGetToBlock{Target: C(0, 64, 0)}
	if g.IsEnd(C(0, 64, 0)) {
		t.Error("standing on the target block itself should not satisfy GetToBlock")
	}
	if !g.IsEnd(C(1, 64, 0)) {
		t.Error("an adjacent cell should satisfy GetToBlock")
	}
}

func TestGoalXZIgnoresHeight(t *testing.T) {
	g := GoalXZ{X: 10, Z: -10}
	if !g.IsEnd(C(10, 0, -10)) || !g.IsEnd(C(10, 200, -10)) {
		t.Error("GoalXZ should be satisfied at any y")
	}
	if g.IsEnd(C(11, 0, -10)) {
		t.Error("GoalXZ should not be satisfied off-column")
	}
}

func TestGoalChunkBoundaries(t *testing.T) {
	g := GoalChunk{CX: 0, CZ: 0}
	if !g.IsEnd(C(0, 64, 0)) || !g.IsEnd(C(15, 64, 15)) {
		t.Error("chunk 0,0 should cover blocks 0..15")
	}
	if g.IsEnd(C(16, 64, 0)) {
		t.Error("block 16 belongs to chunk 1, not chunk 0")
	}
	if g.IsEnd(C(-1, 64, 0)) {
		t.Error("block -1 belongs to chunk -1, not chunk 0")
	}
}

func TestFloorDiv16Negative(t *testing.T) {
	cases := map[int32]int32{
		0: 0, 15: 0, 16: 1, -1: -1, -16: -1, -17: -2,
	}
	for in, want := range cases {
		if got := floorDiv16(in); got != want {
			t.Errorf("floorDiv16(%d) = %d, want %d", in, got, want)
		}
	}
}

// A heuristic must be admissible (never overestimate) and, practically,
// monotonically non-increasing as the agent approaches the target in a
// straight line, or the search would needlessly reopen closed nodes.
func TestGoalBlockHeuristicDecreasesTowardTarget(t *testing.T) {
	target := C(0, 64, 0)
	g := GoalBlock{Target: target}
	far := g.Heuristic(C(10, 64, 0))
	near := g.Heuristic(C(2, 64, 0))
	if near >= far {
		t.Errorf("heuristic should decrease approaching the target: near=%v far=%v", near, far)
	}
	if g.Heuristic(target) != 0 {
		t.Error("heuristic at the target must be exactly zero")
	}
}

func TestGoalBlockHeuristicNeverNegative(t *testing.T) {
	g := GoalBlock{Target: C(0, 64, 0)}
	for _, c := range []Cell{C(5, 64, 0), C(0, 70, 0), C(3, 67, 4), C(-8, 60, 2)} {
		if g.Heuristic(c) < 0 {
			t.Errorf("heuristic must never be negative, got %v for %v", g.Heuristic(c), c)
		}
	}
}
