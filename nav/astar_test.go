package nav

import "testing"

func TestFindPathFlatGroundStraightLine(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	ctx := testContext(world, host)

	start := C(0, 64, 0)
	goal := GoalBlock{Target: C(3, 64, 0)}
	result := FindPath(ctx, start, goal, DefaultSuccessors, DefaultBudget())
	if !result.Complete {
		t.Fatalf("expected a complete plan across flat ground")
	}
	if len(result.Path) == 0 {
		t.Fatal("expected a non-empty path")
	}
	last := result.Path[len(result.Path)-1]
	if last.Dest() != goal.Target {
		t.Errorf("last edge dest = %v, want %v", last.Dest(), goal.Target)
	}
}

func TestFindPathDiagonalShortcut(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	ctx := testContext(world, host)

	start := C(0, 64, 0)
	goal := GoalBlock{Target: C(2, 64, 2)}
	result := FindPath(ctx, start, goal, DefaultSuccessors, DefaultBudget())
	if !result.Complete {
		t.Fatalf("expected a complete plan across a 3x3 flat area")
	}
	// a path using diagonal edges should need at most 2 edges for a (2,2) offset.
	if len(result.Path) > 2 {
		t.Errorf("expected diagonal edges to shortcut the route, got %d edges", len(result.Path))
	}
}

func TestFindPathParkourDisallowedFallsBackToDetour(t *testing.T) {
	world := newFakeWorld()
	// carve a 3-block-wide chasm across x=1..3 at the floor level and below,
	// leaving no floor to walk across directly.
	for x := int32(1); x <= 3; x++ {
		for y := int32(40); y <= 64; y++ {
			world.set(C(x, y, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
		}
	}
	host := newFakeHost(world)
	ctx := testContext(world, host)
	ctx.Settings.AllowParkour = false
	ctx.Settings.CanPlace = false

	start := C(0, 64, 0)
	goal := GoalBlock{Target: C(4, 64, 0)}
	result := FindPath(ctx, start, goal, DefaultSuccessors, DefaultBudget())
	if !result.Complete {
		t.Fatalf("expected a complete detour around the chasm with parkour and placing both disallowed")
	}
	for _, e := range result.Path {
		if e.Name() == "Parkour" {
			t.Fatalf("path uses a Parkour edge with parkour disallowed")
		}
	}
}

func TestFindPathParkourAllowedCrossesGap(t *testing.T) {
	world := newFakeWorld()
	for x := int32(1); x <= 3; x++ {
		for y := int32(40); y <= 64; y++ {
			world.set(C(x, y, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
		}
	}
	host := newFakeHost(world)
	ctx := testContext(world, host)
	ctx.Settings.CanPlace = false

	start := C(0, 64, 0)
	goal := GoalBlock{Target: C(4, 64, 0)}
	result := FindPath(ctx, start, goal, DefaultSuccessors, DefaultBudget())
	if !result.Complete {
		t.Fatalf("expected parkour to cross the 3-block gap")
	}
}

func TestFindPathExhaustionReturnsBestSoFar(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	ctx := testContext(world, host)
	ctx.Settings.AllowParkour = false
	ctx.Settings.CanPlace = false

	// isolate the start on a 1x1 pillar with a moat of air around it at
	// every reachable y — there is no possible path anywhere.
	for dx := int32(-4); dx <= 4; dx++ {
		for dz := int32(-4); dz <= 4; dz++ {
			if dx == 0 && dz == 0 {
				continue
			}
			for y := int32(40); y <= 70; y++ {
				world.set(C(dx, y, dz), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
			}
		}
	}

	start := C(0, 64, 0)
	goal := GoalBlock{Target: C(100, 64, 100)}
	budget := Budget{MaxIterations: 500, MaxTimeTicks: 50, MaxFailures: 50}
	result := FindPath(ctx, start, goal, DefaultSuccessors, budget)
	if result.Complete {
		t.Fatal("expected planner exhaustion on an isolated pillar, not a complete plan")
	}
	if len(result.Path) != 0 && result.Path[len(result.Path)-1].Dest() == goal.Target {
		t.Error("best-so-far path should not reach the unreachable goal")
	}
}
