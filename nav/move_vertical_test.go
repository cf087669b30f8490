package nav

import "testing"

func TestAscendRequiresFloorAndClearance(t *testing.T) {
	world := newFakeWorld()
	// raise a one-block step at the destination column so there is
	// something to ascend onto.
	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:stone", BoundingBox: BoxBlock, Hardness: 1.5})
	host := newFakeHost(world)
	ctx := testContext(world, host)

	from := C(0, 64, 0)
	to := C(1, 65, 0)
	m := NewAscend(from, to)
	ec := m.CalculateCost(ctx)
	if ec.Cost >= CostInf {
		t.Fatalf("expected feasible ascend onto flat-ish terrain, got %v", ec.Cost)
	}
	if ec.Cost <= WalkOneBlockCost {
		t.Errorf("ascend should cost more than a flat walk (includes jump), got %v", ec.Cost)
	}
}

func TestAscendNoFloorInfeasible(t *testing.T) {
	world := newFakeWorld()
	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
	host := newFakeHost(world)
	ctx := testContext(world, host)

	m := NewAscend(C(0, 64, 0), C(1, 65, 0))
	if ec := m.CalculateCost(ctx); ec.Cost < CostInf {
		t.Errorf("ascend onto a missing floor should be infeasible, got %v", ec.Cost)
	}
}

func TestDescendOntoFloor(t *testing.T) {
	world := newFakeWorld()
	// carve a one-block-lower terrace at the destination column; the block
	// below it (y=62) is still solid by the default flat floor.
	world.set(C(1, 63, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
	host := newFakeHost(world)
	ctx := testContext(world, host)

	m := NewDescend(C(0, 64, 0), C(1, 63, 0))
	ec := m.CalculateCost(ctx)
	if ec.Cost >= CostInf {
		t.Fatalf("expected feasible descend, got %v", ec.Cost)
	}
}

func TestPillarNeedsPlacingEnabled(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	ctx := testContext(world, host)
	ctx.Settings.CanPlace = false

	m := NewPillar(C(0, 64, 0))
	if ec := m.CalculateCost(ctx); ec.Cost < CostInf {
		t.Errorf("pillar with placing disabled should be infeasible, got %v", ec.Cost)
	}

	ctx.Settings.CanPlace = true
	if ec := m.CalculateCost(ctx); ec.Cost >= CostInf {
		t.Errorf("pillar with placing enabled and clear headroom should be feasible, got %v", ec.Cost)
	}
}

func TestPillarDestIsDirectlyAbove(t *testing.T) {
	m := NewPillar(C(5, 10, 5))
	if m.Dest() != C(5, 11, 5) {
		t.Errorf("pillar dest = %v, want (5,11,5)", m.Dest())
	}
}
