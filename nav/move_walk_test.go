package nav

import (
	"math"
	"testing"
)

func TestTraverseCostFlatGround(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	ctx := testContext(world, host)

	from := C(0, 64, 0)
	to := C(1, 64, 0)
	m := NewTraverse(from, to)
	ec := m.CalculateCost(ctx)
	if ec.Cost >= CostInf {
		t.Fatalf("expected feasible traverse, got cost %v", ec.Cost)
	}
	if math.Abs(ec.Cost-SprintOneBlockCost) > 1e-9 {
		t.Errorf("traverse cost = %v, want %v", ec.Cost, SprintOneBlockCost)
	}
	if len(ec.ToBreak) != 0 || len(ec.ToPlace) != 0 {
		t.Errorf("flat ground traverse should need no break/place, got %+v / %+v", ec.ToBreak, ec.ToPlace)
	}
}

func TestTraverseBlockedByWallWithDiggingDisabled(t *testing.T) {
	world := newFakeWorld()
	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:stone", BoundingBox: BoxBlock, Hardness: 1.5})
	host := newFakeHost(world)
	ctx := testContext(world, host)
	ctx.Settings.CanDig = false

	m := NewTraverse(C(0, 64, 0), C(1, 64, 0))
	ec := m.CalculateCost(ctx)
	if ec.Cost < CostInf {
		t.Errorf("traverse through a wall with digging disabled should be infeasible, got %v", ec.Cost)
	}
}

func TestTraverseOverGapRequiresPlace(t *testing.T) {
	world := newFakeWorld()
	world.set(C(1, 63, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty}) // gap: no floor
	host := newFakeHost(world)
	ctx := testContext(world, host)

	m := NewTraverse(C(0, 64, 0), C(1, 64, 0))
	ec := m.CalculateCost(ctx)
	if ec.Cost >= CostInf {
		t.Fatalf("bridging over a gap should be feasible when placing is allowed, got %v", ec.Cost)
	}
	if len(ec.ToPlace) != 1 {
		t.Fatalf("expected one bridge placement, got %d", len(ec.ToPlace))
	}
	if ec.Cost <= WalkOneBlockCost {
		t.Errorf("bridged traverse should cost more than a plain walk, got %v", ec.Cost)
	}
}

func TestTraverseOverGapInfeasibleWithoutPlacing(t *testing.T) {
	world := newFakeWorld()
	world.set(C(1, 63, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
	host := newFakeHost(world)
	ctx := testContext(world, host)
	ctx.Settings.CanPlace = false

	m := NewTraverse(C(0, 64, 0), C(1, 64, 0))
	ec := m.CalculateCost(ctx)
	if ec.Cost < CostInf {
		t.Errorf("bridging over a gap with placing disabled should be infeasible, got %v", ec.Cost)
	}
}

func TestDiagonalRequiresOneOpenCorner(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	ctx := testContext(world, host)

	from := C(0, 64, 0)
	to := C(1, 64, 1)
	m := NewDiagonal(from, to)
	ec := m.CalculateCost(ctx)
	if ec.Cost >= CostInf {
		t.Fatalf("diagonal with both corners open should be feasible")
	}

	// block both corners: diagonal should become infeasible
	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:stone", BoundingBox: BoxBlock})
	world.set(C(1, 65, 0), BlockInfo{Name: "minecraft:stone", BoundingBox: BoxBlock})
	world.set(C(0, 64, 1), BlockInfo{Name: "minecraft:stone", BoundingBox: BoxBlock})
	world.set(C(0, 65, 1), BlockInfo{Name: "minecraft:stone", BoundingBox: BoxBlock})
	ec = m.CalculateCost(ctx)
	if ec.Cost < CostInf {
		t.Errorf("diagonal with both corners blocked should be infeasible, got %v", ec.Cost)
	}
}
