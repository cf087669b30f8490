package nav

import "testing"

func TestClimbUpRequiresLadder(t *testing.T) {
	world := newFakeWorld()
	world.set(C(0, 64, 0), BlockInfo{Name: "minecraft:ladder", BoundingBox: BoxOther})
	host := newFakeHost(world)
	ctx := testContext(world, host)

	m := NewClimbUp(C(0, 64, 0))
	if ec := m.CalculateCost(ctx); ec.Cost >= CostInf {
		t.Errorf("expected feasible climb on a ladder, got %v", ec.Cost)
	}

	noLadder := NewClimbUp(C(5, 64, 5))
	if ec := noLadder.CalculateCost(ctx); ec.Cost < CostInf {
		t.Errorf("climbing without a ladder should be infeasible, got %v", ec.Cost)
	}
}

func TestVineClimbCostsMoreThanLadder(t *testing.T) {
	world := newFakeWorld()
	world.set(C(0, 64, 0), BlockInfo{Name: "minecraft:ladder", BoundingBox: BoxOther})
	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:vine", BoundingBox: BoxOther})
	host := newFakeHost(world)
	ctx := testContext(world, host)

	ladder := NewClimbUp(C(0, 64, 0)).CalculateCost(ctx)
	vine := NewClimbUp(C(1, 64, 0)).CalculateCost(ctx)
	if vine.Cost <= ladder.Cost {
		t.Errorf("vine climb (%v) should cost more than ladder climb (%v)", vine.Cost, ladder.Cost)
	}
}

func TestClimbDownRequiresLadderBelow(t *testing.T) {
	world := newFakeWorld()
	world.set(C(0, 63, 0), BlockInfo{Name: "minecraft:ladder", BoundingBox: BoxOther})
	host := newFakeHost(world)
	ctx := testContext(world, host)

	m := NewClimbDown(C(0, 64, 0))
	if ec := m.CalculateCost(ctx); ec.Cost >= CostInf {
		t.Errorf("expected feasible climb down onto a ladder, got %v", ec.Cost)
	}
}
