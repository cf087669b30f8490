package nav

import "testing"

func TestThroughDoorClosedCostsMoreThanOpen(t *testing.T) {
	world := newFakeWorld()
	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:oak_door", BoundingBox: BoxOther})
	host := newFakeHost(world)
	ctx := testContext(world, host)
	closed := NewThroughDoor(C(0, 64, 0), C(2, 64, 0), C(1, 64, 0)).CalculateCost(ctx)
	if closed.Cost >= CostInf {
		t.Fatalf("a closed wooden door should still be feasible to pass, got %v", closed.Cost)
	}

	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:oak_door", BoundingBox: BoxEmpty})
	open := NewThroughDoor(C(0, 64, 0), C(2, 64, 0), C(1, 64, 0)).CalculateCost(ctx)
	if open.Cost >= closed.Cost {
		t.Errorf("an already-open door should cost less than a closed one: open=%v closed=%v", open.Cost, closed.Cost)
	}
}

func TestThroughDoorRejectsIronDoor(t *testing.T) {
	world := newFakeWorld()
	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:iron_door", BoundingBox: BoxOther})
	host := newFakeHost(world)
	ctx := testContext(world, host)
	m := NewThroughDoor(C(0, 64, 0), C(2, 64, 0), C(1, 64, 0))
	if ec := m.CalculateCost(ctx); ec.Cost < CostInf {
		t.Errorf("an iron door should not be hand-openable, got %v", ec.Cost)
	}
}

func TestFenceGateRejectsPlainDoor(t *testing.T) {
	world := newFakeWorld()
	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:oak_door", BoundingBox: BoxOther})
	host := newFakeHost(world)
	ctx := testContext(world, host)
	m := NewFenceGate(C(0, 64, 0), C(2, 64, 0), C(1, 64, 0))
	if ec := m.CalculateCost(ctx); ec.Cost < CostInf {
		t.Errorf("a door should not satisfy the fence gate edge, got %v", ec.Cost)
	}
}

func TestTrapdoorOpensBeforeDescending(t *testing.T) {
	world := newFakeWorld()
	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:oak_trapdoor", BoundingBox: BoxOther})
	host := newFakeHost(world)
	ctx := testContext(world, host)
	m := NewTrapdoor(C(0, 64, 0), C(1, 63, 0), C(1, 64, 0))
	ec := m.CalculateCost(ctx)
	if ec.Cost >= CostInf {
		t.Fatalf("expected feasible trapdoor edge, got %v", ec.Cost)
	}
	if ec.Cost <= WalkOneBlockCost {
		t.Errorf("a closed trapdoor should cost more than a plain walk, got %v", ec.Cost)
	}
}
