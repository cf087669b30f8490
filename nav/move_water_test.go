package nav

import "testing"

func TestSwimHorizontalRequiresWaterBothEnds(t *testing.T) {
	world := newFakeWorld()
	world.set(C(0, 64, 0), BlockInfo{Name: "minecraft:water", BoundingBox: BoxOther})
	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:water", BoundingBox: BoxOther})
	world.set(C(1, 65, 0), BlockInfo{Name: "minecraft:water", BoundingBox: BoxOther})
	host := newFakeHost(world)
	ctx := testContext(world, host)

	m := NewSwimHorizontal(C(0, 64, 0), C(1, 64, 0))
	if ec := m.CalculateCost(ctx); ec.Cost >= CostInf {
		t.Fatalf("expected feasible swim between two water cells, got %v", ec.Cost)
	}

	dry := NewSwimHorizontal(C(0, 64, 0), C(2, 64, 0))
	if ec := dry.CalculateCost(ctx); ec.Cost < CostInf {
		t.Errorf("swim into dry air should be infeasible, got %v", ec.Cost)
	}
}

func TestWaterEntryAndExit(t *testing.T) {
	world := newFakeWorld()
	world.set(C(1, 64, 0), BlockInfo{Name: "minecraft:water", BoundingBox: BoxOther})
	host := newFakeHost(world)
	ctx := testContext(world, host)

	entry := NewWaterEntry(C(0, 64, 0), C(1, 64, 0))
	if ec := entry.CalculateCost(ctx); ec.Cost >= CostInf {
		t.Errorf("expected feasible water entry, got %v", ec.Cost)
	}

	exit := NewWaterExit(C(1, 64, 0), C(0, 64, 0))
	if ec := exit.CalculateCost(ctx); ec.Cost >= CostInf {
		t.Errorf("expected feasible water exit onto dry land, got %v", ec.Cost)
	}
}

func TestSwimUpDownRequireWaterColumn(t *testing.T) {
	world := newFakeWorld()
	world.set(C(0, 64, 0), BlockInfo{Name: "minecraft:water", BoundingBox: BoxOther})
	world.set(C(0, 65, 0), BlockInfo{Name: "minecraft:water", BoundingBox: BoxOther})
	host := newFakeHost(world)
	ctx := testContext(world, host)

	up := NewSwimUp(C(0, 64, 0))
	if ec := up.CalculateCost(ctx); ec.Cost >= CostInf {
		t.Errorf("expected feasible swim up through water, got %v", ec.Cost)
	}

	down := NewSwimDown(C(0, 65, 0))
	if ec := down.CalculateCost(ctx); ec.Cost >= CostInf {
		t.Errorf("expected feasible swim down through water, got %v", ec.Cost)
	}
}
