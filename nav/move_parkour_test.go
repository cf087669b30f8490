package nav

import "testing"

func setupGap(world *fakeWorld, gap int32) {
	for x := int32(1); x <= gap; x++ {
		world.set(C(x, 63, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
		world.set(C(x, 64, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
	}
}

func TestParkourCrossesTwoBlockGap(t *testing.T) {
	world := newFakeWorld()
	setupGap(world, 2)
	host := newFakeHost(world)
	ctx := testContext(world, host)

	m := NewParkour(C(0, 64, 0), C(3, 64, 0))
	ec := m.CalculateCost(ctx)
	if ec.Cost >= CostInf {
		t.Fatalf("expected a 3-block parkour gap to be feasible, got %v", ec.Cost)
	}
}

func TestParkourDisallowedByPolicy(t *testing.T) {
	world := newFakeWorld()
	setupGap(world, 2)
	host := newFakeHost(world)
	ctx := testContext(world, host)
	ctx.Settings.AllowParkour = false

	m := NewParkour(C(0, 64, 0), C(3, 64, 0))
	if ec := m.CalculateCost(ctx); ec.Cost < CostInf {
		t.Errorf("parkour should be infeasible when disallowed by policy, got %v", ec.Cost)
	}
}

func TestParkourTooWideGapInfeasible(t *testing.T) {
	world := newFakeWorld()
	setupGap(world, 10)
	host := newFakeHost(world)
	ctx := testContext(world, host)

	m := NewParkour(C(0, 64, 0), C(11, 64, 0))
	if ec := m.CalculateCost(ctx); ec.Cost < CostInf {
		t.Errorf("an 11-block gap should exceed the parkour range, got %v", ec.Cost)
	}
}

func TestParkourBlockedByIntermediateFloor(t *testing.T) {
	world := newFakeWorld()
	setupGap(world, 2)
	// restore a floor in the middle of the gap: this is a step, not a jump.
	world.set(C(2, 63, 0), BlockInfo{Name: "minecraft:stone", BoundingBox: BoxBlock})
	host := newFakeHost(world)
	ctx := testContext(world, host)

	m := NewParkour(C(0, 64, 0), C(3, 64, 0))
	if ec := m.CalculateCost(ctx); ec.Cost < CostInf {
		t.Errorf("a mid-gap floor means this isn't a parkour edge, got %v", ec.Cost)
	}
}

func TestFallCostIncreasesWithDrop(t *testing.T) {
	shortWorld := newFakeWorld()
	shortWorld.set(C(0, 67, 0), BlockInfo{Name: "minecraft:stone", BoundingBox: BoxBlock, Hardness: 1.5})
	for y := int32(68); y <= 69; y++ {
		shortWorld.set(C(0, y, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
	}
	shortHost := newFakeHost(shortWorld)
	shortCtx := testContext(shortWorld, shortHost)
	short := NewFall(C(0, 70, 0), C(0, 68, 0))
	shortEc := short.CalculateCost(shortCtx)

	longWorld := newFakeWorld()
	for y := int32(50); y <= 69; y++ {
		longWorld.set(C(0, y, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
	}
	longHost := newFakeHost(longWorld)
	longCtx := testContext(longWorld, longHost)
	long := NewFall(C(0, 70, 0), C(0, 50, 0))
	longEc := long.CalculateCost(longCtx)
	if shortEc.Cost >= CostInf || longEc.Cost >= CostInf {
		t.Fatalf("both falls should be feasible: short=%v long=%v", shortEc.Cost, longEc.Cost)
	}
	if longEc.Cost <= shortEc.Cost {
		t.Errorf("a longer fall should cost more: short=%v long=%v", shortEc.Cost, longEc.Cost)
	}
}

func TestFallIntoWaterCheaperThanOntoGround(t *testing.T) {
	groundWorld := newFakeWorld()
	for y := int32(50); y <= 69; y++ {
		groundWorld.set(C(0, y, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
	}
	groundHost := newFakeHost(groundWorld)
	groundCtx := testContext(groundWorld, groundHost)
	onGround := NewFall(C(0, 70, 0), C(0, 50, 0))
	groundCost := onGround.CalculateCost(groundCtx)

	waterWorld := newFakeWorld()
	for y := int32(50); y <= 69; y++ {
		waterWorld.set(C(0, y, 0), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
	}
	waterWorld.set(C(0, 49, 0), BlockInfo{Name: "minecraft:water", BoundingBox: BoxOther})
	waterHost := newFakeHost(waterWorld)
	waterCtx := testContext(waterWorld, waterHost)
	intoWater := NewFall(C(0, 70, 0), C(0, 50, 0))
	waterCost := intoWater.CalculateCost(waterCtx)

	if waterCost.Cost >= groundCost.Cost {
		t.Errorf("landing in water should be cheaper than landing on solid ground: water=%v ground=%v", waterCost.Cost, groundCost.Cost)
	}
}
