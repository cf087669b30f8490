package nav

import "testing"

func TestExecutorReachesAdjacentGoal(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	host.moveTo(C(0, 64, 0))

	ctxFunc := func() *CalculationContext { return testContext(world, host) }
	exec := NewExecutor(host, ctxFunc, DefaultSuccessors, DefaultBudget())

	if err := exec.NavigateTo(GoalBlock{Target: C(1, 64, 0)}); err != nil {
		t.Fatalf("NavigateTo failed: %v", err)
	}
	if exec.State() != ExecNavigating {
		t.Fatalf("expected ExecNavigating after a successful plan, got %v", exec.State())
	}

	for i := 0; i < 50 && exec.State() == ExecNavigating; i++ {
		exec.Tick()
		if host.controls["forward"] {
			// simulate the host actually making progress: teleport toward
			// the current edge's destination a bit each tick.
			host.moveTo(C(1, 64, 0))
			host.onGround = true
		}
	}
	if exec.State() != ExecSucceeded {
		t.Fatalf("expected ExecSucceeded, got %v", exec.State())
	}
}

func TestExecutorFailsWithNoPath(t *testing.T) {
	world := newFakeWorld()
	for dx := int32(-2); dx <= 2; dx++ {
		for dz := int32(-2); dz <= 2; dz++ {
			if dx == 0 && dz == 0 {
				continue
			}
			for y := int32(40); y <= 70; y++ {
				world.set(C(dx, y, dz), BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
			}
		}
	}
	host := newFakeHost(world)
	host.moveTo(C(0, 64, 0))
	ctx := DefaultSettings()
	ctx.AllowParkour = false
	ctx.CanPlace = false
	ctxFunc := func() *CalculationContext {
		c := testContext(world, host)
		c.Settings = ctx
		return c
	}
	exec := NewExecutor(host, ctxFunc, DefaultSuccessors, DefaultBudget())
	if err := exec.NavigateTo(GoalBlock{Target: C(50, 64, 50)}); err == nil {
		t.Fatal("expected NavigateTo to fail with no possible path")
	}
	if exec.State() != ExecFailed {
		t.Errorf("expected ExecFailed, got %v", exec.State())
	}
}

func TestExecutorStopClearsControls(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	host.moveTo(C(0, 64, 0))
	ctxFunc := func() *CalculationContext { return testContext(world, host) }
	exec := NewExecutor(host, ctxFunc, DefaultSuccessors, DefaultBudget())
	_ = exec.NavigateTo(GoalBlock{Target: C(5, 64, 0)})
	exec.Tick()
	exec.Stop()
	if exec.State() != ExecIdle {
		t.Errorf("expected ExecIdle after Stop, got %v", exec.State())
	}
	if host.controls["forward"] {
		t.Error("Stop should clear the forward control")
	}
}
