package nav

// Traverse walks one cardinal step at the same Y level, optionally breaking
// the destination's body/head blocks and placing a bridge block underfoot
// when the destination has no floor. Grounded on the teacher's moveCostInner
// cardinal-step branch.
type Traverse struct {
	baseMovement
}

func NewTraverse(from, to Cell) *Traverse {
	return &Traverse{baseMovement{src: from, dest: to}}
}

func (m *Traverse) Name() string { return "Traverse" }

func (m *Traverse) CalculateCost(ctx *CalculationContext) EdgeCost {
	floor := ctx.GetBlockAt(m.dest.Down())
	body := ctx.GetBlockAt(m.dest)
	head := ctx.GetBlockAt(m.dest.Up())

	if !ctx.CanWalkThrough(body) || !ctx.CanWalkThrough(head) {
		if !ctx.Settings.CanDig {
			return Infeasible()
		}
	}

	var toBreak []Cell
	if !ctx.CanWalkThrough(body) {
		toBreak = append(toBreak, m.dest)
	}
	if !ctx.CanWalkThrough(head) {
		toBreak = append(toBreak, m.dest.Up())
	}

	var toPlace []PlaceSpec
	needsBridge := !ctx.CanWalkOn(floor) && !ctx.IsWater(floor)
	if needsBridge {
		if !ctx.Settings.CanPlace {
			return Infeasible()
		}
		toPlace = append(toPlace, bridgeSpec(m.src, m.dest))
	}

	var obstacleCost float64
	for _, c := range toBreak {
		b := ctx.GetBlockAt(c)
		obstacleCost += ctx.GetBreakTime(b)
	}

	cost := getTerrainCost(WalkOneBlockCost, floor.Name) + obstacleCost
	if needsBridge {
		cost += PlaceOneBlockCost
		if m.backplaceNeeded(ctx) {
			cost += BackplaceAdditionalPenalty
		}
	}
	if obstacleCost == 0 && !needsBridge && ctx.Settings.AllowSprint && !ctx.IsWater(body) {
		cost *= SprintMultiplier
	}
	cost *= float64(ctx.GetFavoring(m.dest.X, m.dest.Y, m.dest.Z))
	return EdgeCost{Cost: cost, ToBreak: toBreak, ToPlace: toPlace}
}

// backplaceNeeded reports whether both lateral neighbors of src (the two
// cells orthogonal to the direction of travel) lack a floor, meaning the
// agent will have to place the bridge block while stepping away from solid
// footing on both sides.
func (m *Traverse) backplaceNeeded(ctx *CalculationContext) bool {
	dx := m.dest.X - m.src.X
	var a, b Cell
	if dx != 0 {
		a, b = m.src.Offset(0, 0, 1), m.src.Offset(0, 0, -1)
	} else {
		a, b = m.src.Offset(1, 0, 0), m.src.Offset(-1, 0, 0)
	}
	aFloor := ctx.GetBlockAt(a.Down())
	bFloor := ctx.GetBlockAt(b.Down())
	return !ctx.CanWalkOn(aFloor) && !ctx.CanWalkOn(bFloor)
}

func (m *Traverse) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }

func (m *Traverse) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	ec := m.CalculateCost(ctx)
	if ec.Cost >= CostInf {
		return StatusUnreachable
	}
	done, status := m.tickBreakPlace(helper, ec.ToBreak, ec.ToPlace)
	if done {
		return status
	}
	if m.ph != phaseMoving {
		return StatusRunning
	}
	sprint := ctx.Settings.AllowSprint
	helper.MoveToward(m.dest, sprint, false, false)
	if helper.IsAtPosition(m.dest, 0.2) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}

// bridgeSpec builds a PlaceSpec for a floor block under dest, referenced off
// the block below src (the agent's current footing).
func bridgeSpec(src, dest Cell) PlaceSpec {
	ref := src.Down()
	return PlaceSpec{Target: dest.Down(), Reference: ref, Face: Vec3{X: float64(dest.X - ref.X), Y: float64(dest.Y - ref.Y), Z: float64(dest.Z - ref.Z)}}
}

// Diagonal moves one step on each horizontal axis simultaneously, valid only
// when at least one of the two orthogonal corners is passable (so the agent
// doesn't clip through a solid corner). Grounded on canDiagonalTraverse.
type Diagonal struct {
	baseMovement
}

func NewDiagonal(from, to Cell) *Diagonal {
	return &Diagonal{baseMovement{src: from, dest: to}}
}

func (m *Diagonal) Name() string { return "Diagonal" }

func (m *Diagonal) CalculateCost(ctx *CalculationContext) EdgeCost {
	cornerA := C(m.dest.X, m.src.Y, m.src.Z)
	cornerB := C(m.src.X, m.src.Y, m.dest.Z)
	aOpen := ctx.CanWalkThrough(ctx.GetBlockAt(cornerA)) && ctx.CanWalkThrough(ctx.GetBlockAt(cornerA.Up()))
	bOpen := ctx.CanWalkThrough(ctx.GetBlockAt(cornerB)) && ctx.CanWalkThrough(ctx.GetBlockAt(cornerB.Up()))
	if !aOpen && !bOpen {
		return Infeasible()
	}

	floor := ctx.GetBlockAt(m.dest.Down())
	body := ctx.GetBlockAt(m.dest)
	head := ctx.GetBlockAt(m.dest.Up())
	if !ctx.CanWalkOn(floor) {
		return Infeasible()
	}
	if !ctx.CanWalkThrough(body) || !ctx.CanWalkThrough(head) {
		return Infeasible()
	}

	cost := getTerrainCost(WalkOneBlockCost*Sqrt2, floor.Name)
	if aOpen && bOpen && ctx.Settings.AllowSprint {
		cost *= SprintMultiplier
	}
	cost *= float64(ctx.GetFavoring(m.dest.X, m.dest.Y, m.dest.Z))
	return EdgeCost{Cost: cost}
}

func (m *Diagonal) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }

func (m *Diagonal) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	if m.ph == phaseNotStarted {
		m.ph = phaseMoving
	}
	sprint := ctx.Settings.AllowSprint
	helper.MoveToward(m.dest, sprint, false, false)
	if helper.IsAtPosition(m.dest, 0.2) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}
