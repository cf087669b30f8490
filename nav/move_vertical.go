package nav

// Ascend steps up one block: jump, move into the destination column, break
// the head/body clearance needed at the higher level. Grounded on the
// teacher's canStepUp + JumpOneBlockCost handling in moveCostInner.
type Ascend struct {
	baseMovement
}

func NewAscend(from, to Cell) *Ascend {
	return &Ascend{baseMovement{src: from, dest: to}}
}

func (m *Ascend) Name() string { return "Ascend" }

func (m *Ascend) CalculateCost(ctx *CalculationContext) EdgeCost {
	floor := ctx.GetBlockAt(m.dest.Down())
	if !ctx.CanWalkOn(floor) {
		return Infeasible()
	}
	body := ctx.GetBlockAt(m.dest)
	head := ctx.GetBlockAt(m.dest.Up())
	srcHead2 := ctx.GetBlockAt(m.src.Up().Up())

	var toBreak []Cell
	if !ctx.CanWalkThrough(body) {
		toBreak = append(toBreak, m.dest)
	}
	if !ctx.CanWalkThrough(head) {
		toBreak = append(toBreak, m.dest.Up())
	}
	if !ctx.CanWalkThrough(srcHead2) {
		toBreak = append(toBreak, m.src.Up().Up())
	}
	if len(toBreak) > 0 && !ctx.Settings.CanDig {
		return Infeasible()
	}

	cost := WalkOneBlockCost + JumpOneBlockCost + ctx.Settings.JumpPenalty
	cost = getTerrainCost(cost, floor.Name)
	for _, c := range toBreak {
		cost += ctx.GetBreakTime(ctx.GetBlockAt(c))
	}
	cost *= float64(ctx.GetFavoring(m.dest.X, m.dest.Y, m.dest.Z))
	return EdgeCost{Cost: cost, ToBreak: toBreak}
}

func (m *Ascend) GetValidPositions() []Cell { return []Cell{m.src, m.src.Up(), m.dest} }

func (m *Ascend) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	ec := m.CalculateCost(ctx)
	if ec.Cost >= CostInf {
		return StatusUnreachable
	}
	done, status := m.tickBreakPlace(helper, ec.ToBreak, nil)
	if done {
		return status
	}
	if m.ph != phaseMoving {
		return StatusRunning
	}
	jump := helper.Host().OnGround()
	helper.MoveToward(m.dest, ctx.Settings.AllowSprint, jump, false)
	if helper.IsAtPosition(m.dest, 0.2) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}

// Descend steps down one block onto a lower floor, no jump required.
type Descend struct {
	baseMovement
}

func NewDescend(from, to Cell) *Descend {
	return &Descend{baseMovement{src: from, dest: to}}
}

func (m *Descend) Name() string { return "Descend" }

func (m *Descend) CalculateCost(ctx *CalculationContext) EdgeCost {
	k := m.src.Y - m.dest.Y
	if k < 1 {
		return Infeasible()
	}
	floor := ctx.GetBlockAt(m.dest.Down())
	waterLanding := ctx.IsWater(floor)
	if !waterLanding && !ctx.CanWalkOn(floor) {
		return Infeasible()
	}
	for y := m.src.Y - 1; y >= m.dest.Y; y-- {
		col := C(m.dest.X, y, m.dest.Z)
		if !ctx.CanWalkThrough(ctx.GetBlockAt(col)) || !ctx.CanWalkThrough(ctx.GetBlockAt(col.Up())) {
			return Infeasible()
		}
	}
	cost := WalkOffBlockCost + GetFallCost(int(k), waterLanding)
	cost *= float64(ctx.GetFavoring(m.dest.X, m.dest.Y, m.dest.Z))
	return EdgeCost{Cost: cost}
}

func (m *Descend) CanAcceptFallOverride() bool { return true }

func (m *Descend) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }

func (m *Descend) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	if m.ph == phaseNotStarted {
		m.ph = phaseMoving
	}
	helper.MoveToward(m.dest, ctx.Settings.AllowSprint, false, false)
	if helper.IsAtPosition(m.dest, 0.2) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}

// Pillar places a block underfoot and jumps to stand on it, climbing
// straight up one block with no horizontal displacement.
type Pillar struct {
	baseMovement
}

func NewPillar(from Cell) *Pillar {
	to := from.Up()
	return &Pillar{baseMovement{src: from, dest: to}}
}

func (m *Pillar) Name() string { return "Pillar" }

func (m *Pillar) CalculateCost(ctx *CalculationContext) EdgeCost {
	srcBlock := ctx.GetBlockAt(m.src)
	if isClimbable(srcBlock.Name) {
		if !ctx.CanWalkThrough(ctx.GetBlockAt(m.dest.Up())) {
			return Infeasible()
		}
		mult := climbableBlocks[srcBlock.Name]
		return EdgeCost{Cost: LadderUpOneCost * mult}
	}

	if !ctx.Settings.CanPlace {
		return Infeasible()
	}
	head := ctx.GetBlockAt(m.dest.Up())
	if !ctx.CanWalkThrough(head) {
		if !ctx.Settings.CanDig {
			return Infeasible()
		}
		return EdgeCost{
			Cost:    PlaceOneBlockCost + JumpOneBlockCost + ctx.Settings.JumpPenalty + ctx.GetBreakTime(head),
			ToBreak: []Cell{m.dest.Up()},
			ToPlace: []PlaceSpec{{Target: m.src, Reference: m.src.Down(), Face: Vec3{Y: 1}}},
		}
	}
	return EdgeCost{
		Cost:    PlaceOneBlockCost + JumpOneBlockCost + ctx.Settings.JumpPenalty,
		ToPlace: []PlaceSpec{{Target: m.src, Reference: m.src.Down(), Face: Vec3{Y: 1}}},
	}
}

func (m *Pillar) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }

func (m *Pillar) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	if isClimbable(ctx.GetBlockAt(m.src).Name) {
		helper.Host().SetControl("jump", true)
		if helper.IsAtPosition(m.dest, 0.3) {
			helper.StopAllControls()
			return StatusSuccess
		}
		return StatusRunning
	}

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
	helper.Host().SetControl("jump", true)
	if helper.IsAtPosition(m.dest, 0.3) && helper.Host().OnGround() {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}
