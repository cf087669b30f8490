package nav

// SwimHorizontal moves one cardinal step while fully submerged. Costed
// separately from Traverse because water drag roughly halves walking speed,
// matching the teacher physics module's water current/drag handling.
type SwimHorizontal struct {
	baseMovement
}

func NewSwimHorizontal(from, to Cell) *SwimHorizontal {
	return &SwimHorizontal{baseMovement{src: from, dest: to}}
}

func (m *SwimHorizontal) Name() string { return "SwimHorizontal" }

func (m *SwimHorizontal) CalculateCost(ctx *CalculationContext) EdgeCost {
	if !ctx.IsWater(ctx.GetBlockAt(m.src)) || !ctx.IsWater(ctx.GetBlockAt(m.dest)) {
		return Infeasible()
	}
	if !ctx.CanWalkThrough(ctx.GetBlockAt(m.dest.Up())) {
		return Infeasible()
	}
	cost := WalkOneInWaterCost * float64(ctx.GetFavoring(m.dest.X, m.dest.Y, m.dest.Z))
	return EdgeCost{Cost: cost}
}

func (m *SwimHorizontal) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }

func (m *SwimHorizontal) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	if m.ph == phaseNotStarted {
		m.ph = phaseMoving
	}
	helper.MoveToward(m.dest, false, true, false)
	if helper.IsAtPosition(m.dest, 0.3) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}

func (m *SwimHorizontal) CanAcceptFallOverride() bool { return true }

// SwimUp and SwimDown move one block vertically through water using the
// jump/sneak controls, costed asymmetrically the way the teacher's
// SwimUpCost/SwimDownCost constants already encode (rising costs more than
// sinking).
type SwimUp struct{ baseMovement }

func NewSwimUp(from Cell) *SwimUp {
	return &SwimUp{baseMovement{src: from, dest: from.Up()}}
}
func (m *SwimUp) Name() string { return "SwimUp" }
func (m *SwimUp) CalculateCost(ctx *CalculationContext) EdgeCost {
	if !ctx.IsWater(ctx.GetBlockAt(m.src)) || !ctx.IsWater(ctx.GetBlockAt(m.dest)) {
		return Infeasible()
	}
	return EdgeCost{Cost: SwimUpCost}
}
func (m *SwimUp) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }
func (m *SwimUp) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	helper.Host().SetControl("jump", true)
	if helper.IsAtPosition(m.dest, 0.3) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}

type SwimDown struct{ baseMovement }

func NewSwimDown(from Cell) *SwimDown {
	return &SwimDown{baseMovement{src: from, dest: from.Down()}}
}
func (m *SwimDown) Name() string { return "SwimDown" }
func (m *SwimDown) CalculateCost(ctx *CalculationContext) EdgeCost {
	if !ctx.IsWater(ctx.GetBlockAt(m.src)) || !ctx.IsWater(ctx.GetBlockAt(m.dest)) {
		return Infeasible()
	}
	return EdgeCost{Cost: SwimDownCost}
}
func (m *SwimDown) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }
func (m *SwimDown) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	helper.Host().SetControl("sneak", true)
	if helper.IsAtPosition(m.dest, 0.3) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}

func (m *SwimDown) CanAcceptFallOverride() bool { return true }

// WaterEntry walks off dry land into an adjacent water column, and
// WaterExit is its reverse (climbing out onto dry land). Both are one-way
// transitions between the swim graph and the walk graph.
type WaterEntry struct{ baseMovement }

func NewWaterEntry(from, to Cell) *WaterEntry {
	return &WaterEntry{baseMovement{src: from, dest: to}}
}
func (m *WaterEntry) Name() string { return "WaterEntry" }
func (m *WaterEntry) CalculateCost(ctx *CalculationContext) EdgeCost {
	if !ctx.IsWater(ctx.GetBlockAt(m.dest)) {
		return Infeasible()
	}
	cost := WalkOffBlockCost + WalkOneInWaterCost
	return EdgeCost{Cost: cost}
}
func (m *WaterEntry) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }
func (m *WaterEntry) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	if m.ph == phaseNotStarted {
		m.ph = phaseMoving
	}
	helper.MoveToward(m.dest, false, false, false)
	if helper.IsAtPosition(m.dest, 0.3) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}

func (m *WaterEntry) CanAcceptFallOverride() bool { return true }

type WaterExit struct{ baseMovement }

func NewWaterExit(from, to Cell) *WaterExit {
	return &WaterExit{baseMovement{src: from, dest: to}}
}
func (m *WaterExit) Name() string { return "WaterExit" }
func (m *WaterExit) CalculateCost(ctx *CalculationContext) EdgeCost {
	if !ctx.IsWater(ctx.GetBlockAt(m.src)) {
		return Infeasible()
	}
	floor := ctx.GetBlockAt(m.dest.Down())
	if !ctx.CanWalkOn(floor) {
		return Infeasible()
	}
	cost := WalkOneInWaterCost + JumpOneBlockCost
	return EdgeCost{Cost: cost}
}
func (m *WaterExit) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }
func (m *WaterExit) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	helper.MoveToward(m.dest, false, true, false)
	if helper.IsAtPosition(m.dest, 0.3) && helper.Host().OnGround() {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}
