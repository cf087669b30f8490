package nav

// climbableBlocks names blocks the agent can climb by holding forward
// against them, mirroring the teacher's ladder/vine handling in blockFriction.
var climbableBlocks = map[string]float64{
	"minecraft:ladder":     1.0,
	"minecraft:vine":       VineUpMultiplier,
	"minecraft:twisting_vines": VineUpMultiplier,
	"minecraft:weeping_vines":  VineUpMultiplier,
}

func isClimbable(name string) bool {
	_, ok := climbableBlocks[name]
	return ok
}

// ClimbUp and ClimbDown move one block vertically along a ladder/vine
// column: ClimbUp requires it at the source cell, ClimbDown at the
// destination cell.
type ClimbUp struct{ baseMovement }

func NewClimbUp(from Cell) *ClimbUp {
	return &ClimbUp{baseMovement{src: from, dest: from.Up()}}
}
func (m *ClimbUp) Name() string { return "ClimbUp" }
func (m *ClimbUp) CalculateCost(ctx *CalculationContext) EdgeCost {
	srcBlock := ctx.GetBlockAt(m.src)
	if !isClimbable(srcBlock.Name) {
		return Infeasible()
	}
	mult := climbableBlocks[srcBlock.Name]
	return EdgeCost{Cost: LadderUpOneCost * mult}
}
func (m *ClimbUp) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }
func (m *ClimbUp) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	helper.Host().SetControl("jump", true)
	helper.Host().Look(helper.Host().Yaw(), helper.Host().Pitch(), false)
	if helper.IsAtPosition(m.dest, 0.3) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}

type ClimbDown struct{ baseMovement }

func NewClimbDown(from Cell) *ClimbDown {
	return &ClimbDown{baseMovement{src: from, dest: from.Down()}}
}
func (m *ClimbDown) Name() string { return "ClimbDown" }
func (m *ClimbDown) CalculateCost(ctx *CalculationContext) EdgeCost {
	destBlock := ctx.GetBlockAt(m.dest)
	if !isClimbable(destBlock.Name) {
		return Infeasible()
	}
	mult := 1.0
	if destBlock.Name != "minecraft:ladder" {
		mult = VineDownMultiplier
	}
	return EdgeCost{Cost: LadderDownOneCost * mult}
}
func (m *ClimbDown) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }
func (m *ClimbDown) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	helper.Host().SetControl("sneak", true)
	if helper.IsAtPosition(m.dest, 0.3) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}

func (m *ClimbDown) CanAcceptFallOverride() bool { return true }

// MountLadder and DismountLadder are the horizontal transitions onto/off of
// a climbable column, distinct from ClimbUp/Down so the planner can cost the
// approach step separately from vertical travel.
type MountLadder struct{ baseMovement }

func NewMountLadder(from, to Cell) *MountLadder {
	return &MountLadder{baseMovement{src: from, dest: to}}
}
func (m *MountLadder) Name() string { return "MountLadder" }
func (m *MountLadder) CalculateCost(ctx *CalculationContext) EdgeCost {
	if !isClimbable(ctx.GetBlockAt(m.dest).Name) {
		return Infeasible()
	}
	return EdgeCost{Cost: WalkOneBlockCost}
}
func (m *MountLadder) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }
func (m *MountLadder) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	helper.MoveToward(m.dest, false, false, false)
	if helper.IsAtPosition(m.dest, 0.3) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}

type DismountLadder struct{ baseMovement }

func NewDismountLadder(from, to Cell) *DismountLadder {
	return &DismountLadder{baseMovement{src: from, dest: to}}
}
func (m *DismountLadder) Name() string { return "DismountLadder" }
func (m *DismountLadder) CalculateCost(ctx *CalculationContext) EdgeCost {
	floor := ctx.GetBlockAt(m.dest.Down())
	if !ctx.CanWalkOn(floor) && !isClimbable(floor.Name) {
		return Infeasible()
	}
	return EdgeCost{Cost: WalkOneBlockCost}
}
func (m *DismountLadder) GetValidPositions() []Cell { return []Cell{m.src, m.dest} }
func (m *DismountLadder) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	helper.MoveToward(m.dest, false, false, false)
	if helper.IsAtPosition(m.dest, 0.2) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}
