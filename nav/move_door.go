package nav

import "strings"

// isWoodenDoor, isFenceGate and isTrapdoor classify an interactable block by
// name, the same suffix-matching idiom the teacher's doors.go uses (minus
// the state-property lookups we no longer have, since BlockInfo doesn't
// carry NBT/blockstate — the planner only needs to know "this needs an
// ActivateBlock before it's walkable", not its exact open/closed substate).
func isWoodenDoor(name string) bool {
	return strings.HasSuffix(name, "_door") && name != "minecraft:iron_door"
}

func isFenceGate(name string) bool {
	return strings.HasSuffix(name, "_fence_gate")
}

func isTrapdoor(name string) bool {
	return strings.HasSuffix(name, "_trapdoor") && name != "minecraft:iron_trapdoor"
}

// ThroughDoor walks through a cardinal doorway, activating the door first
// if it currently blocks passage (BoxOther means closed, since a closed
// door occupies a thin slab of its cell rather than the full cell).
type ThroughDoor struct {
	baseMovement
	door Cell
}

func NewThroughDoor(from, to, door Cell) *ThroughDoor {
	return &ThroughDoor{baseMovement{src: from, dest: to}, door}
}

func (m *ThroughDoor) Name() string { return "ThroughDoor" }

func (m *ThroughDoor) CalculateCost(ctx *CalculationContext) EdgeCost {
	block := ctx.GetBlockAt(m.door)
	if !isWoodenDoor(block.Name) {
		return Infeasible()
	}
	cost := WalkOneBlockCost
	if block.BoundingBox != BoxEmpty {
		cost += DoorOpenCost
	}
	return EdgeCost{Cost: cost}
}

func (m *ThroughDoor) GetValidPositions() []Cell { return []Cell{m.src, m.door, m.dest} }

func (m *ThroughDoor) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	block := ctx.GetBlockAt(m.door)
	if m.ph == phaseNotStarted {
		if block.BoundingBox != BoxEmpty {
			m.ph = phaseWaiting
		} else {
			m.ph = phaseMoving
		}
	}
	if m.ph == phaseWaiting {
		if len(m.breakFutures) == 0 {
			m.breakFutures = []Future{helper.Host().ActivateBlock(m.door)}
		}
		done, err := m.breakFutures[0].Poll()
		if err != nil {
			return StatusFailed
		}
		if done {
			m.ph = phaseMoving
		}
		return StatusRunning
	}
	helper.MoveToward(m.dest, false, false, false)
	if helper.IsAtPosition(m.dest, 0.2) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}

// FenceGate is ThroughDoor's single-tall equivalent.
type FenceGate struct {
	ThroughDoor
}

func NewFenceGate(from, to, gate Cell) *FenceGate {
	return &FenceGate{*NewThroughDoor(from, to, gate)}
}

func (m *FenceGate) Name() string { return "FenceGate" }

func (m *FenceGate) CalculateCost(ctx *CalculationContext) EdgeCost {
	block := ctx.GetBlockAt(m.door)
	if !isFenceGate(block.Name) {
		return Infeasible()
	}
	cost := WalkOneBlockCost
	if block.BoundingBox != BoxEmpty {
		cost += DoorOpenCost
	}
	return EdgeCost{Cost: cost}
}

// Trapdoor covers a floor hatch that must be opened before dropping/climbing
// through it vertically, or before walking over it horizontally if closed
// blocks passage at head height for a Descend underneath.
type Trapdoor struct {
	baseMovement
	hatch Cell
}

func NewTrapdoor(from, to, hatch Cell) *Trapdoor {
	return &Trapdoor{baseMovement{src: from, dest: to}, hatch}
}

func (m *Trapdoor) Name() string { return "Trapdoor" }

func (m *Trapdoor) CalculateCost(ctx *CalculationContext) EdgeCost {
	block := ctx.GetBlockAt(m.hatch)
	if !isTrapdoor(block.Name) {
		return Infeasible()
	}
	cost := WalkOneBlockCost
	if block.BoundingBox != BoxEmpty {
		cost += DoorOpenCost
	}
	return EdgeCost{Cost: cost}
}

func (m *Trapdoor) GetValidPositions() []Cell { return []Cell{m.src, m.hatch, m.dest} }

func (m *Trapdoor) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	block := ctx.GetBlockAt(m.hatch)
	if m.ph == phaseNotStarted {
		if block.BoundingBox != BoxEmpty {
			m.ph = phaseWaiting
		} else {
			m.ph = phaseMoving
		}
	}
	if m.ph == phaseWaiting {
		if len(m.breakFutures) == 0 {
			m.breakFutures = []Future{helper.Host().ActivateBlock(m.hatch)}
		}
		done, err := m.breakFutures[0].Poll()
		if err != nil {
			return StatusFailed
		}
		if done {
			m.ph = phaseMoving
		}
		return StatusRunning
	}
	helper.MoveToward(m.dest, false, false, false)
	if helper.IsAtPosition(m.dest, 0.2) {
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}
