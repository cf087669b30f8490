package host

import (
	"fmt"
	"math"

	"github.com/go-mclib/client/nav"
	"github.com/go-mclib/client/pkg/client/modules/inventory"
	"github.com/go-mclib/data/pkg/data/blocks"
	"github.com/go-mclib/data/pkg/data/items"
)

const airStateID = 0

// digState tracks the single in-flight break operation. MovementHelper
// never has more than one break in flight at a time (see nav/helper.go),
// so the adapter only needs to track one.
type digState struct {
	cell       nav.Cell
	targetTick int64
	cancelled  bool
	applied    bool
}

type digFuture struct {
	adapter *Adapter
	state   *digState
}

func (f *digFuture) Poll() (done bool, err error) {
	if f.state.cancelled {
		return true, fmt.Errorf("digging at %v cancelled", f.state.cell)
	}
	return f.adapter.currentTick >= f.state.targetTick, nil
}

// tickDig resolves the pending break once its duration has elapsed,
// removing the block. Called from Tick().
func (a *Adapter) tickDig() {
	d := a.pendingDig
	if d == nil || d.cancelled || d.applied || a.currentTick < d.targetTick {
		return
	}
	a.wrld.SetBlockState(int(d.cell.X), int(d.cell.Y), int(d.cell.Z), airStateID)
	d.applied = true
	a.pendingDig = nil
}

// Dig starts breaking the block at the given cell, the direct-mutation
// replacement for the teacher's BreakBlock(start=true)/BreakBlock(start=false)
// pair (pkg/client/actions.go): one WritePacket call became one state
// transition, the other became the deferred SetBlockState in tickDig.
func (a *Adapter) Dig(block nav.Cell, forceLook bool) nav.Future {
	info, ok := a.wrld.GetBlockInfo(block.X, block.Y, block.Z)
	if !ok || info.Hardness < 0 {
		return immediateFuture{err: fmt.Errorf("block at %v cannot be broken", block)}
	}

	if forceLook {
		cx, cy, cz := float64(block.X)+0.5, float64(block.Y)+0.5, float64(block.Z)+0.5
		a.self.LookAt(cx, cy, cz)
	}

	ticks := breakTicks(info, a.inv)
	state := &digState{cell: block, targetTick: a.currentTick + ticks}
	a.pendingDig = state
	return &digFuture{adapter: a, state: state}
}

// StopDigging cancels the in-flight break, the replacement for the
// teacher's CancelBreakBlock.
func (a *Adapter) StopDigging() {
	if a.pendingDig != nil {
		a.pendingDig.cancelled = true
		a.pendingDig = nil
	}
}

// breakTicks estimates how many ticks a break takes given the block's
// hardness and the fastest tool material found anywhere in the hotbar; the
// tool's kind is not matched against the block. This is a host-side
// completion-latency estimate for the simulated world, deliberately
// simpler than nav.CalculationContext.GetBreakTime (the cost the planner
// scores paths with) since the adapter only needs a plausible delay for the
// executor to poll against, not an admissible heuristic input.
func breakTicks(info nav.BlockInfo, inv *inventory.Module) int64 {
	mult := 1.0
	for _, stack := range inv.GetHotbar() {
		if stack == nil || stack.IsEmpty() {
			continue
		}
		name := items.ItemName(stack.ID)
		if m, ok := toolSpeedMultiplier(name); ok && m > mult {
			mult = m
		}
	}
	ticks := int64(math.Ceil(info.Hardness * 30 / mult))
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// toolSpeedMultiplier gives a rough digging speed bonus by tool material
// prefix, the same suffix/prefix classification idiom nav/tools.go uses
// for the authoritative cost-model tool tiers, simplified here since this
// value never feeds a planner heuristic.
func toolSpeedMultiplier(itemName string) (float64, bool) {
	switch {
	case hasAnyPrefix(itemName, "minecraft:netherite_"):
		return 9, true
	case hasAnyPrefix(itemName, "minecraft:diamond_"):
		return 8, true
	case hasAnyPrefix(itemName, "minecraft:iron_"):
		return 6, true
	case hasAnyPrefix(itemName, "minecraft:stone_"):
		return 4, true
	case hasAnyPrefix(itemName, "minecraft:golden_"):
		return 12, true
	case hasAnyPrefix(itemName, "minecraft:wooden_"):
		return 2, true
	}
	return 1, false
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if len(s) >= len(p) && s[:len(p)] == p {
			return true
		}
	}
	return false
}

// placeFuture resolves one tick after being issued, matching the single-tick
// latency the teacher's own synchronous-looking block-interaction examples
// assume (examples/containers/main.go clicks and reads the result on the
// very next tick of its own loop).
type placeFuture struct {
	adapter    *Adapter
	targetTick int64
	err        error
}

func (f *placeFuture) Poll() (done bool, err error) {
	return f.adapter.currentTick >= f.targetTick, f.err
}

type immediateFuture struct{ err error }

func (f immediateFuture) Poll() (done bool, err error) { return true, f.err }

// PlaceBlock places the currently held block item against reference, on the
// face given by the unit vector face, consuming one item from the held
// stack. Grounded on the teacher's PlaceBlock(x,y,z,face,hand,cursor...)
// wire call (pkg/client/actions.go): same reference-block-plus-face
// addressing, replaced here with a direct SetBlockState since there is no
// server to ack the placement.
func (a *Adapter) PlaceBlock(reference nav.Cell, face nav.Vec3) nav.Future {
	held := a.inv.HeldItem()
	if held == nil || held.IsEmpty() {
		return immediateFuture{err: fmt.Errorf("no item held to place")}
	}

	name := items.ItemName(held.ID)
	blockID := blocks.BlockID(name)
	if blockID < 0 {
		return immediateFuture{err: fmt.Errorf("%s is not a placeable block", name)}
	}

	target := reference.Offset(int32(face.X), int32(face.Y), int32(face.Z))
	a.wrld.SetBlockState(int(target.X), int(target.Y), int(target.Z), int32(blockID))

	heldSlot := inventory.SlotHotbarStart + a.inv.HeldSlotIndex()
	cp := *held
	cp.Count--
	if cp.Count <= 0 {
		a.inv.SetSlot(heldSlot, items.EmptyStack())
	} else {
		a.inv.SetSlot(heldSlot, &cp)
	}

	return &placeFuture{adapter: a, targetTick: a.currentTick + 1}
}

// Equip selects itemName into the given hotbar slot, swapping it in from
// wherever it currently sits in the inventory.
func (a *Adapter) Equip(itemName string, slot int) error {
	id := items.ItemID(itemName)
	if id < 0 {
		return fmt.Errorf("unknown item %q", itemName)
	}
	src := a.inv.FindItem(id)
	if src < 0 {
		return fmt.Errorf("%s not found in inventory", itemName)
	}
	if err := a.inv.SwapToHotbar(src, slot); err != nil {
		return err
	}
	return a.inv.SetHeldSlot(slot)
}

// ActivateItem is a no-op: no edge in this catalog needs a generic
// "use held item in the air" primitive, since the water-bucket MLG
// sequence calls PlaceBlock and ActivateBlock directly on the host.
func (a *Adapter) ActivateItem() error { return nil }

// ActivateBlock opens a door, fence gate, or trapdoor, the mechanism
// nav/move_door.go's ThroughDoor/FenceGate/Trapdoor edges call before
// walking through. The simulated world's block table has no separate
// open/closed substate per name, so the adapter tracks opened cells in an
// overlay consulted by GetBlock.
func (a *Adapter) ActivateBlock(block nav.Cell) nav.Future {
	if a.openedBlocks == nil {
		a.openedBlocks = map[nav.Cell]bool{}
	}
	a.openedBlocks[block] = true
	return immediateFuture{}
}
