// Package host composes the go-mclib/client modules (self, world, physics,
// collisions, entities, inventory) into a value satisfying nav.Host, the
// external-interface boundary the pathfinding core consumes. No module
// implements nav.Host on its own; this package is the seam.
package host

import (
	"math"

	"github.com/go-mclib/client/nav"
	"github.com/go-mclib/client/pkg/client"
	"github.com/go-mclib/client/pkg/client/modules/entities"
	"github.com/go-mclib/client/pkg/client/modules/inventory"
	"github.com/go-mclib/client/pkg/client/modules/physics"
	"github.com/go-mclib/client/pkg/client/modules/self"
	"github.com/go-mclib/client/pkg/client/modules/world"
	"github.com/go-mclib/data/pkg/data/items"
)

// Adapter implements nav.Host by delegating to a client's registered
// modules. Construct one per client after registering self/world/physics/
// collisions/entities/inventory.
type Adapter struct {
	client *client.Client

	self *self.Module
	wrld *world.Module
	phys *physics.Module
	ents *entities.Module
	inv  *inventory.Module

	currentTick  int64
	pendingDig   *digState
	openedBlocks map[nav.Cell]bool
}

// New builds an Adapter over c's already-registered modules. Returns nil if
// any required module is missing.
func New(c *client.Client) *Adapter {
	s := self.From(c)
	w := world.From(c)
	p := physics.From(c)
	e := entities.From(c)
	i := inventory.From(c)
	if s == nil || w == nil || p == nil || e == nil || i == nil {
		return nil
	}
	return &Adapter{client: c, self: s, wrld: w, phys: p, ents: e, inv: i}
}

var _ nav.Host = (*Adapter)(nil)

// Tick advances the adapter's internal tick counter, resolving any pending
// asynchronous break/place operation whose duration has elapsed. Call once
// per simulation tick, alongside the physics module's own ticker.
func (a *Adapter) Tick() {
	a.currentTick++
	a.tickDig()
}

// WorldView

func (a *Adapter) GetBlock(x, y, z int32) (nav.BlockInfo, bool) {
	info, ok := a.wrld.GetBlockInfo(x, y, z)
	if ok && a.openedBlocks[nav.C(x, y, z)] {
		info.BoundingBox = nav.BoxEmpty
	}
	return info, ok
}

// AgentView

func (a *Adapter) AgentPosition() (x, y, z float64) { return a.self.X, a.self.Y, a.self.Z }

func (a *Adapter) AgentCell() nav.Cell {
	return nav.C(
		int32(math.Floor(a.self.X)),
		int32(math.Floor(a.self.Y)),
		int32(math.Floor(a.self.Z)),
	)
}

func (a *Adapter) OnGround() bool                    { return a.phys.OnGround() }
func (a *Adapter) InWater() bool                     { return a.phys.InWater() }
func (a *Adapter) InLava() bool                      { return a.phys.InLava() }
func (a *Adapter) Velocity() (vx, vy, vz float64)    { return a.phys.Velocity() }
func (a *Adapter) Yaw() float64                      { return a.self.Yaw }
func (a *Adapter) Pitch() float64                    { return a.self.Pitch }

// Controller

func (a *Adapter) SetControl(name string, active bool) { a.phys.SetControl(name, active) }
func (a *Adapter) Look(yaw, pitch float64, force bool)  { a.phys.Look(yaw, pitch, force) }

// InventoryView

func (a *Adapter) InventoryItems() []nav.InventoryItem {
	hotbar := a.inv.GetHotbar()
	out := make([]nav.InventoryItem, 0, len(hotbar))
	for i, stack := range hotbar {
		if stack == nil || stack.IsEmpty() {
			continue
		}
		out = append(out, nav.InventoryItem{
			Name:      items.ItemName(stack.ID),
			Count:     stack.Count,
			SlotIndex: i,
		})
	}
	return out
}

// EntitiesView

func (a *Adapter) Entities() map[int]nav.EntityInfo { return a.ents.Entities() }
