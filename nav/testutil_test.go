package nav

// fakeWorld is a minimal in-memory WorldView backing for tests: a flat
// superflat-style floor at y=63 with air above, plus whatever overrides a
// test installs.
type fakeWorld struct {
	blocks map[Cell]BlockInfo
	floorY int32
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{blocks: map[Cell]BlockInfo{}, floorY: 63}
}

func (w *fakeWorld) set(c Cell, b BlockInfo) { w.blocks[c] = b }

func (w *fakeWorld) GetBlock(x, y, z int32) (BlockInfo, bool) {
	c := C(x, y, z)
	if b, ok := w.blocks[c]; ok {
		return b, true
	}
	if y == w.floorY {
		return BlockInfo{Name: "minecraft:stone", BoundingBox: BoxBlock, Hardness: 1.5}, true
	}
	if y < w.floorY {
		return BlockInfo{Name: "minecraft:stone", BoundingBox: BoxBlock, Hardness: 1.5}, true
	}
	return BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty}, true
}

// instantFuture resolves done=true immediately, for tests that don't care
// about multi-tick break/place sequencing.
type instantFuture struct{ err error }

func (f instantFuture) Poll() (bool, error) { return true, f.err }

// fakeHost implements nav.Host entirely in memory for edge/executor tests.
type fakeHost struct {
	world *fakeWorld
	x, y, z float64
	yaw, pitch float64
	onGround bool
	inWater, inLava bool
	vx, vy, vz float64

	controls map[string]bool
	items    []InventoryItem
	ents     map[int]EntityInfo

	dug    []Cell
	placed []Cell
}

func newFakeHost(world *fakeWorld) *fakeHost {
	return &fakeHost{world: world, controls: map[string]bool{}, ents: map[int]EntityInfo{}, onGround: true}
}

func (h *fakeHost) GetBlock(x, y, z int32) (BlockInfo, bool) { return h.world.GetBlock(x, y, z) }

func (h *fakeHost) AgentPosition() (float64, float64, float64) { return h.x, h.y, h.z }
func (h *fakeHost) AgentCell() Cell {
	return C(int32(floorF(h.x)), int32(floorF(h.y)), int32(floorF(h.z)))
}
func (h *fakeHost) OnGround() bool              { return h.onGround }
func (h *fakeHost) InWater() bool               { return h.inWater }
func (h *fakeHost) InLava() bool                { return h.inLava }
func (h *fakeHost) Velocity() (float64, float64, float64) { return h.vx, h.vy, h.vz }
func (h *fakeHost) Yaw() float64                { return h.yaw }
func (h *fakeHost) Pitch() float64              { return h.pitch }

func (h *fakeHost) SetControl(name string, active bool) { h.controls[name] = active }
func (h *fakeHost) Look(yaw, pitch float64, force bool) { h.yaw, h.pitch = yaw, pitch }

func (h *fakeHost) Dig(block Cell, forceLook bool) Future {
	h.dug = append(h.dug, block)
	h.world.set(block, BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty})
	return instantFuture{}
}
func (h *fakeHost) StopDigging() {}
func (h *fakeHost) PlaceBlock(reference Cell, face Vec3) Future {
	target := reference.Offset(int32(face.X), int32(face.Y), int32(face.Z))
	h.placed = append(h.placed, target)
	h.world.set(target, BlockInfo{Name: "minecraft:stone", BoundingBox: BoxBlock, Hardness: 1.5})
	return instantFuture{}
}
func (h *fakeHost) Equip(itemName string, slot int) error { return nil }
func (h *fakeHost) ActivateItem() error                   { return nil }
func (h *fakeHost) ActivateBlock(block Cell) Future {
	if b, ok := h.world.blocks[block]; ok {
		b.BoundingBox = BoxEmpty
		h.world.set(block, b)
	}
	return instantFuture{}
}

func (h *fakeHost) InventoryItems() []InventoryItem { return h.items }
func (h *fakeHost) Entities() map[int]EntityInfo    { return h.ents }

func (h *fakeHost) moveTo(c Cell) {
	x, y, z := c.Center()
	h.x, h.y, h.z = x, y, z
}

func floorF(v float64) float64 {
	i := int64(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return float64(i)
}

func testContext(world *fakeWorld, host Host) *CalculationContext {
	s := DefaultSettings()
	return &CalculationContext{World: world, Settings: s, Host: host}
}
