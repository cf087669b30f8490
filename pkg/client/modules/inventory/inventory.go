package inventory

import (
	"sync"

	"github.com/go-mclib/client/pkg/client"
	"github.com/go-mclib/data/pkg/data/items"
)

// Module tracks the player's inventory slots and any open container. It
// carries no network state: whatever drives the agent — a real client's
// container packet handlers, or a scripted fixture in tests and the demo —
// calls SetSlot/SetHeldSlot/OpenContainer directly.
type Module struct {
	client *client.Client
	mu     sync.RWMutex

	slots    [TotalSlots]*items.ItemStack
	heldSlot int
	cursor   *items.ItemStack

	container *containerState // nil when no container is open

	onSlotUpdate     []func(index int, item *items.ItemStack)
	onHeldSlotChange []func(slot int)
	onContainerOpen  []func(windowID int32, menuType MenuType, title string)
	onContainerClose []func()
}

func New() *Module {
	m := &Module{cursor: items.EmptyStack()}
	for i := range m.slots {
		m.slots[i] = items.EmptyStack()
	}
	return m
}

func (m *Module) Name() string { return ModuleName }

func (m *Module) Init(c *client.Client) { m.client = c }

func (m *Module) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.slots {
		m.slots[i] = items.EmptyStack()
	}
	m.heldSlot = 0
	m.cursor = items.EmptyStack()
	m.container = nil
}

func From(c *client.Client) *Module {
	mod := c.Module(ModuleName)
	if mod == nil {
		return nil
	}
	return mod.(*Module)
}

// events

func (m *Module) OnSlotUpdate(cb func(index int, item *items.ItemStack)) {
	m.onSlotUpdate = append(m.onSlotUpdate, cb)
}

func (m *Module) OnHeldSlotChange(cb func(slot int)) {
	m.onHeldSlotChange = append(m.onHeldSlotChange, cb)
}

func (m *Module) OnContainerOpen(cb func(windowID int32, menuType MenuType, title string)) {
	m.onContainerOpen = append(m.onContainerOpen, cb)
}

func (m *Module) OnContainerClose(cb func()) {
	m.onContainerClose = append(m.onContainerClose, cb)
}

// SetSlot writes a single player-inventory slot and fires update callbacks,
// the direct-mutation replacement for the teacher's container-set-slot and
// container-set-content packet handlers.
func (m *Module) SetSlot(index int, item *items.ItemStack) {
	if index < 0 || index >= TotalSlots {
		return
	}
	if item == nil {
		item = items.EmptyStack()
	}
	m.mu.Lock()
	m.slots[index] = item
	m.mu.Unlock()
	for _, cb := range m.onSlotUpdate {
		cb(index, item)
	}
}

// SetCursor writes the item currently held on the cursor.
func (m *Module) SetCursor(item *items.ItemStack) {
	if item == nil {
		item = items.EmptyStack()
	}
	m.mu.Lock()
	m.cursor = item
	m.mu.Unlock()
}

// OpenContainer installs an open container view, the direct-mutation
// replacement for the teacher's S2COpenScreen handler.
func (m *Module) OpenContainer(windowID int32, menuType MenuType, title string, slotCount int) {
	slots := make([]*items.ItemStack, slotCount)
	for i := range slots {
		slots[i] = items.EmptyStack()
	}
	m.mu.Lock()
	m.container = &containerState{windowID: windowID, menuType: menuType, title: title, slots: slots}
	m.mu.Unlock()

	for _, cb := range m.onContainerOpen {
		cb(windowID, menuType, title)
	}
}
