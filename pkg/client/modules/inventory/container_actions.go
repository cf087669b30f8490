package inventory

import (
	"fmt"

	"github.com/go-mclib/data/pkg/data/items"
)

// ContainerOpen returns true if a container is currently open.
func (m *Module) ContainerOpen() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.container != nil
}

// ContainerMenuType returns the menu type of the open container, or -1 if none.
func (m *Module) ContainerMenuType() MenuType {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.container == nil {
		return -1
	}
	return m.container.menuType
}

// ContainerSlotCount returns the number of container-specific slots
// (excluding the 36 player inventory slots), or 0 if no container is open.
func (m *Module) ContainerSlotCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.container == nil {
		return 0
	}
	return len(m.container.slots)
}

// ContainerSlot returns the item at a container slot index (0-based, container slots only).
func (m *Module) ContainerSlot(index int) *items.ItemStack {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.container == nil || index < 0 || index >= len(m.container.slots) {
		return nil
	}
	return m.container.slots[index]
}

// ContainerSlots returns all container-specific slot items.
func (m *Module) ContainerSlots() []*items.ItemStack {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.container == nil {
		return nil
	}
	result := make([]*items.ItemStack, len(m.container.slots))
	copy(result, m.container.slots)
	return result
}

// ContainerClick performs a left-click (pick up / place / swap) on a slot in
// the open container view. viewIndex is the absolute index in the container
// view (0..totalSlots-1).
func (m *Module) ContainerClick(viewIndex int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.container == nil {
		return fmt.Errorf("no container open")
	}

	clicked := m.containerViewSlot(viewIndex)
	cursor := m.cursor

	if cursor.IsEmpty() && clicked.IsEmpty() {
		return nil
	}

	var newClicked, newCursor *items.ItemStack
	switch {
	case cursor.IsEmpty():
		newClicked, newCursor = items.EmptyStack(), clicked
	case clicked.IsEmpty():
		newClicked, newCursor = cursor, items.EmptyStack()
	default:
		// simplified: swap rather than merge same-item stacks
		newClicked, newCursor = cursor, clicked
	}

	m.setContainerViewSlot(viewIndex, newClicked)
	m.cursor = newCursor
	return nil
}

// ContainerRightClick performs a right-click on a slot in the open container
// view: if the cursor is empty, picks up half the stack; otherwise places one
// item from the cursor into an empty slot or onto a stack of the same item.
// A slot holding a different item is left unchanged.
func (m *Module) ContainerRightClick(viewIndex int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.container == nil {
		return fmt.Errorf("no container open")
	}

	clicked := m.containerViewSlot(viewIndex)
	cursor := m.cursor

	if cursor.IsEmpty() && clicked.IsEmpty() {
		return nil
	}

	if cursor.IsEmpty() {
		half := *clicked
		half.Count = (clicked.Count + 1) / 2
		rest := *clicked
		rest.Count = clicked.Count - half.Count
		m.cursor = &half
		if rest.Count == 0 {
			m.setContainerViewSlot(viewIndex, items.EmptyStack())
		} else {
			m.setContainerViewSlot(viewIndex, &rest)
		}
		return nil
	}

	if !clicked.IsEmpty() && clicked.ID != cursor.ID {
		return nil
	}

	one := *cursor
	one.Count = 1
	remainder := *cursor
	remainder.Count--
	if remainder.Count <= 0 {
		m.cursor = items.EmptyStack()
	} else {
		m.cursor = &remainder
	}

	switch {
	case clicked.IsEmpty():
		m.setContainerViewSlot(viewIndex, &one)
	case clicked.ID == cursor.ID:
		merged := *clicked
		merged.Count++
		m.setContainerViewSlot(viewIndex, &merged)
	}
	return nil
}

// ContainerShiftClick performs a shift-click on a slot in the open container
// view, moving the clicked stack to the other half (container ↔ player
// inventory) of the view.
func (m *Module) ContainerShiftClick(viewIndex int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.container == nil {
		return fmt.Errorf("no container open")
	}

	clicked := m.containerViewSlot(viewIndex)
	if clicked.IsEmpty() {
		return nil
	}

	containerSlotCount := len(m.container.slots)
	var dest int
	if viewIndex < containerSlotCount {
		dest = m.firstEmptyPlayerSlot()
	} else {
		dest = m.firstEmptyContainerSlot()
	}
	if dest < 0 {
		return nil // no space — nothing moves
	}

	m.setContainerViewSlot(viewIndex, items.EmptyStack())
	m.setContainerViewSlot(dest, clicked)
	return nil
}

// firstEmptyPlayerSlot returns the container-view index of the first empty
// player-inventory slot, or -1. Must be called under m.mu lock.
func (m *Module) firstEmptyPlayerSlot() int {
	containerSlotCount := len(m.container.slots)
	for i := SlotMainStart; i < TotalSlots; i++ {
		if m.slots[i].IsEmpty() {
			return containerSlotCount + (i - SlotMainStart)
		}
	}
	return -1
}

// firstEmptyContainerSlot returns the view index of the first empty
// container-only slot, or -1. Must be called under m.mu lock.
func (m *Module) firstEmptyContainerSlot() int {
	for i, s := range m.container.slots {
		if s.IsEmpty() {
			return i
		}
	}
	return -1
}

// CloseContainer closes the currently open container.
func (m *Module) CloseContainer() error {
	m.mu.Lock()
	if m.container == nil {
		m.mu.Unlock()
		return fmt.Errorf("no container open")
	}
	m.container = nil
	m.mu.Unlock()

	for _, cb := range m.onContainerClose {
		cb()
	}
	return nil
}
