package world

import (
	"sync"

	"github.com/go-mclib/client/pkg/client"
	"github.com/go-mclib/client/nav"
	"github.com/go-mclib/data/pkg/data/blocks"
	"github.com/go-mclib/data/pkg/data/chunks"
)

const ModuleName = "world"

// Module owns the loaded chunk columns and exposes them both as raw block
// state IDs (for callers that want go-mclib/data's own representation) and
// as nav.BlockInfo (for the pathfinding core). There is no packet layer
// here: SetBlockState/LoadChunk are called directly by whatever feeds this
// module — a real client's block-update handler, or a scripted fixture in
// tests and the demo.
type Module struct {
	client *client.Client

	mu     sync.RWMutex
	Chunks map[int64]*chunks.ChunkColumn

	onChunkLoad   []func(x, z int32)
	onChunkUnload []func(x, z int32)
	onBlockUpdate []func(x, y, z int32, stateID int32)
}

func New() *Module {
	return &Module{Chunks: make(map[int64]*chunks.ChunkColumn)}
}

func (m *Module) Name() string { return ModuleName }

func (m *Module) Init(c *client.Client) { m.client = c }

func (m *Module) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Chunks = make(map[int64]*chunks.ChunkColumn)
}

// From retrieves the world module from a client.
func From(c *client.Client) *Module {
	mod := c.Module(ModuleName)
	if mod == nil {
		return nil
	}
	return mod.(*Module)
}

func (m *Module) OnChunkLoad(cb func(x, z int32))   { m.onChunkLoad = append(m.onChunkLoad, cb) }
func (m *Module) OnChunkUnload(cb func(x, z int32)) { m.onChunkUnload = append(m.onChunkUnload, cb) }
func (m *Module) OnBlockUpdate(cb func(x, y, z int32, stateID int32)) {
	m.onBlockUpdate = append(m.onBlockUpdate, cb)
}

// LoadChunk installs column at (cx, cz), replacing any existing column
// there, and fires the load callbacks.
func (m *Module) LoadChunk(cx, cz int32, column *chunks.ChunkColumn) {
	m.mu.Lock()
	m.Chunks[chunkKey(cx, cz)] = column
	m.mu.Unlock()
	for _, cb := range m.onChunkLoad {
		cb(cx, cz)
	}
}

// UnloadChunk drops the column at (cx, cz) and fires the unload callbacks.
func (m *Module) UnloadChunk(cx, cz int32) {
	m.mu.Lock()
	delete(m.Chunks, chunkKey(cx, cz))
	m.mu.Unlock()
	for _, cb := range m.onChunkUnload {
		cb(cx, cz)
	}
}

// SetBlockState writes a single block state ID and fires the update
// callbacks, the direct-mutation replacement for the packet handlers the
// teacher module used to drive this from the wire.
func (m *Module) SetBlockState(x, y, z int, stateID int32) {
	chunkX, chunkZ := chunks.ChunkPos(x, z)
	m.mu.Lock()
	chunk := m.Chunks[chunkKey(chunkX, chunkZ)]
	if chunk != nil {
		chunk.SetBlockState(x, y, z, stateID)
	}
	m.mu.Unlock()
	for _, cb := range m.onBlockUpdate {
		cb(int32(x), int32(y), int32(z), stateID)
	}
}

// GetBlock returns the block state ID at the given world coordinates.
func (m *Module) GetBlock(x, y, z int) int32 {
	chunkX, chunkZ := chunks.ChunkPos(x, z)
	m.mu.RLock()
	chunk := m.Chunks[chunkKey(chunkX, chunkZ)]
	m.mu.RUnlock()
	if chunk == nil {
		return 0
	}
	return chunk.GetBlockState(x, y, z)
}

// GetBlockInfo implements nav.WorldView: it reduces a state ID down to the
// narrow shape the pathfinding core consumes, filling in bounding box and
// hardness from the local tables in hardness.go (go-mclib/data has no
// mining-speed or collision-shape API of its own).
func (m *Module) GetBlockInfo(x, y, z int32) (nav.BlockInfo, bool) {
	chunkX, chunkZ := chunks.ChunkPos(int(x), int(z))
	m.mu.RLock()
	chunk := m.Chunks[chunkKey(chunkX, chunkZ)]
	m.mu.RUnlock()
	if chunk == nil {
		return nav.BlockInfo{}, false
	}
	stateID := chunk.GetBlockState(int(x), int(y), int(z))
	blockID, _ := blocks.StateProperties(int(stateID))
	name := blocks.BlockName(blockID)
	return nav.BlockInfo{
		Name:        name,
		BoundingBox: boundingBoxFor(name),
		Hardness:    hardnessFor(name),
	}, true
}

func (m *Module) IsChunkLoaded(chunkX, chunkZ int32) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.Chunks[chunkKey(chunkX, chunkZ)]
	return ok
}

func (m *Module) GetChunk(chunkX, chunkZ int32) *chunks.ChunkColumn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Chunks[chunkKey(chunkX, chunkZ)]
}

func (m *Module) GetLoadedChunkCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Chunks)
}

func chunkKey(chunkX, chunkZ int32) int64 {
	return int64(chunkX)<<32 | int64(uint32(chunkZ))
}
