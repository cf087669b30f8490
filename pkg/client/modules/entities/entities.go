package entities

import (
	"sync"

	"github.com/go-mclib/client/nav"
	"github.com/go-mclib/client/pkg/client"
	entity_hitboxes "github.com/go-mclib/data/pkg/data/hitboxes/entities"
)

const ModuleName = "entities"

type Entity struct {
	ID       int32
	UUID     [16]byte
	TypeID   int32
	TypeName string

	X, Y, Z          float64
	Yaw, Pitch       float32
	HeadYaw          float32
	VelX, VelY, VelZ float64
	OnGround         bool
	Width, Height    float64
	EyeHeight        float64
}

// Module tracks other entities in the world. It carries no network state:
// whatever feeds this module — a real client's entity-update handlers, or a
// scripted fixture in tests and the demo — calls Spawn/Move/Remove directly
// instead of this module parsing packets off the wire itself.
type Module struct {
	client *client.Client

	mu       sync.RWMutex
	entities map[int32]*Entity

	onEntitySpawn  []func(e *Entity)
	onEntityRemove []func(entityID int32)
	onEntityMove   []func(e *Entity)
}

func New() *Module {
	return &Module{
		entities: make(map[int32]*Entity),
	}
}

func (m *Module) Name() string          { return ModuleName }
func (m *Module) Init(c *client.Client) { m.client = c }

func (m *Module) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entities = make(map[int32]*Entity)
}

func From(c *client.Client) *Module {
	mod := c.Module(ModuleName)
	if mod == nil {
		return nil
	}
	return mod.(*Module)
}

func (m *Module) OnEntitySpawn(cb func(e *Entity))       { m.onEntitySpawn = append(m.onEntitySpawn, cb) }
func (m *Module) OnEntityRemove(cb func(entityID int32)) { m.onEntityRemove = append(m.onEntityRemove, cb) }
func (m *Module) OnEntityMove(cb func(e *Entity))        { m.onEntityMove = append(m.onEntityMove, cb) }

// Spawn installs an entity by type name, looking up its hitbox from
// go-mclib/data, and fires spawn callbacks. Direct-mutation replacement for
// the teacher's S2CAddEntity handler.
func (m *Module) Spawn(id int32, uuid [16]byte, typeID int32, typeName string, x, y, z float64) *Entity {
	width, height, eyeHeight := entity_hitboxes.Dimensions(typeName)
	e := &Entity{
		ID:        id,
		UUID:      uuid,
		TypeID:    typeID,
		TypeName:  typeName,
		X:         x,
		Y:         y,
		Z:         z,
		Width:     float64(width),
		Height:    float64(height),
		EyeHeight: float64(eyeHeight),
	}

	m.mu.Lock()
	m.entities[e.ID] = e
	m.mu.Unlock()

	for _, cb := range m.onEntitySpawn {
		cb(e)
	}
	return e
}

// Remove drops an entity and fires remove callbacks.
func (m *Module) Remove(id int32) {
	m.mu.Lock()
	_, ok := m.entities[id]
	delete(m.entities, id)
	m.mu.Unlock()
	if !ok {
		return
	}
	for _, cb := range m.onEntityRemove {
		cb(id)
	}
}

// Move updates an entity's position, rotation and ground state, the
// direct-mutation replacement for the teacher's various S2CMoveEntity*
// handlers.
func (m *Module) Move(id int32, x, y, z float64, yaw, pitch float32, onGround bool) {
	m.mu.Lock()
	e := m.entities[id]
	if e != nil {
		e.X, e.Y, e.Z = x, y, z
		e.Yaw, e.Pitch = yaw, pitch
		e.OnGround = onGround
	}
	m.mu.Unlock()

	if e != nil {
		for _, cb := range m.onEntityMove {
			cb(e)
		}
	}
}

// SetVelocity updates an entity's velocity vector.
func (m *Module) SetVelocity(id int32, vx, vy, vz float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e := m.entities[id]; e != nil {
		e.VelX, e.VelY, e.VelZ = vx, vy, vz
	}
}

// Entities implements nav.EntitiesView.
func (m *Module) Entities() map[int]nav.EntityInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[int]nav.EntityInfo, len(m.entities))
	for id, e := range m.entities {
		out[int(id)] = nav.EntityInfo{
			ID:     int(id),
			Name:   e.TypeName,
			X:      e.X,
			Y:      e.Y,
			Z:      e.Z,
			Height: e.Height,
		}
	}
	return out
}
