package self

import (
	"github.com/go-mclib/client/pkg/client"
)

const (
	ModuleName = "self"
	EyeHeight  = 1.62
)

// Module tracks the agent's own position, rotation and vitals. It carries
// no network state: whatever drives the agent (a real client's position
// sync, or the navdemo's scripted world) calls SetPosition/SetHealth
// directly instead of this module parsing packets off the wire itself.
type Module struct {
	client *client.Client

	AutoRespawn bool

	Health          float32
	Food            int32
	FoodSaturation  float32
	ExperienceBar   float32
	Level           int32
	TotalExperience int32
	X, Y, Z         float64
	Yaw, Pitch      float64

	activeEffects map[int32]*EffectInstance

	onDeath    []func()
	onSpawn    []func()
	onPosition []func(x, y, z float64)
}

func New() *Module {
	return &Module{
		AutoRespawn:    true,
		Health:         20,
		Food:           20,
		FoodSaturation: 5,
		activeEffects:  map[int32]*EffectInstance{},
	}
}

func (m *Module) Name() string { return ModuleName }

func (m *Module) Init(c *client.Client) { m.client = c }

func (m *Module) Reset() {
	m.Health = 20
	m.Food = 20
	m.FoodSaturation = 5
	m.ExperienceBar = 0
	m.Level = 0
	m.TotalExperience = 0
	m.X, m.Y, m.Z = 0, 0, 0
	m.Yaw, m.Pitch = 0, 0
	m.activeEffects = map[int32]*EffectInstance{}
}

// From retrieves the self module from a client.
func From(c *client.Client) *Module {
	mod := c.Module(ModuleName)
	if mod == nil {
		return nil
	}
	return mod.(*Module)
}

func (m *Module) IsDead() bool { return m.Health <= 0 }

func (m *Module) OnDeath(cb func())                   { m.onDeath = append(m.onDeath, cb) }
func (m *Module) OnSpawn(cb func())                   { m.onSpawn = append(m.onSpawn, cb) }
func (m *Module) OnPosition(cb func(x, y, z float64)) { m.onPosition = append(m.onPosition, cb) }

// SetPosition applies an absolute position update and fires position
// callbacks, the direct-mutation replacement for the teacher's
// S2CPlayerPosition packet handler.
func (m *Module) SetPosition(x, y, z float64) {
	m.X, m.Y, m.Z = x, y, z
	for _, cb := range m.onPosition {
		cb(x, y, z)
	}
}

// SetHealth applies a health/food update and fires death callbacks on the
// falling edge from alive to dead.
func (m *Module) SetHealth(health float32, food int32, saturation float32) {
	wasDead := m.IsDead()
	m.Health, m.Food, m.FoodSaturation = health, food, saturation
	if m.IsDead() && !wasDead {
		for _, cb := range m.onDeath {
			cb()
		}
		if m.AutoRespawn {
			m.Respawn()
		}
	}
}

// Respawn restores full health and food after death and fires spawn
// callbacks, as the agent re-enters the world.
func (m *Module) Respawn() {
	m.Health, m.Food, m.FoodSaturation = 20, 20, 5
	m.Spawn()
}

// Spawn marks the agent as having entered the world, firing spawn callbacks.
func (m *Module) Spawn() {
	for _, cb := range m.onSpawn {
		cb()
	}
}
