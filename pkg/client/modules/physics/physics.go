package physics

import (
	"context"
	"math"
	"time"

	"github.com/go-mclib/client/pkg/client"
	"github.com/go-mclib/client/pkg/client/modules/collisions"
	"github.com/go-mclib/client/pkg/client/modules/entities"
	"github.com/go-mclib/client/pkg/client/modules/self"
	"github.com/go-mclib/client/pkg/client/modules/world"
)

const ModuleName = "physics"

// Module simulates per-tick player movement: gravity, fluid drag, jumping
// and entity pushing, matching vanilla's Entity.baseTick/LivingEntity.travel
// ordering. It carries no network state — the teacher's version sent
// position/rotation packets to the server at the end of each tick; this one
// instead writes straight into the self module, and the navigation core
// drives input through SetControl/Look instead of a player holding keys.
type Module struct {
	client *client.Client

	VelX, VelY, VelZ float64

	OnGroundState       bool
	HorizontalCollision bool
	Sprinting           bool

	ForwardImpulse float64 // -1.0 to 1.0
	StrafeImpulse  float64 // -1.0 to 1.0
	Jumping        bool
	Sneaking       bool

	cancel context.CancelFunc

	onTick []func()
}

func New() *Module { return &Module{} }

func (m *Module) Name() string { return ModuleName }

func (m *Module) Init(c *client.Client) {
	m.client = c

	s := self.From(c)
	if s != nil {
		s.OnSpawn(func() {
			m.startTickLoop()
		})
	}
}

func (m *Module) Reset() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.VelX, m.VelY, m.VelZ = 0, 0, 0
	m.OnGroundState = false
	m.HorizontalCollision = false
	m.Sprinting = false
	m.ForwardImpulse = 0
	m.StrafeImpulse = 0
	m.Jumping = false
	m.Sneaking = false
}

func From(c *client.Client) *Module {
	mod := c.Module(ModuleName)
	if mod == nil {
		return nil
	}
	return mod.(*Module)
}

// events

func (m *Module) OnTick(cb func()) { m.onTick = append(m.onTick, cb) }

// AgentView / Controller — the slice of nav.Host this module answers for.

func (m *Module) OnGround() bool             { return m.OnGroundState }
func (m *Module) InWater() bool              { return m.currentlyInFluid(IsWater) }
func (m *Module) InLava() bool               { return m.currentlyInFluid(IsLava) }
func (m *Module) Velocity() (vx, vy, vz float64) { return m.VelX, m.VelY, m.VelZ }

func (m *Module) currentlyInFluid(match func(int32) bool) bool {
	s := self.From(m.client)
	w := world.From(m.client)
	if s == nil || w == nil {
		return false
	}
	return match(w.GetBlock(int(math.Floor(s.X)), int(math.Floor(s.Y)), int(math.Floor(s.Z))))
}

// SetControl implements nav.Controller: it translates the planner's named
// boolean controls into the forward/strafe impulse this module's tick
// consumes.
func (m *Module) SetControl(name string, active bool) {
	switch name {
	case "forward":
		if active {
			m.ForwardImpulse = 1
		} else {
			m.ForwardImpulse = 0
		}
	case "sprint":
		m.Sprinting = active
	case "sneak":
		m.Sneaking = active
	case "jump":
		m.Jumping = active
	}
}

// Look implements nav.Controller by delegating to the self module, which
// owns yaw/pitch.
func (m *Module) Look(yaw, pitch float64, force bool) {
	if s := self.From(m.client); s != nil {
		s.SetRotation(yaw, pitch)
	}
}

func (m *Module) SetSprinting(sprinting bool) { m.Sprinting = sprinting }

func (m *Module) SetInput(forward, strafe float64, jumping, sneaking bool) {
	m.ForwardImpulse = forward
	m.StrafeImpulse = strafe
	m.Jumping = jumping
	m.Sneaking = sneaking
}

func (m *Module) startTickLoop() {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	go func() {
		ticker := time.NewTicker(TickDuration)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.tick()
			}
		}
	}()
}

func (m *Module) tick() {
	s := self.From(m.client)
	w := world.From(m.client)
	col := collisions.From(m.client)
	if s == nil || w == nil || col == nil {
		return
	}

	x, y, z := s.X, s.Y, s.Z
	yaw := s.Yaw

	if m.Jumping && m.OnGroundState {
		m.jump(yaw)
	}

	m.applyFluidPushing(x, y, z, w)

	feetBlock := w.GetBlock(int(math.Floor(x)), int(math.Floor(y)), int(math.Floor(z)))
	inWater := IsWater(feetBlock)
	inLava := IsLava(feetBlock)

	var blockFriction float64
	if inWater {
		m.applyWaterInput(yaw)
	} else if inLava {
		m.applyLavaInput(yaw)
	} else {
		blockFriction = m.applyAirInput(x, y, z, yaw, w)
	}

	origVelY := m.VelY
	adjX, adjY, adjZ, hCol, vCol := col.CollideMovement(x, y, z, PlayerWidth, PlayerHeight, m.VelX, m.VelY, m.VelZ)

	m.HorizontalCollision = hCol
	if vCol {
		m.VelY = 0
	}
	if hCol {
		if m.VelX != adjX {
			m.VelX = 0
		}
		if m.VelZ != adjZ {
			m.VelZ = 0
		}
	}

	newX := x + adjX
	newY := y + adjY
	newZ := z + adjZ
	s.Move(newX, newY, newZ)

	m.OnGroundState = vCol && origVelY < 0

	if inWater {
		m.applyWaterPhysics()
	} else if inLava {
		m.applyLavaPhysics()
	} else {
		m.applyAirPhysics(blockFriction)
	}

	m.applyEntityPushing(newX, newY, newZ)
	s.TickEffects()

	for _, cb := range m.onTick {
		cb()
	}
}

func (m *Module) applyAirInput(x, y, z, yaw float64, w *world.Module) float64 {
	belowBlock := w.GetBlock(int(math.Floor(x)), int(math.Floor(y-0.5)), int(math.Floor(z)))
	var blockFriction float64
	if m.OnGroundState {
		blockFriction = GetBlockFriction(belowBlock)
	} else {
		blockFriction = 1.0
	}
	friction := blockFriction * AirFrictionMul

	var speed float64
	if m.OnGroundState {
		baseSpeed := PlayerSpeed
		if m.Sprinting {
			baseSpeed *= (1.0 + SprintModifier)
		}
		speed = baseSpeed * (FrictionSpeedFactor / (friction * friction * friction))
		speed *= GetBlockSpeedFactor(belowBlock)
	} else {
		speed = FlyingSpeed
	}

	dx, _, dz := moveRelative(speed, m.ForwardImpulse, m.StrafeImpulse, yaw)
	m.VelX += dx
	m.VelZ += dz

	return blockFriction
}

func (m *Module) applyAirPhysics(blockFriction float64) {
	friction := blockFriction * AirFrictionMul
	m.VelY -= Gravity
	m.VelX *= friction
	m.VelZ *= friction
	m.VelY *= VerticalAirFriction
}

func (m *Module) applyWaterInput(yaw float64) {
	dx, _, dz := moveRelative(WaterAcceleration, m.ForwardImpulse, m.StrafeImpulse, yaw)
	m.VelX += dx
	m.VelZ += dz
}

func (m *Module) applyWaterPhysics() {
	slowDown := WaterSlowdown
	if m.Sprinting {
		slowDown = WaterSprintSlowdown
	}
	m.VelX *= slowDown
	m.VelY *= WaterVerticalDrag
	m.VelZ *= slowDown
	m.VelY -= Gravity
}

func (m *Module) applyLavaInput(yaw float64) {
	dx, _, dz := moveRelative(WaterAcceleration, m.ForwardImpulse, m.StrafeImpulse, yaw)
	m.VelX += dx
	m.VelZ += dz
}

func (m *Module) applyLavaPhysics() {
	m.VelX *= LavaSlowdown
	m.VelY *= LavaVerticalDrag
	m.VelZ *= LavaSlowdown
	m.VelY -= Gravity * LavaGravityFactor
}

// jump applies jump velocity (LivingEntity.jumpFromGround)
func (m *Module) jump(yaw float64) {
	m.VelY = JumpPower
	if m.Sprinting {
		angle := yaw * math.Pi / 180.0
		m.VelX += -math.Sin(angle) * SprintJumpBoost
		m.VelZ += math.Cos(angle) * SprintJumpBoost
	}
	m.OnGroundState = false
}

// moveRelative computes input vector rotated by yaw (Entity.getInputVector)
func moveRelative(speed, forward, strafe, yaw float64) (dx, dy, dz float64) {
	lengthSq := forward*forward + strafe*strafe
	if lengthSq < 1e-7 {
		return 0, 0, 0
	}
	if lengthSq > 1 {
		invLen := 1.0 / math.Sqrt(lengthSq)
		forward *= invLen
		strafe *= invLen
	}
	forward *= speed
	strafe *= speed
	sinYaw := math.Sin(yaw * math.Pi / 180.0)
	cosYaw := math.Cos(yaw * math.Pi / 180.0)
	dx = strafe*cosYaw - forward*sinYaw
	dz = forward*cosYaw + strafe*sinYaw
	return dx, 0, dz
}

// applyEntityPushing applies pushing forces from nearby entities (Entity.push).
func (m *Module) applyEntityPushing(x, y, z float64) {
	ents := entities.From(m.client)
	if ents == nil {
		return
	}

	hw := PlayerWidth / 2
	overlapping := ents.GetEntitiesInAABB(
		x-hw, y, z-hw,
		x+hw, y+PlayerHeight, z+hw,
	)
	for _, e := range overlapping {
		dx := e.X - x
		dz := e.Z - z
		dist := math.Max(math.Abs(dx), math.Abs(dz))
		if dist < EntityPushMinDist {
			continue
		}
		dist = math.Sqrt(dist)
		dx /= dist
		dz /= dist
		pow := math.Min(1.0, 1.0/dist)
		push := pow * EntityPushStrength
		m.VelX -= dx * push
		m.VelZ -= dz * push
	}
}
