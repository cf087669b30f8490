package self

import "math"

// Move applies an absolute position without firing position callbacks —
// used by the physics tick, which updates position every tick and doesn't
// want a callback dispatch 20 times a second.
func (m *Module) Move(x, y, z float64) {
	m.X, m.Y, m.Z = x, y, z
}

func (m *Module) MoveRelative(dx, dy, dz float64) {
	m.Move(m.X+dx, m.Y+dy, m.Z+dz)
}

func (m *Module) LookAt(x, y, z float64) {
	yaw, pitch := WorldPosToYawPitch(m.X, m.Y+EyeHeight, m.Z, x, y, z)
	m.SetRotation(yaw, pitch)
}

func (m *Module) SetRotation(yaw, pitch float64) {
	m.Yaw, m.Pitch = yaw, pitch
}

func (m *Module) Rotate(deltaYaw, deltaPitch float64) {
	newYaw := m.Yaw + deltaYaw
	newPitch := m.Pitch + deltaPitch
	if newPitch > 90 {
		newPitch = 90
	} else if newPitch < -90 {
		newPitch = -90
	}
	for newYaw < 0 {
		newYaw += 360
	}
	for newYaw >= 360 {
		newYaw -= 360
	}
	m.SetRotation(newYaw, newPitch)
}

// WorldPosToYawPitch calculates yaw and pitch to look from (x,y,z) at
// (lookX,lookY,lookZ). Matches MC convention: yaw 0=south(+Z), 90=west(-X),
// -90/270=east(+X), 180=north(-Z).
func WorldPosToYawPitch(x, y, z, lookX, lookY, lookZ float64) (yaw, pitch float64) {
	dx := lookX - x
	dy := lookY - y
	dz := lookZ - z
	yaw = math.Atan2(dz, dx)*180/math.Pi - 90
	pitch = -math.Atan2(dy, math.Sqrt(dx*dx+dz*dz)) * 180 / math.Pi
	return
}
