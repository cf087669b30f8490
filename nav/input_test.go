package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputHelperHighPriorityWins(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	ih := NewInputHelper(host)

	ih.Request("sprint", true, PriorityMovement)
	ih.Request("sprint", false, PriorityEmergency)
	ih.Flush()

	assert.False(t, host.controls["sprint"], "emergency priority should have overridden the movement request")
}

func TestInputHelperLowerPriorityCannotOverride(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	ih := NewInputHelper(host)

	ih.Request("jump", true, PriorityFallOverride)
	ih.Request("jump", false, PriorityLow)
	ih.Flush()

	assert.True(t, host.controls["jump"], "a lower-priority request should not override a higher one")
}

func TestInputHelperReleasesUnrequestedControls(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	ih := NewInputHelper(host)

	ih.Request("forward", true, PriorityMovement)
	ih.Flush()
	require.True(t, host.controls["forward"], "expected forward to be set")

	ih.Flush() // nothing requested this tick
	assert.False(t, host.controls["forward"], "expected forward to be released once no longer requested")
}

func TestRotationHelperSlewsTowardTarget(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	rh := NewRotationHelper(host)

	rh.Request(180, 0, PriorityMovement, false)
	rh.Tick()
	assert.True(t, host.Yaw() > 0 && host.Yaw() < 180, "expected a partial turn toward 180, got %v", host.Yaw())
}

func TestRotationHelperForceSnapsInstantly(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	rh := NewRotationHelper(host)

	rh.Request(90, -30, PriorityMovement, true)
	rh.Tick()
	assert.Equal(t, 90.0, host.Yaw())
	assert.Equal(t, -30.0, host.Pitch())
}

func TestNormalizeAngleWraps(t *testing.T) {
	assert.Equal(t, -90.0, normalizeAngle(270))
	assert.Equal(t, 90.0, normalizeAngle(-270))
}
